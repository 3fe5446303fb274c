package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClassRequestToModel(t *testing.T) {
	userID := uuid.New()

	got, err := CreateClassRequest{ClassName: "  Kelas 7A  "}.ToModel(userID)
	require.NoError(t, err)
	assert.Equal(t, "Kelas 7A", got.ClassName)
	assert.Equal(t, userID, got.ClassUserID)

	_, err = CreateClassRequest{ClassName: "   "}.ToModel(userID)
	assert.ErrorIs(t, err, ErrNameEmpty)
}

func TestRenameClassRequestTrimmedName(t *testing.T) {
	name, err := RenameClassRequest{ClassName: " 7B \t"}.TrimmedName()
	require.NoError(t, err)
	assert.Equal(t, "7B", name)

	_, err = RenameClassRequest{ClassName: ""}.TrimmedName()
	assert.ErrorIs(t, err, ErrNameEmpty)
}
