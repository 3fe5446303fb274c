package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "absensiku_backend/internals/features/absensi/model"
)

func TestParseNames(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"baris kosong dibuang", "Andi\n\nBudi\n   \nCitra", []string{"Andi", "Budi", "Citra"}},
		{"crlf", "Andi\r\nBudi\r\n", []string{"Andi", "Budi"}},
		{"trim spasi", "  Andi Wijaya  \n\tBudi\t", []string{"Andi Wijaya", "Budi"}},
		{"hanya whitespace", " \n\t\n  ", nil},
		{"kosong", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseNames(tc.raw)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestImportStudents(t *testing.T) {
	db := openTestDB(t)
	svc := NewRosterService(db, nil)

	userID := uuid.New()
	cls := seedClass(t, db, userID, "7A")

	n, err := svc.ImportStudents(context.Background(), userID, cls.ClassID, "Andi\n\nBudi\n  \nCitra")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var rows []m.StudentModel
	require.NoError(t, db.Find(&rows, "student_user_id = ?", userID).Error)
	require.Len(t, rows, 3)
	names := map[string]bool{}
	for _, r := range rows {
		names[r.StudentName] = true
		assert.Equal(t, cls.ClassID, r.StudentClassID)
		assert.NotEqual(t, uuid.Nil, r.StudentID)
	}
	assert.True(t, names["Andi"] && names["Budi"] && names["Citra"])
}

func TestImportStudentsClassNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewRosterService(db, nil)

	userID := uuid.New()
	// Kelas milik user lain tidak terlihat dari namespace ini.
	other := seedClass(t, db, uuid.New(), "7A")

	_, err := svc.ImportStudents(context.Background(), userID, other.ClassID, "Andi")
	assert.ErrorIs(t, err, ErrClassNotFound)

	var n int64
	require.NoError(t, db.Model(&m.StudentModel{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestImportStudentsNoValidNames(t *testing.T) {
	db := openTestDB(t)
	svc := NewRosterService(db, nil)

	userID := uuid.New()
	cls := seedClass(t, db, userID, "7A")

	_, err := svc.ImportStudents(context.Background(), userID, cls.ClassID, " \n\n\t ")
	assert.ErrorIs(t, err, ErrNoValidNames)
}
