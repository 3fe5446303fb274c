// file: internals/features/absensi/dto/class_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	m "absensiku_backend/internals/features/absensi/model"
)

var ErrNameEmpty = errors.New("nama tidak boleh kosong")

/* =========================================================
   1) REQUESTS
========================================================= */

// ---------- CREATE ----------
type CreateClassRequest struct {
	ClassName string `json:"class_name" validate:"required,max=120"`
}

func (r CreateClassRequest) ToModel(userID uuid.UUID) (m.ClassModel, error) {
	name := strings.TrimSpace(r.ClassName)
	if name == "" {
		return m.ClassModel{}, ErrNameEmpty
	}
	return m.ClassModel{
		ClassUserID: userID,
		ClassName:   name,
	}, nil
}

// ---------- RENAME ----------
type RenameClassRequest struct {
	ClassName string `json:"class_name" validate:"required,max=120"`
}

func (r RenameClassRequest) TrimmedName() (string, error) {
	name := strings.TrimSpace(r.ClassName)
	if name == "" {
		return "", ErrNameEmpty
	}
	return name, nil
}

/* =========================================================
   2) RESPONSES
========================================================= */

type ClassResponse struct {
	ClassID        uuid.UUID `json:"class_id"`
	ClassName      string    `json:"class_name"`
	ClassCreatedAt time.Time `json:"class_created_at"`
}

func FromModelClass(mm m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:        mm.ClassID,
		ClassName:      mm.ClassName,
		ClassCreatedAt: mm.ClassCreatedAt,
	}
}

func FromModelClasses(list []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for _, mm := range list {
		out = append(out, FromModelClass(mm))
	}
	return out
}
