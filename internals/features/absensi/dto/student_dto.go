// file: internals/features/absensi/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "absensiku_backend/internals/features/absensi/model"
)

/* =========================================================
   1) REQUESTS
========================================================= */

// ---------- CREATE ----------
type CreateStudentRequest struct {
	StudentName    string    `json:"student_name" validate:"required,max=120"`
	StudentClassID uuid.UUID `json:"student_class_id" validate:"required"`
}

func (r CreateStudentRequest) ToModel(userID uuid.UUID) (m.StudentModel, error) {
	name := strings.TrimSpace(r.StudentName)
	if name == "" {
		return m.StudentModel{}, ErrNameEmpty
	}
	return m.StudentModel{
		StudentUserID:  userID,
		StudentName:    name,
		StudentClassID: r.StudentClassID,
	}, nil
}

// ---------- RENAME ----------
type RenameStudentRequest struct {
	StudentName string `json:"student_name" validate:"required,max=120"`
}

func (r RenameStudentRequest) TrimmedName() (string, error) {
	name := strings.TrimSpace(r.StudentName)
	if name == "" {
		return "", ErrNameEmpty
	}
	return name, nil
}

// ---------- BULK IMPORT ----------
// raw_text: satu nama per baris (textarea upload di frontend).
type ImportStudentsRequest struct {
	StudentClassID uuid.UUID `json:"student_class_id" validate:"required"`
	RawText        string    `json:"raw_text" validate:"required"`
}

/* =========================================================
   2) RESPONSES
========================================================= */

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentName      string    `json:"student_name"`
	StudentClassID   uuid.UUID `json:"student_class_id"`
	StudentCreatedAt time.Time `json:"student_created_at"`
}

func FromModelStudent(mm m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        mm.StudentID,
		StudentName:      mm.StudentName,
		StudentClassID:   mm.StudentClassID,
		StudentCreatedAt: mm.StudentCreatedAt,
	}
}

func FromModelStudents(list []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, mm := range list {
		out = append(out, FromModelStudent(mm))
	}
	return out
}

type ImportStudentsResponse struct {
	CreatedCount int `json:"created_count"`
}
