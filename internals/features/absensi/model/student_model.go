// file: internals/features/absensi/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: students
   student_class_id merujuk classes; bisa dangling sesaat
   di tengah cascade delete (lihat CascadeService).
========================================================= */

type StudentModel struct {
	StudentID     uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`
	StudentUserID uuid.UUID `gorm:"type:uuid;not null;index;column:student_user_id" json:"student_user_id"`

	StudentName    string    `gorm:"size:120;not null;column:student_name" json:"student_name"`
	StudentClassID uuid.UUID `gorm:"type:uuid;not null;index;column:student_class_id" json:"student_class_id"`

	StudentCreatedAt time.Time `gorm:"not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
