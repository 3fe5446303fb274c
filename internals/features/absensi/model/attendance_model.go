// file: internals/features/absensi/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: attendance
   - attendance_date dinormalisasi ke jam 12:00 timezone aplikasi
     (lihat helpers/dbtime) sebelum disimpan.
   - attendance_class_id denormalisasi dari student → query rentang
     per kelas cukup satu filter, tanpa join.
   - Maksimal satu baris per (student, hari) — dijaga oleh
     AttendanceService.SaveDay (replace, bukan merge), bukan oleh
     unique constraint.
========================================================= */

type AttendanceModel struct {
	AttendanceID     uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceUserID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_user_id" json:"attendance_user_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceClassID   uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_class_id" json:"attendance_class_id"`

	AttendanceDate   time.Time `gorm:"not null;column:attendance_date" json:"attendance_date"`
	AttendanceStatus string    `gorm:"type:varchar(16);not null;column:attendance_status" json:"attendance_status"`
	AttendanceNote   string    `gorm:"type:text;not null;default:'';column:attendance_note" json:"attendance_note"`

	AttendanceCreatedAt time.Time `gorm:"not null;autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string { return "attendance" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
