// file: internals/features/absensi/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: classes
   Semua baris discope ke class_user_id (namespace per user).
========================================================= */

type ClassModel struct {
	ClassID     uuid.UUID `gorm:"type:uuid;primaryKey;column:class_id" json:"class_id"`
	ClassUserID uuid.UUID `gorm:"type:uuid;not null;index;column:class_user_id" json:"class_user_id"`

	ClassName string `gorm:"size:120;not null;column:class_name" json:"class_name"`

	ClassCreatedAt time.Time `gorm:"not null;autoCreateTime;column:class_created_at" json:"class_created_at"`
}

func (ClassModel) TableName() string { return "classes" }

// ID di-generate di aplikasi (bukan DB default) supaya konsisten di semua engine.
func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
