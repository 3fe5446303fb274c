// file: internals/features/absensi/service/cascade_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "absensiku_backend/internals/features/absensi/model"
	"absensiku_backend/internals/features/absensi/stream"
)

// CascadeService menjalankan cascade delete sebagai batch-batch
// terpisah (bukan satu transaksi besar). Gagal di tengah bisa
// meninggalkan record yatim — risiko yang diterima; operasi aman
// diulang karena setiap batch berbasis filter, bukan snapshot ID.

type CascadeService struct {
	DB  *gorm.DB
	Hub *stream.Hub // boleh nil
}

func NewCascadeService(db *gorm.DB, hub *stream.Hub) *CascadeService {
	return &CascadeService{DB: db, Hub: hub}
}

/* =========================================================
   DeleteClass: kelas → siswa → absensi (urutan tetap)
========================================================= */

func (s *CascadeService) DeleteClass(ctx context.Context, userID, classID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Delete(&m.ClassModel{}, "class_user_id = ? AND class_id = ?", userID, classID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrClassNotFound
	}

	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&m.StudentModel{}, "student_user_id = ? AND student_class_id = ?", userID, classID).Error
	}); err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&m.AttendanceModel{}, "attendance_user_id = ? AND attendance_class_id = ?", userID, classID).Error
	}); err != nil {
		return err
	}

	if s.Hub != nil {
		s.Hub.Publish(stream.Event{
			Collection: stream.CollClasses,
			Action:     stream.ActionDeleted,
			UserID:     userID,
			Data:       map[string]any{"class_id": classID},
		})
	}
	return nil
}

/* =========================================================
   DeleteStudent: siswa → absensinya (siswa & absensi lain utuh)
========================================================= */

func (s *CascadeService) DeleteStudent(ctx context.Context, userID, studentID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Delete(&m.StudentModel{}, "student_user_id = ? AND student_id = ?", userID, studentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStudentNotFound
	}

	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&m.AttendanceModel{}, "attendance_user_id = ? AND attendance_student_id = ?", userID, studentID).Error
	}); err != nil {
		return err
	}

	if s.Hub != nil {
		s.Hub.Publish(stream.Event{
			Collection: stream.CollStudents,
			Action:     stream.ActionDeleted,
			UserID:     userID,
			Data:       map[string]any{"student_id": studentID},
		})
	}
	return nil
}
