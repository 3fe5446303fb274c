// file: internals/features/absensi/service/attendance_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	m "absensiku_backend/internals/features/absensi/model"
	"absensiku_backend/internals/features/absensi/stream"
	"absensiku_backend/internals/helpers/dbtime"
)

// Entry: status + catatan satu siswa untuk satu hari.
type Entry struct {
	Status string
	Note   string
}

// DayRow: baris grid harian (roster penuh, default Hadir kalau belum tersimpan).
type DayRow struct {
	StudentID   uuid.UUID
	StudentName string
	Status      string
	Note        string
	Saved       bool
}

type AttendanceService struct {
	DB  *gorm.DB
	Loc *time.Location
	Hub *stream.Hub // boleh nil (mis. di test)
}

func NewAttendanceService(db *gorm.DB, loc *time.Location, hub *stream.Hub) *AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceService{DB: db, Loc: loc, Hub: hub}
}

/* =========================================================
   SaveDay — replace, bukan merge
   1. Normalisasi tanggal ke jam 12:00 (hindari geser hari antar TZ).
   2. Ambil roster; kosong → tolak tanpa menyentuh store.
   3. Scan semua record kelas, pilih yang jatuh di hari target.
   4. Batch 1: hapus record lama hari itu.
   5. Batch 2: insert record baru untuk entry yang siswanya masih
      anggota roster (entry siswa lain diabaikan).
   Dua batch SENGAJA bukan satu transaksi: gagal di antaranya
   meninggalkan hari kosong, tidak pernah dobel; retry dengan entries
   yang sama konvergen ke state akhir yang sama.
========================================================= */

func (s *AttendanceService) SaveDay(ctx context.Context, userID, classID uuid.UUID, date time.Time, entries map[uuid.UUID]Entry) (int, error) {
	day := dbtime.NormalizeToNoon(date, s.Loc)

	for _, e := range entries {
		if !constants.IsValidStatus(e.Status) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, e.Status)
		}
	}

	var roster []m.StudentModel
	if err := s.DB.WithContext(ctx).
		Where("student_user_id = ? AND student_class_id = ?", userID, classID).
		Find(&roster).Error; err != nil {
		return 0, err
	}
	if len(roster) == 0 {
		return 0, ErrRosterEmpty
	}

	// Scan penuh per kelas; filter hari di aplikasi (tidak ada index
	// gabungan tanggal, dan perbandingan hari harus pakai TZ aplikasi).
	var existing []m.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_user_id = ? AND attendance_class_id = ?", userID, classID).
		Find(&existing).Error; err != nil {
		return 0, err
	}

	staleIDs := make([]uuid.UUID, 0)
	for _, rec := range existing {
		if dbtime.SameDay(rec.AttendanceDate, day, s.Loc) {
			staleIDs = append(staleIDs, rec.AttendanceID)
		}
	}

	// Batch 1: delete
	if len(staleIDs) > 0 {
		if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Delete(&m.AttendanceModel{}, "attendance_id IN ?", staleIDs).Error
		}); err != nil {
			return 0, err
		}
	}

	// Batch 2: insert — iterasi roster supaya urutan deterministik dan
	// membership otomatis terjaga.
	rows := make([]m.AttendanceModel, 0, len(entries))
	for _, st := range roster {
		e, ok := entries[st.StudentID]
		if !ok {
			continue
		}
		rows = append(rows, m.AttendanceModel{
			AttendanceUserID:    userID,
			AttendanceStudentID: st.StudentID,
			AttendanceClassID:   classID,
			AttendanceDate:      day,
			AttendanceStatus:    e.Status,
			AttendanceNote:      e.Note,
		})
	}
	if len(rows) > 0 {
		if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Create(&rows).Error
		}); err != nil {
			return 0, err
		}
	}

	if s.Hub != nil {
		s.Hub.Publish(stream.Event{
			Collection: stream.CollAttendance,
			Action:     stream.ActionReplaced,
			UserID:     userID,
			Data: map[string]any{
				"class_id": classID,
				"date":     day,
				"count":    len(rows),
			},
		})
	}
	return len(rows), nil
}

/* =========================================================
   DayGrid — roster + status tersimpan (default Hadir)
========================================================= */

func (s *AttendanceService) DayGrid(ctx context.Context, userID, classID uuid.UUID, date time.Time) ([]DayRow, error) {
	day := dbtime.NormalizeToNoon(date, s.Loc)

	var exists int64
	if err := s.DB.WithContext(ctx).Model(&m.ClassModel{}).
		Where("class_user_id = ? AND class_id = ?", userID, classID).
		Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrClassNotFound
	}

	var roster []m.StudentModel
	if err := s.DB.WithContext(ctx).
		Where("student_user_id = ? AND student_class_id = ?", userID, classID).
		Order("student_created_at ASC").
		Find(&roster).Error; err != nil {
		return nil, err
	}

	var existing []m.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_user_id = ? AND attendance_class_id = ?", userID, classID).
		Find(&existing).Error; err != nil {
		return nil, err
	}

	saved := make(map[uuid.UUID]m.AttendanceModel, len(existing))
	for _, rec := range existing {
		if dbtime.SameDay(rec.AttendanceDate, day, s.Loc) {
			saved[rec.AttendanceStudentID] = rec
		}
	}

	rows := make([]DayRow, 0, len(roster))
	for _, st := range roster {
		row := DayRow{
			StudentID:   st.StudentID,
			StudentName: st.StudentName,
			Status:      constants.StatusHadir, // default UI
		}
		if rec, ok := saved[st.StudentID]; ok {
			row.Status = rec.AttendanceStatus
			row.Note = rec.AttendanceNote
			row.Saved = true
		}
		rows = append(rows, row)
	}
	return rows, nil
}
