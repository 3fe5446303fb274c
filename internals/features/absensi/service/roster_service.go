// file: internals/features/absensi/service/roster_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "absensiku_backend/internals/features/absensi/model"
	"absensiku_backend/internals/features/absensi/stream"
)

type RosterService struct {
	DB  *gorm.DB
	Hub *stream.Hub // boleh nil
}

func NewRosterService(db *gorm.DB, hub *stream.Hub) *RosterService {
	return &RosterService{DB: db, Hub: hub}
}

// ParseNames memecah teks upload per baris, trim, buang baris kosong.
func ParseNames(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	names := make([]string, 0, len(lines))
	for _, ln := range lines {
		if name := strings.TrimSpace(ln); name != "" {
			names = append(names, name)
		}
	}
	return names
}

/* =========================================================
   ImportStudents — satu batch insert atomik
========================================================= */

func (s *RosterService) ImportStudents(ctx context.Context, userID, classID uuid.UUID, rawText string) (int, error) {
	names := ParseNames(rawText)
	if len(names) == 0 {
		return 0, ErrNoValidNames
	}

	var exists int64
	if err := s.DB.WithContext(ctx).Model(&m.ClassModel{}).
		Where("class_user_id = ? AND class_id = ?", userID, classID).
		Count(&exists).Error; err != nil {
		return 0, err
	}
	if exists == 0 {
		return 0, ErrClassNotFound
	}

	rows := make([]m.StudentModel, 0, len(names))
	for _, name := range names {
		rows = append(rows, m.StudentModel{
			StudentUserID:  userID,
			StudentName:    name,
			StudentClassID: classID,
		})
	}
	if err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	}); err != nil {
		return 0, err
	}

	if s.Hub != nil {
		s.Hub.Publish(stream.Event{
			Collection: stream.CollStudents,
			Action:     stream.ActionCreated,
			UserID:     userID,
			Data: map[string]any{
				"class_id": classID,
				"count":    len(rows),
			},
		})
	}
	return len(rows), nil
}
