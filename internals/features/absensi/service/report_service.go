// file: internals/features/absensi/service/report_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absensiku_backend/internals/constants"
	d "absensiku_backend/internals/features/absensi/dto"
	m "absensiku_backend/internals/features/absensi/model"
	"absensiku_backend/internals/helpers/dbtime"
)

type ReportService struct {
	DB  *gorm.DB
	Loc *time.Location
}

func NewReportService(db *gorm.DB, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{DB: db, Loc: loc}
}

/* =========================================================
   ClassSummary — rentang inklusif, end dilebarkan ke 23:59:59.999
   Status berjumlah nol dibuang (konsumsi pie chart).
========================================================= */

func (s *ReportService) ClassSummary(ctx context.Context, userID, classID uuid.UUID, start, end time.Time) (d.ClassSummaryResponse, error) {
	startAt := dbtime.StartOfDay(start, s.Loc)
	endAt := dbtime.EndOfDay(end, s.Loc)

	var records []m.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_user_id = ? AND attendance_class_id = ?", userID, classID).
		Find(&records).Error; err != nil {
		return d.ClassSummaryResponse{}, err
	}

	counts := map[string]int{}
	for _, rec := range records {
		t := rec.AttendanceDate
		if !t.Before(startAt) && !t.After(endAt) {
			counts[rec.AttendanceStatus]++
		}
	}

	summary := make([]d.StatusCount, 0, len(constants.StatusOrder))
	for _, st := range constants.StatusOrder {
		if counts[st] > 0 {
			summary = append(summary, d.StatusCount{Status: st, Count: counts[st]})
		}
	}
	return d.ClassSummaryResponse{Start: startAt, End: endAt, Summary: summary}, nil
}

/* =========================================================
   StudentReport — seluruh riwayat; ringkasan MEMPERTAHANKAN nol
   (sumbu bar chart tetap), detail urut tanggal menurun.
========================================================= */

func (s *ReportService) StudentReport(ctx context.Context, userID, studentID uuid.UUID) (d.StudentReportResponse, error) {
	var exists int64
	if err := s.DB.WithContext(ctx).Model(&m.StudentModel{}).
		Where("student_user_id = ? AND student_id = ?", userID, studentID).
		Count(&exists).Error; err != nil {
		return d.StudentReportResponse{}, err
	}
	if exists == 0 {
		return d.StudentReportResponse{}, ErrStudentNotFound
	}

	var records []m.AttendanceModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_user_id = ? AND attendance_student_id = ?", userID, studentID).
		Find(&records).Error; err != nil {
		return d.StudentReportResponse{}, err
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].AttendanceDate.Equal(records[j].AttendanceDate) {
			return records[i].AttendanceDate.After(records[j].AttendanceDate)
		}
		return records[i].AttendanceCreatedAt.After(records[j].AttendanceCreatedAt)
	})

	counts := map[string]int{}
	for _, rec := range records {
		counts[rec.AttendanceStatus]++
	}
	summary := make([]d.StatusCount, 0, len(constants.StatusOrder))
	for _, st := range constants.StatusOrder {
		summary = append(summary, d.StatusCount{Status: st, Count: counts[st]})
	}

	return d.StudentReportResponse{
		Summary: summary,
		Details: d.FromModelAttendances(records),
	}, nil
}
