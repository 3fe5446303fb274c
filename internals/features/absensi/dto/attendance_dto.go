// file: internals/features/absensi/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "absensiku_backend/internals/features/absensi/model"
)

/* =========================================================
   1) REQUESTS
========================================================= */

type DayEntryInput struct {
	Status string `json:"status" validate:"required,oneof=Hadir Sakit Izin Alpa"`
	Note   string `json:"note" validate:"omitempty,max=500"`
}

// SaveDayRequest: snapshot absensi satu kelas untuk satu tanggal.
// Key entries = student_id. Entri yang student-nya sudah tidak ada di
// roster diabaikan (bukan error) — selaras perilaku frontend lama.
type SaveDayRequest struct {
	ClassID uuid.UUID                `json:"class_id" validate:"required"`
	Date    string                   `json:"date" validate:"required,datetime=2006-01-02"`
	Entries map[uuid.UUID]DayEntryInput `json:"entries" validate:"required"`
}

/* =========================================================
   2) RESPONSES
========================================================= */

type AttendanceResponse struct {
	AttendanceID        uuid.UUID `json:"attendance_id"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id"`
	AttendanceClassID   uuid.UUID `json:"attendance_class_id"`
	AttendanceDate      time.Time `json:"attendance_date"`
	AttendanceStatus    string    `json:"attendance_status"`
	AttendanceNote      string    `json:"attendance_note,omitempty"`
	AttendanceCreatedAt time.Time `json:"attendance_created_at"`
}

func FromModelAttendance(mm m.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:        mm.AttendanceID,
		AttendanceStudentID: mm.AttendanceStudentID,
		AttendanceClassID:   mm.AttendanceClassID,
		AttendanceDate:      mm.AttendanceDate,
		AttendanceStatus:    mm.AttendanceStatus,
		AttendanceNote:      mm.AttendanceNote,
		AttendanceCreatedAt: mm.AttendanceCreatedAt,
	}
}

func FromModelAttendances(list []m.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for _, mm := range list {
		out = append(out, FromModelAttendance(mm))
	}
	return out
}

// DayGridRow: baris grid absensi harian di frontend — seluruh roster,
// status tersimpan atau default Hadir.
type DayGridRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Status      string    `json:"status"`
	Note        string    `json:"note"`
	Saved       bool      `json:"saved"` // true kalau dari record tersimpan
}

type SaveDayResponse struct {
	SavedCount int       `json:"saved_count"`
	Date       time.Time `json:"date"`
}
