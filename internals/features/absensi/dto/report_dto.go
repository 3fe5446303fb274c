// file: internals/features/absensi/dto/report_dto.go
package dto

import "time"

/* =========================================================
   Laporan
========================================================= */

// StatusCount: pasangan nama status + jumlah, urut tetap (untuk chart).
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ClassSummaryResponse: ringkasan kelas dalam satu rentang tanggal.
// Status berjumlah nol TIDAK dimasukkan (pie chart di frontend).
type ClassSummaryResponse struct {
	Start   time.Time     `json:"start"`
	End     time.Time     `json:"end"`
	Summary []StatusCount `json:"summary"`
}

// StudentReportResponse: ringkasan seumur data + detail urut tanggal
// menurun. Ringkasan MEMPERTAHANKAN status nol (bar chart sumbu tetap).
type StudentReportResponse struct {
	Summary []StatusCount        `json:"summary"`
	Details []AttendanceResponse `json:"details"`
}
