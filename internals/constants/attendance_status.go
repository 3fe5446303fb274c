package constants

// Status kehadiran harian. Nilai string disimpan apa adanya di DB
// (kolom attendance_status) dan dipakai langsung oleh laporan.
const (
	StatusHadir = "Hadir" // hadir
	StatusSakit = "Sakit" // sakit (catatan opsional)
	StatusIzin  = "Izin"  // izin (catatan opsional)
	StatusAlpa  = "Alpa"  // tanpa keterangan
)

// Urutan tetap untuk ringkasan laporan siswa (bar chart di frontend).
var StatusOrder = []string{StatusHadir, StatusSakit, StatusIzin, StatusAlpa}

func IsValidStatus(s string) bool {
	switch s {
	case StatusHadir, StatusSakit, StatusIzin, StatusAlpa:
		return true
	}
	return false
}
