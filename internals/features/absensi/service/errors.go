// file: internals/features/absensi/service/errors.go
package service

import "errors"

// Sentinel error domain — controller yang memetakan ke status HTTP.
var (
	ErrClassNotFound   = errors.New("kelas tidak ditemukan")
	ErrStudentNotFound = errors.New("siswa tidak ditemukan")
	ErrRosterEmpty     = errors.New("tidak ada siswa di kelas ini")
	ErrInvalidStatus   = errors.New("status absensi tidak dikenal")
	ErrNoValidNames    = errors.New("tidak ada nama siswa yang valid")
)
