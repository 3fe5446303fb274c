// file: internals/helpers/dbtime/day.go
package dbtime

import (
	"strings"
	"time"
)

// Tanggal absensi disimpan sebagai instant "tengah hari" pada timezone
// aplikasi. Jam 12:00 dipilih supaya konversi timezone di sisi mana pun
// tidak menggeser record ke hari kalender sebelah.

// NormalizeToNoon memetakan waktu apa pun ke jam 12:00:00 hari kalender
// yang sama (dilihat dari loc).
func NormalizeToNoon(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, loc)
}

// EndOfDay melebarkan tanggal ke 23:59:59.999 — dipakai agar filter
// rentang inklusif terhadap seluruh record di hari `end`.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, loc)
}

// StartOfDay kebalikan EndOfDay (00:00:00.000).
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameDay: apakah dua waktu jatuh di hari kalender yang sama (dilihat dari loc).
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	a, b = a.In(loc), b.In(loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParseDateYYYYMMDD: "2006-01-02" → waktu pada loc (jam 00:00).
func ParseDateYYYYMMDD(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

/* =========================================================
   Rentang laporan (semester & bulan) — murni aritmetika tanggal
========================================================= */

// SemesterRange: semester 1 = Ganjil (1 Juli–31 Des), selain itu = Genap
// (1 Jan–30 Juni) pada tahun yang dipilih.
func SemesterRange(year, semester int, loc *time.Location) (start, end time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	if semester == 1 {
		start = time.Date(year, time.July, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, time.December, 31, 0, 0, 0, 0, loc)
	} else {
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(year, time.June, 30, 0, 0, 0, 0, loc)
	}
	return start, end
}

// MonthRange: tanggal 1 s.d. hari terakhir bulan tersebut.
func MonthRange(year int, month time.Month, loc *time.Location) (start, end time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, -1)
	return start, end
}
