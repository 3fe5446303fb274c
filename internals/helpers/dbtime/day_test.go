package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wib = time.FixedZone("WIB", 7*3600)

func TestNormalizeToNoon(t *testing.T) {
	// Pagi dan malam di hari kalender yang sama → instant yang sama.
	morning := time.Date(2025, 9, 1, 6, 30, 0, 0, wib)
	evening := time.Date(2025, 9, 1, 21, 45, 12, 0, wib)

	nm := NormalizeToNoon(morning, wib)
	ne := NormalizeToNoon(evening, wib)

	assert.True(t, nm.Equal(ne))
	assert.Equal(t, 12, nm.Hour())
	assert.Equal(t, 1, nm.Day())
}

func TestNormalizeToNoonCrossTimezone(t *testing.T) {
	// 18:30 UTC = 01:30 WIB hari berikutnya: hari kalender mengikuti
	// timezone aplikasi, bukan UTC.
	utcEvening := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	got := NormalizeToNoon(utcEvening, wib)

	assert.Equal(t, 11, got.Day())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 12, got.Hour())
}

func TestNormalizeToNoonIdempotent(t *testing.T) {
	once := NormalizeToNoon(time.Date(2025, 1, 15, 23, 59, 0, 0, wib), wib)
	twice := NormalizeToNoon(once, wib)
	assert.True(t, once.Equal(twice))
}

func TestStartAndEndOfDay(t *testing.T) {
	at := time.Date(2025, 6, 30, 14, 3, 7, 0, wib)

	start := StartOfDay(at, wib)
	end := EndOfDay(at, wib)

	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, wib), start)
	assert.Equal(t, time.Date(2025, 6, 30, 23, 59, 59, 999000000, wib), end)

	// Record ternormalisasi (jam 12:00) selalu jatuh di dalam rentang harinya.
	noon := NormalizeToNoon(at, wib)
	assert.True(t, !noon.Before(start) && !noon.After(end))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 9, 1, 0, 0, 1, 0, wib)
	b := time.Date(2025, 9, 1, 23, 59, 59, 0, wib)
	c := time.Date(2025, 9, 2, 0, 0, 0, 0, wib)

	assert.True(t, SameDay(a, b, wib))
	assert.False(t, SameDay(b, c, wib))

	// Instant sama, hari kalender beda tergantung loc.
	utcLate := time.Date(2025, 9, 1, 20, 0, 0, 0, time.UTC) // 2 Sep 03:00 WIB
	assert.False(t, SameDay(utcLate, a, wib))
	assert.True(t, SameDay(utcLate, a, time.UTC))
}

func TestParseDateYYYYMMDD(t *testing.T) {
	got, ok := ParseDateYYYYMMDD(" 2025-08-17 ", wib)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 8, 17, 0, 0, 0, 0, wib), got)

	_, ok = ParseDateYYYYMMDD("17-08-2025", wib)
	assert.False(t, ok)
	_, ok = ParseDateYYYYMMDD("", wib)
	assert.False(t, ok)
}

func TestSemesterRange(t *testing.T) {
	// Ganjil: 1 Juli–31 Desember
	start, end := SemesterRange(2025, 1, wib)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, wib), start)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, wib), end)

	// Genap: 1 Januari–30 Juni
	start, end = SemesterRange(2025, 2, wib)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, wib), start)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, wib), end)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2025, time.February, wib)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, wib), start)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, wib), end)

	// Tahun kabisat
	start, end = MonthRange(2024, time.February, wib)
	assert.Equal(t, 29, end.Day())
	assert.Equal(t, 1, start.Day())
}
