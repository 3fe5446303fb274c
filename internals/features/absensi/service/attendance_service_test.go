package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensiku_backend/internals/constants"
	m "absensiku_backend/internals/features/absensi/model"
	"absensiku_backend/internals/helpers/dbtime"
)

func TestSaveDayReplacesExistingDay(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService(db, wib, nil)
	ctx := context.Background()

	userID := uuid.New()
	cls := seedClass(t, db, userID, "7A")
	base := time.Date(2025, 9, 1, 7, 0, 0, 0, wib)
	andi := seedStudent(t, db, userID, cls.ClassID, "Andi", base)
	budi := seedStudent(t, db, userID, cls.ClassID, "Budi", base.Add(time.Second))
	citra := seedStudent(t, db, userID, cls.ClassID, "Citra", base.Add(2*time.Second))

	day := time.Date(2025, 9, 1, 8, 0, 0, 0, wib)

	n, err := svc.SaveDay(ctx, userID, cls.ClassID, day, map[uuid.UUID]Entry{
		andi.StudentID:  {Status: constants.StatusHadir},
		budi.StudentID:  {Status: constants.StatusSakit, Note: "demam"},
		citra.StudentID: {Status: constants.StatusAlpa},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.EqualValues(t, 3, countAttendance(t, db, userID, cls.ClassID))

	// Simpan ulang hari yang sama dengan isi berbeda → replace, bukan merge.
	n, err = svc.SaveDay(ctx, userID, cls.ClassID, day, map[uuid.UUID]Entry{
		andi.StudentID: {Status: constants.StatusIzin, Note: "dispensasi"},
		budi.StudentID: {Status: constants.StatusHadir},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.EqualValues(t, 2, countAttendance(t, db, userID, cls.ClassID))

	var rows []m.AttendanceModel
	require.NoError(t, db.Find(&rows, "attendance_user_id = ?", userID).Error)
	byStudent := map[uuid.UUID]m.AttendanceModel{}
	for _, r := range rows {
		byStudent[r.AttendanceStudentID] = r
	}
	assert.Equal(t, constants.StatusIzin, byStudent[andi.StudentID].AttendanceStatus)
	assert.Equal(t, "dispensasi", byStudent[andi.StudentID].AttendanceNote)
	assert.Equal(t, constants.StatusHadir, byStudent[budi.StudentID].AttendanceStatus)
	assert.NotContains(t, byStudent, citra.StudentID)
}

func TestSaveDayIsIdempotentOnRetry(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService(db, wib, nil)
	ctx := context.Background()

	userID := uuid.New()
	cls := seedClass(t, db, userID, "7B")
	andi := seedStudent(t, db, userID, cls.ClassID, "Andi", time.Now())

	day := time.Date(2025, 9, 3, 8, 0, 0, 0, wib)
	entries := map[uuid.UUID]Entry{andi.StudentID: {Status: constants.StatusHadir}}

	for i := 0; i < 3; i++ {
		n, err := svc.SaveDay(ctx, userID, cls.ClassID, day, entries)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}
	assert.EqualValues(t, 1, countAttendance(t, db, userID, cls.ClassID))
}

func TestSaveDayIgnoresNonRosterEntries(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService(db, wib, nil)
	ctx := context.Background()

	userID := uuid.New()
	cls := seedClass(t, db, userID, "8A")
	andi := seedStudent(t, db, userID, cls.ClassID, "Andi", time.Now())

	n, err := svc.SaveDay(ctx, userID, cls.ClassID, time.Now().In(wib), map[uuid.UUID]Entry{
		andi.StudentID: {Status: constants.StatusHadir},
		uuid.New():     {Status: constants.StatusSakit}, // sudah tidak di roster
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.EqualValues(t, 1, countAttendance(t, db, userID, cls.ClassID))
}

func TestSaveDayRejectsEmptyRoster(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService(db, wib, nil)

	userID := uuid.New()
	cls := seedClass(t, db, userID, "Kelas Kosong")

	_, err := svc.SaveDay(context.Background(), userID, cls.ClassID, time.Now().In(wib), map[uuid.UUID]Entry{
		uuid.New(): {Status: constants.StatusHadir},
	})
	assert.ErrorIs(t, err, ErrRosterEmpty)
	assert.EqualValues(t, 0, countAttendance(t, db, userID, cls.ClassID))
}

func TestSaveDayRejectsInvalidStatus(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService(db, wib, nil)

	userID := uuid.New()
	cls := seedClass(t, db, userID, "8B")
	andi := seedStudent(t, db, userID, cls.ClassID, "Andi", time.Now())

	day := time.Date(2025, 9, 4, 8, 0, 0, 0, wib)
	seedAttendance(t, db, userID, andi.StudentID, cls.ClassID, day, constants.StatusHadir)

	_, err := svc.SaveDay(context.Background(), userID, cls.ClassID, day, map[uuid.UUID]Entry{
		andi.StudentID: {Status: "Bolos"},
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	// Validasi gagal SEBELUM menyentuh store: record lama utuh.
	assert.EqualValues(t, 1, countAttendance(t, db, userID, cls.ClassID))
}

func TestSaveDayLeavesOtherDaysAlone(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService(db, wib, nil)
	ctx := context.Background()

	userID := uuid.New()
	cls := seedClass(t, db, userID, "9A")
	andi := seedStudent(t, db, userID, cls.ClassID, "Andi", time.Now())

	sep1 := time.Date(2025, 9, 1, 8, 0, 0, 0, wib)
	sep2 := time.Date(2025, 9, 2, 8, 0, 0, 0, wib)

	_, err := svc.SaveDay(ctx, userID, cls.ClassID, sep1, map[uuid.UUID]Entry{andi.StudentID: {Status: constants.StatusSakit}})
	require.NoError(t, err)
	_, err = svc.SaveDay(ctx, userID, cls.ClassID, sep2, map[uuid.UUID]Entry{andi.StudentID: {Status: constants.StatusHadir}})
	require.NoError(t, err)

	// Tulis ulang 1 Sep; record 2 Sep tidak boleh tersentuh.
	_, err = svc.SaveDay(ctx, userID, cls.ClassID, sep1, map[uuid.UUID]Entry{andi.StudentID: {Status: constants.StatusIzin}})
	require.NoError(t, err)

	var rows []m.AttendanceModel
	require.NoError(t, db.Find(&rows, "attendance_user_id = ?", userID).Error)
	require.Len(t, rows, 2)
	byDay := map[int]string{}
	for _, r := range rows {
		byDay[r.AttendanceDate.In(wib).Day()] = r.AttendanceStatus
	}
	assert.Equal(t, constants.StatusIzin, byDay[1])
	assert.Equal(t, constants.StatusHadir, byDay[2])
}

func TestSaveDayNormalizesDateAcrossClockTimes(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService(db, wib, nil)
	ctx := context.Background()

	userID := uuid.New()
	cls := seedClass(t, db, userID, "9B")
	andi := seedStudent(t, db, userID, cls.ClassID, "Andi", time.Now())

	// Pagi lalu malam di hari WIB yang sama → tetap satu record.
	morning := time.Date(2025, 9, 5, 6, 0, 0, 0, wib)
	evening := time.Date(2025, 9, 5, 23, 30, 0, 0, wib)

	_, err := svc.SaveDay(ctx, userID, cls.ClassID, morning, map[uuid.UUID]Entry{andi.StudentID: {Status: constants.StatusHadir}})
	require.NoError(t, err)
	_, err = svc.SaveDay(ctx, userID, cls.ClassID, evening, map[uuid.UUID]Entry{andi.StudentID: {Status: constants.StatusSakit}})
	require.NoError(t, err)

	var rows []m.AttendanceModel
	require.NoError(t, db.Find(&rows, "attendance_user_id = ?", userID).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, constants.StatusSakit, rows[0].AttendanceStatus)
	assert.True(t, dbtime.SameDay(rows[0].AttendanceDate, morning, wib))
	assert.Equal(t, 12, rows[0].AttendanceDate.In(wib).Hour())
}

func TestDayGridDefaultsToHadir(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService(db, wib, nil)
	ctx := context.Background()

	userID := uuid.New()
	cls := seedClass(t, db, userID, "7C")
	base := time.Date(2025, 9, 1, 7, 0, 0, 0, wib)
	andi := seedStudent(t, db, userID, cls.ClassID, "Andi", base)
	budi := seedStudent(t, db, userID, cls.ClassID, "Budi", base.Add(time.Second))

	day := time.Date(2025, 9, 8, 8, 0, 0, 0, wib)
	seedAttendance(t, db, userID, budi.StudentID, cls.ClassID, day, constants.StatusSakit)

	rows, err := svc.DayGrid(ctx, userID, cls.ClassID, day)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Urut created_at; yang belum tersimpan tampil default Hadir.
	assert.Equal(t, andi.StudentID, rows[0].StudentID)
	assert.Equal(t, constants.StatusHadir, rows[0].Status)
	assert.False(t, rows[0].Saved)

	assert.Equal(t, budi.StudentID, rows[1].StudentID)
	assert.Equal(t, constants.StatusSakit, rows[1].Status)
	assert.True(t, rows[1].Saved)
}

func TestDayGridClassNotFound(t *testing.T) {
	db := openTestDB(t)
	svc := NewAttendanceService(db, wib, nil)

	_, err := svc.DayGrid(context.Background(), uuid.New(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrClassNotFound)
}
