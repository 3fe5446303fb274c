package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	m "absensiku_backend/internals/features/absensi/model"
	"absensiku_backend/internals/helpers/dbtime"
)

var wib = time.FixedZone("WIB", 7*3600)

// openTestDB: sqlite in-memory per test (nama DB unik supaya subtest
// paralel tidak saling menumpang).
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&m.ClassModel{}, &m.StudentModel{}, &m.AttendanceModel{}))
	return db
}

func seedClass(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) m.ClassModel {
	t.Helper()
	cls := m.ClassModel{ClassUserID: userID, ClassName: name}
	require.NoError(t, db.Create(&cls).Error)
	return cls
}

// seedStudent memberi created_at eksplisit supaya urutan roster deterministik.
func seedStudent(t *testing.T, db *gorm.DB, userID, classID uuid.UUID, name string, createdAt time.Time) m.StudentModel {
	t.Helper()
	st := m.StudentModel{
		StudentUserID:    userID,
		StudentName:      name,
		StudentClassID:   classID,
		StudentCreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&st).Error)
	return st
}

func seedAttendance(t *testing.T, db *gorm.DB, userID, studentID, classID uuid.UUID, day time.Time, status string) m.AttendanceModel {
	t.Helper()
	rec := m.AttendanceModel{
		AttendanceUserID:    userID,
		AttendanceStudentID: studentID,
		AttendanceClassID:   classID,
		AttendanceDate:      dbtime.NormalizeToNoon(day, wib),
		AttendanceStatus:    status,
	}
	require.NoError(t, db.Create(&rec).Error)
	return rec
}

func countAttendance(t *testing.T, db *gorm.DB, userID, classID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&m.AttendanceModel{}).
		Where("attendance_user_id = ? AND attendance_class_id = ?", userID, classID).
		Count(&n).Error)
	return n
}
