// file: internals/features/absensi/route/absensi_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/configs"
	absensiController "absensiku_backend/internals/features/absensi/controller"
	"absensiku_backend/internals/features/absensi/service"
	"absensiku_backend/internals/features/absensi/stream"
)

// AbsensiRoutes memasang seluruh endpoint data absensi di bawah group
// private (sudah lewat AuthJWT → locals user_id terisi).
func AbsensiRoutes(private fiber.Router, db *gorm.DB, hub *stream.Hub) {
	v := validator.New()
	loc := configs.Location()

	cascadeSvc := service.NewCascadeService(db, hub)
	rosterSvc := service.NewRosterService(db, hub)
	attendanceSvc := service.NewAttendanceService(db, loc, hub)
	reportSvc := service.NewReportService(db, loc)

	classCtl := absensiController.NewClassController(db, v, cascadeSvc, hub)
	studentCtl := absensiController.NewStudentController(db, v, rosterSvc, cascadeSvc, hub)
	attendanceCtl := absensiController.NewAttendanceController(v, attendanceSvc)
	reportCtl := absensiController.NewReportController(reportSvc)
	streamCtl := absensiController.NewStreamController(hub)

	// Kelola kelas
	classes := private.Group("/classes")
	classes.Get("/", classCtl.List)
	classes.Post("/", classCtl.Create)
	classes.Patch("/:id", classCtl.Rename)
	classes.Delete("/:id", classCtl.Delete)

	// Kelola siswa
	students := private.Group("/students")
	students.Get("/", studentCtl.List)
	students.Post("/", studentCtl.Create)
	students.Post("/import", studentCtl.Import)
	students.Patch("/:id", studentCtl.Rename)
	students.Delete("/:id", studentCtl.Delete)

	// Absensi harian
	attendance := private.Group("/attendance")
	attendance.Get("/day", attendanceCtl.GetDay)
	attendance.Post("/day", attendanceCtl.SaveDay)

	// Laporan
	reports := private.Group("/reports")
	reports.Get("/classes/:id", reportCtl.ClassSummary)
	reports.Get("/students/:id", reportCtl.StudentReport)

	// Live subscription (websocket)
	private.Get("/stream", absensiController.UpgradeRequired(), streamCtl.Handle())
}
