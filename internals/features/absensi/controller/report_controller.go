// file: internals/features/absensi/controller/report_controller.go
package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"
	"absensiku_backend/internals/helpers/dbtime"

	"absensiku_backend/internals/features/absensi/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(svc *service.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// resolveRange menentukan rentang laporan dari query, urutan prioritas:
// 1) start & end (YYYY-MM-DD)
// 2) semester (1=Ganjil Jul–Des, 2=Genap Jan–Jun) + year
// 3) month (1–12) + year
// 4) default: bulan berjalan
func (ctl *ReportController) resolveRange(c *fiber.Ctx) (time.Time, time.Time, bool) {
	loc := ctl.Service.Loc

	startStr := strings.TrimSpace(c.Query("start"))
	endStr := strings.TrimSpace(c.Query("end"))
	if startStr != "" || endStr != "" {
		start, ok1 := dbtime.ParseDateYYYYMMDD(startStr, loc)
		end, ok2 := dbtime.ParseDateYYYYMMDD(endStr, loc)
		if !ok1 || !ok2 {
			return time.Time{}, time.Time{}, false
		}
		return start, end, true
	}

	now := time.Now().In(loc)
	year := now.Year()
	if y := strings.TrimSpace(c.Query("year")); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
		year = v
	}

	if s := strings.TrimSpace(c.Query("semester")); s != "" {
		sem, err := strconv.Atoi(s)
		if err != nil || (sem != 1 && sem != 2) {
			return time.Time{}, time.Time{}, false
		}
		start, end := dbtime.SemesterRange(year, sem, loc)
		return start, end, true
	}

	month := now.Month()
	if mo := strings.TrimSpace(c.Query("month")); mo != "" {
		v, err := strconv.Atoi(mo)
		if err != nil || v < 1 || v > 12 {
			return time.Time{}, time.Time{}, false
		}
		month = time.Month(v)
	}
	start, end := dbtime.MonthRange(year, month, loc)
	return start, end, true
}

/* =========================
   ClassSummary
   GET /reports/classes/:id?start=&end= | ?semester=&year= | ?month=&year=
   ========================= */

func (ctl *ReportController) ClassSummary(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	start, end, ok := ctl.resolveRange(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter rentang laporan tidak valid")
	}

	out, err := ctl.Service.ClassSummary(c.Context(), userID, classID, start, end)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "", out)
}

/* =========================
   StudentReport (riwayat penuh, detail urut tanggal menurun)
   GET /reports/students/:id
   ========================= */

func (ctl *ReportController) StudentReport(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	studentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := ctl.Service.StudentReport(c.Context(), userID, studentID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "", out)
}
