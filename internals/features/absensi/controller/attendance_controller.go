// file: internals/features/absensi/controller/attendance_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"
	"absensiku_backend/internals/helpers/dbtime"

	d "absensiku_backend/internals/features/absensi/dto"
	"absensiku_backend/internals/features/absensi/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceController struct {
	Validate *validator.Validate
	Service  *service.AttendanceService
}

func NewAttendanceController(v *validator.Validate, svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Validate: v, Service: svc}
}

/* =========================
   GetDay — grid harian (roster + status tersimpan / default Hadir)
   GET /attendance/day?class_id=&date=YYYY-MM-DD
   ========================= */

func (ctl *AttendanceController) GetDay(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	date, ok := dbtime.ParseDateYYYYMMDD(c.Query("date"), ctl.Service.Loc)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "date wajib format YYYY-MM-DD")
	}

	rows, err := ctl.Service.DayGrid(c.Context(), userID, classID, date)
	if err != nil {
		return writeServiceError(c, err)
	}

	out := make([]d.DayGridRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, d.DayGridRow{
			StudentID:   r.StudentID,
			StudentName: r.StudentName,
			Status:      r.Status,
			Note:        r.Note,
			Saved:       r.Saved,
		})
	}
	return helper.JsonOK(c, "", out)
}

/* =========================
   SaveDay — ganti seluruh isi hari (replace, bukan merge)
   POST /attendance/day
   ========================= */

func (ctl *AttendanceController) SaveDay(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req d.SaveDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	date, ok := dbtime.ParseDateYYYYMMDD(req.Date, ctl.Service.Loc)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "date wajib format YYYY-MM-DD")
	}

	entries := make(map[uuid.UUID]service.Entry, len(req.Entries))
	for sid, e := range req.Entries {
		entries[sid] = service.Entry{Status: e.Status, Note: e.Note}
	}

	count, err := ctl.Service.SaveDay(c.Context(), userID, req.ClassID, date, entries)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Absensi berhasil disimpan", d.SaveDayResponse{
		SavedCount: count,
		Date:       dbtime.NormalizeToNoon(date, ctl.Service.Loc),
	})
}
