// file: internals/features/absensi/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "absensiku_backend/internals/helpers"
	helperAuth "absensiku_backend/internals/helpers/auth"

	d "absensiku_backend/internals/features/absensi/dto"
	m "absensiku_backend/internals/features/absensi/model"
	"absensiku_backend/internals/features/absensi/service"
	"absensiku_backend/internals/features/absensi/stream"
)

/* =========================
   Controller & Constructor
   ========================= */

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Roster   *service.RosterService
	Cascade  *service.CascadeService
	Hub      *stream.Hub
}

func NewStudentController(db *gorm.DB, v *validator.Validate, roster *service.RosterService, cascade *service.CascadeService, hub *stream.Hub) *StudentController {
	return &StudentController{DB: db, Validate: v, Roster: roster, Cascade: cascade, Hub: hub}
}

/* =========================
   Create (classId wajib merujuk kelas milik user)
   ========================= */

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req d.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	model, err := req.ToModel(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var exists int64
	if err := ctl.DB.WithContext(c.Context()).Model(&m.ClassModel{}).
		Where("class_user_id = ? AND class_id = ?", userID, model.StudentClassID).
		Count(&exists).Error; err != nil {
		return writePGError(c, err)
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas tidak ditemukan")
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		return writePGError(c, err)
	}

	if ctl.Hub != nil {
		ctl.Hub.Publish(stream.Event{
			Collection: stream.CollStudents,
			Action:     stream.ActionCreated,
			UserID:     userID,
			Data:       d.FromModelStudent(model),
		})
	}
	return helper.JsonCreated(c, "Siswa berhasil ditambahkan", d.FromModelStudent(model))
}

/* =========================
   List (?search= &?class_id=)
   ========================= */

func (ctl *StudentController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	q := ctl.DB.WithContext(c.Context()).
		Where("student_user_id = ?", userID).
		Order("student_created_at ASC")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(student_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if cid := strings.TrimSpace(c.Query("class_id")); cid != "" {
		classID, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("student_class_id = ?", classID)
	}

	var list []m.StudentModel
	if err := q.Find(&list).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonList(c, "", d.FromModelStudents(list))
}

/* =========================
   Rename
   ========================= */

func (ctl *StudentController) Rename(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	studentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.RenameStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}
	name, err := req.TrimmedName()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var model m.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&model, "student_user_id = ? AND student_id = ?", userID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Model(&model).
		Update("student_name", name).Error; err != nil {
		return writePGError(c, err)
	}

	if ctl.Hub != nil {
		ctl.Hub.Publish(stream.Event{
			Collection: stream.CollStudents,
			Action:     stream.ActionUpdated,
			UserID:     userID,
			Data:       d.FromModelStudent(model),
		})
	}
	return helper.JsonUpdated(c, "Nama siswa diperbarui", d.FromModelStudent(model))
}

/* =========================
   Delete (cascade: siswa → absensinya)
   ========================= */

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	studentID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.Cascade.DeleteStudent(c.Context(), userID, studentID); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Siswa beserta absensinya terhapus", fiber.Map{
		"student_id": studentID,
	})
}

/* =========================
   Import (satu nama per baris, satu batch atomik)
   ========================= */

func (ctl *StudentController) Import(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req d.ImportStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	count, err := ctl.Roster.ImportStudents(c.Context(), userID, req.StudentClassID, req.RawText)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Daftar siswa berhasil diunggah", d.ImportStudentsResponse{CreatedCount: count})
}
