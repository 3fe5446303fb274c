// file: internals/features/absensi/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
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

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cascade  *service.CascadeService
	Hub      *stream.Hub
}

func NewClassController(db *gorm.DB, v *validator.Validate, cascade *service.CascadeService, hub *stream.Hub) *ClassController {
	return &ClassController{DB: db, Validate: v, Cascade: cascade, Hub: hub}
}

/* =========================
   Create
   ========================= */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var req d.CreateClassRequest
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

	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		return writePGError(c, err)
	}

	if ctl.Hub != nil {
		ctl.Hub.Publish(stream.Event{
			Collection: stream.CollClasses,
			Action:     stream.ActionCreated,
			UserID:     userID,
			Data:       d.FromModelClass(model),
		})
	}
	return helper.JsonCreated(c, "Kelas berhasil dibuat", d.FromModelClass(model))
}

/* =========================
   List (?search= substring, case-insensitive)
   ========================= */

func (ctl *ClassController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	q := ctl.DB.WithContext(c.Context()).
		Where("class_user_id = ?", userID).
		Order("class_created_at ASC")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(class_name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var list []m.ClassModel
	if err := q.Find(&list).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonList(c, "", d.FromModelClasses(list))
}

/* =========================
   Rename
   ========================= */

func (ctl *ClassController) Rename(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req d.RenameClassRequest
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

	var model m.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&model, "class_user_id = ? AND class_id = ?", userID, classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.Context()).Model(&model).
		Update("class_name", name).Error; err != nil {
		return writePGError(c, err)
	}

	if ctl.Hub != nil {
		ctl.Hub.Publish(stream.Event{
			Collection: stream.CollClasses,
			Action:     stream.ActionUpdated,
			UserID:     userID,
			Data:       d.FromModelClass(model),
		})
	}
	return helper.JsonUpdated(c, "Nama kelas diperbarui", d.FromModelClass(model))
}

/* =========================
   Delete (cascade: kelas → siswa → absensi)
   ========================= */

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.Cascade.DeleteClass(c.Context(), userID, classID); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Kelas beserta siswa dan absensinya terhapus", fiber.Map{
		"class_id": classID,
	})
}
