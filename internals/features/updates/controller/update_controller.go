// internals/features/updates/controller/update_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	updDTO "grofast_backend/internals/features/updates/dto"
	updModel "grofast_backend/internals/features/updates/model"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

const workUpdateBucket = "work-update-files"

type UpdateController struct{ DB *gorm.DB }

func NewUpdateController(db *gorm.DB) *UpdateController { return &UpdateController{DB: db} }

var validateUpdate = validator.New()

// ===================== WORK: LIST =====================
// GET /api/u/updates/work: own entries; admins may pass ?employee_id=.
func (h *UpdateController) ListWork(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	target := employeeID
	if authMw.IsAdmin(c) {
		if raw := c.Query("employee_id"); raw != "" {
			parsed, perr := uuid.Parse(raw)
			if perr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee_id")
			}
			target = parsed
		}
	}

	var rows []updModel.WorkUpdateModel
	if err := h.DB.
		Where("employee_id = ?", target).
		Order("date DESC, created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch work updates")
	}

	out := make([]*updDTO.WorkUpdateResponse, 0, len(rows))
	for i := range rows {
		out = append(out, updDTO.NewWorkUpdateResponse(&rows[i], nil))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== WORK: CREATE =====================
// POST /api/u/updates/work: multipart with an optional "file" attachment
// (design exports, screenshots) stored alongside the entry.
func (h *UpdateController) CreateWork(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req updDTO.CreateWorkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUpdate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var fileURL *string
	if fh, ferr := c.FormFile("file"); ferr == nil && fh != nil {
		url, uerr := helper.UploadFile(workUpdateBucket, employeeID.String(), fh)
		if uerr != nil {
			log.Printf("[UPDATES] attachment upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Attachment upload failed")
		}
		fileURL = &url
	}

	row, err := req.ToModel(employeeID, fileURL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := h.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save work update")
	}

	return helper.JsonCreated(c, "Work update logged", updDTO.NewWorkUpdateResponse(row, nil))
}

// ===================== WORK: UPDATE =====================
// PUT /api/u/updates/work/:id. Own rows only.
func (h *UpdateController) UpdateWork(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid update id")
	}

	var req updDTO.UpdateWorkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUpdate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row updModel.WorkUpdateModel
	if err := h.DB.First(&row, "id = ? AND employee_id = ?", id, employeeID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Work update not found")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update work update")
	}
	return helper.JsonUpdated(c, "Work update saved", updDTO.NewWorkUpdateResponse(&row, nil))
}

// ===================== WORK: DELETE =====================
// DELETE /api/u/updates/work/:id. Own rows only.
func (h *UpdateController) DeleteWork(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid update id")
	}

	res := h.DB.Where("id = ? AND employee_id = ?", id, employeeID).
		Delete(&updModel.WorkUpdateModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete work update")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Work update not found")
	}
	return helper.JsonDeleted(c, "Work update deleted", fiber.Map{"id": id})
}

// ===================== LEARNING: LIST =====================
// GET /api/u/updates/learning
func (h *UpdateController) ListLearning(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	target := employeeID
	if authMw.IsAdmin(c) {
		if raw := c.Query("employee_id"); raw != "" {
			parsed, perr := uuid.Parse(raw)
			if perr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee_id")
			}
			target = parsed
		}
	}

	var rows []updModel.LearningUpdateModel
	if err := h.DB.
		Where("employee_id = ?", target).
		Order("date DESC, created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch learning updates")
	}

	out := make([]*updDTO.LearningUpdateResponse, 0, len(rows))
	for i := range rows {
		out = append(out, updDTO.NewLearningUpdateResponse(&rows[i], nil))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== LEARNING: CREATE =====================
// POST /api/u/updates/learning
func (h *UpdateController) CreateLearning(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req updDTO.CreateLearningUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUpdate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row, err := req.ToModel(employeeID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := h.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save learning update")
	}

	return helper.JsonCreated(c, "Learning update logged", updDTO.NewLearningUpdateResponse(row, nil))
}

// ===================== LEARNING: UPDATE =====================
// PUT /api/u/updates/learning/:id. Own rows only.
func (h *UpdateController) UpdateLearning(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid update id")
	}

	var req updDTO.UpdateLearningUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUpdate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row updModel.LearningUpdateModel
	if err := h.DB.First(&row, "id = ? AND employee_id = ?", id, employeeID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Learning update not found")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update learning update")
	}
	return helper.JsonUpdated(c, "Learning update saved", updDTO.NewLearningUpdateResponse(&row, nil))
}

// ===================== LEARNING: DELETE =====================
// DELETE /api/u/updates/learning/:id. Own rows only.
func (h *UpdateController) DeleteLearning(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid update id")
	}

	res := h.DB.Where("id = ? AND employee_id = ?", id, employeeID).
		Delete(&updModel.LearningUpdateModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete learning update")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Learning update not found")
	}
	return helper.JsonDeleted(c, "Learning update deleted", fiber.Map{"id": id})
}
