// internals/features/announcements/controller/announcement_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	annDTO "grofast_backend/internals/features/announcements/dto"
	annModel "grofast_backend/internals/features/announcements/model"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

type AnnouncementController struct{ DB *gorm.DB }

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validateAnnouncement = validator.New()

// ===================== LIST (ACTIVE) =====================
// GET /api/u/announcements: active only, newest first.
func (h *AnnouncementController) ListActive(c *fiber.Ctx) error {
	var rows []annModel.AnnouncementModel
	if err := h.DB.
		Where("is_active = TRUE").
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	out := make([]*annDTO.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, annDTO.NewAnnouncementResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== LATEST =====================
// GET /api/u/announcements/latest: the dashboard banner; null data when
// nothing is active.
func (h *AnnouncementController) Latest(c *fiber.Ctx) error {
	var row annModel.AnnouncementModel
	err := h.DB.
		Where("is_active = TRUE").
		Order("created_at DESC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "No active announcement", nil)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcement")
	}
	return helper.JsonOK(c, "ok", annDTO.NewAnnouncementResponse(&row))
}

// ===================== ADMIN LIST =====================
// GET /api/a/announcements: includes deactivated ones.
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	var rows []annModel.AnnouncementModel
	if err := h.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	out := make([]*annDTO.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, annDTO.NewAnnouncementResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== CREATE =====================
// POST /api/a/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req annDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := req.ToModel(employeeID)
	if err := h.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement published", annDTO.NewAnnouncementResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement id")
	}

	var req annDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row annModel.AnnouncementModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch announcement")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated", annDTO.NewAnnouncementResponse(&row))
}

// ===================== DELETE =====================
// DELETE /api/a/announcements/:id
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement id")
	}

	res := h.DB.Delete(&annModel.AnnouncementModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	return helper.JsonDeleted(c, "Announcement deleted", fiber.Map{"id": id})
}
