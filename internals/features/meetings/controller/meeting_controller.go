// internals/features/meetings/controller/meeting_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	meetDTO "grofast_backend/internals/features/meetings/dto"
	meetModel "grofast_backend/internals/features/meetings/model"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

type MeetingController struct{ DB *gorm.DB }

func NewMeetingController(db *gorm.DB) *MeetingController { return &MeetingController{DB: db} }

var validateMeeting = validator.New()

// ===================== LIST =====================
// GET /api/u/meetings: visible to every signed-in employee; the calendar
// asks with ?from=&to= for the visible month.
func (h *MeetingController) List(c *fiber.Ctx) error {
	tx := h.DB.Model(&meetModel.MeetingModel{})

	if from := strings.TrimSpace(c.Query("from")); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from invalid (YYYY-MM-DD)")
		}
		tx = tx.Where("date >= ?", t)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to invalid (YYYY-MM-DD)")
		}
		tx = tx.Where("date <= ?", t)
	}

	var rows []meetModel.MeetingModel
	if err := tx.Order("date ASC, start_time ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch meetings")
	}

	out := make([]*meetDTO.MeetingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, meetDTO.NewMeetingResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== CREATE =====================
// POST /api/u/meetings: any signed-in employee can put a meeting on the
// shared calendar.
func (h *MeetingController) Create(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req meetDTO.CreateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMeeting.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row, err := req.ToModel(employeeID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := h.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create meeting")
	}

	return helper.JsonCreated(c, "Meeting scheduled", meetDTO.NewMeetingResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/meetings/:id
func (h *MeetingController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid meeting id")
	}

	var req meetDTO.UpdateMeetingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMeeting.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row meetModel.MeetingModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Meeting not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch meeting")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update meeting")
	}
	return helper.JsonUpdated(c, "Meeting updated", meetDTO.NewMeetingResponse(&row))
}

// ===================== DELETE =====================
// DELETE /api/a/meetings/:id
func (h *MeetingController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid meeting id")
	}

	res := h.DB.Delete(&meetModel.MeetingModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete meeting")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Meeting not found")
	}

	return helper.JsonDeleted(c, "Meeting deleted", fiber.Map{"id": id})
}
