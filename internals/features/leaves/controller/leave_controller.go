// internals/features/leaves/controller/leave_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	leaveDTO "grofast_backend/internals/features/leaves/dto"
	leaveModel "grofast_backend/internals/features/leaves/model"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

type LeaveController struct{ DB *gorm.DB }

func NewLeaveController(db *gorm.DB) *LeaveController { return &LeaveController{DB: db} }

var validateLeave = validator.New()

type leaveRow struct {
	leaveModel.LeaveRequestModel
	EmployeeName *string `gorm:"column:employee_name"`
}

// ===================== LIST MINE =====================
// GET /api/u/leaves
func (h *LeaveController) ListMine(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var rows []leaveModel.LeaveRequestModel
	if err := h.DB.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch leave requests")
	}

	out := make([]*leaveDTO.LeaveRequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, leaveDTO.NewLeaveRequestResponse(&rows[i], nil))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== CREATE =====================
// POST /api/u/leaves: always lands as pending regardless of payload.
func (h *LeaveController) Create(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req leaveDTO.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLeave.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row, err := req.ToModel(employeeID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := h.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit leave request")
	}

	return helper.JsonCreated(c, "Leave request submitted", leaveDTO.NewLeaveRequestResponse(row, nil))
}

// ===================== CANCEL =====================
// DELETE /api/u/leaves/:id. Owner may withdraw a request only while it is
// still pending. The status guard lives in the WHERE clause so a decided
// request can never be deleted, even on a stale client.
func (h *LeaveController) Cancel(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid leave request id")
	}

	res := h.DB.
		Where("id = ? AND employee_id = ? AND status = ?", id, employeeID, leaveModel.StatusPending).
		Delete(&leaveModel.LeaveRequestModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel leave request")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pending leave request not found")
	}

	return helper.JsonDeleted(c, "Leave request cancelled", fiber.Map{"id": id})
}

// ===================== ADMIN LIST =====================
// GET /api/a/leaves
func (h *LeaveController) List(c *fiber.Ctx) error {
	var q leaveDTO.ListLeaveQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	tx := h.DB.Table("leave_requests").
		Select("leave_requests.*, employees.name AS employee_name").
		Joins("LEFT JOIN employees ON employees.id = leave_requests.employee_id")

	if q.Status != nil && *q.Status != "" {
		tx = tx.Where("leave_requests.status = ?", *q.Status)
	}
	if q.EmployeeID != nil {
		tx = tx.Where("leave_requests.employee_id = ?", *q.EmployeeID)
	}

	var rows []leaveRow
	if err := tx.Order("leave_requests.created_at DESC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch leave requests")
	}

	out := make([]*leaveDTO.LeaveRequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, leaveDTO.NewLeaveRequestResponse(&rows[i].LeaveRequestModel, rows[i].EmployeeName))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== APPROVE =====================
// PATCH /api/a/leaves/:id/approve. Pending only; records who and when.
func (h *LeaveController) Approve(c *fiber.Ctx) error {
	return h.decide(c, leaveModel.StatusApproved, nil)
}

// ===================== REJECT =====================
// PATCH /api/a/leaves/:id/reject. Pending only; a reason is mandatory.
func (h *LeaveController) Reject(c *fiber.Ctx) error {
	var req leaveDTO.RejectLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLeave.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return h.decide(c, leaveModel.StatusRejected, &req.Reason)
}

func (h *LeaveController) decide(c *fiber.Ctx, status string, rejectionReason *string) error {
	adminID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid leave request id")
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      status,
		"approved_by": adminID,
		"approved_at": now,
	}
	if rejectionReason != nil {
		updates["rejection_reason"] = *rejectionReason
	}

	res := h.DB.Model(&leaveModel.LeaveRequestModel{}).
		Where("id = ? AND status = ?", id, leaveModel.StatusPending).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update leave request")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pending leave request not found")
	}

	return helper.JsonUpdated(c, "Leave request "+status, fiber.Map{"id": id, "status": status})
}
