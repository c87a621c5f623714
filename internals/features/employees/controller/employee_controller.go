// internals/features/employees/controller/employee_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	empDTO "grofast_backend/internals/features/employees/dto"
	empModel "grofast_backend/internals/features/employees/model"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

type EmployeeController struct{ DB *gorm.DB }

func NewEmployeeController(db *gorm.DB) *EmployeeController { return &EmployeeController{DB: db} }

var validateEmployee = validator.New()

// ===================== LIST =====================
// GET /api/u/employees
func (h *EmployeeController) List(c *fiber.Ctx) error {
	tx := h.DB.Model(&empModel.EmployeeModel{}).Where("is_active = TRUE")

	if dep := strings.TrimSpace(c.Query("department")); dep != "" {
		tx = tx.Where("department = ?", dep)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("role = ?", role)
	}

	var rows []empModel.EmployeeModel
	if err := tx.Order("name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employees")
	}

	out := make([]*empDTO.EmployeeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, empDTO.NewEmployeeResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== DETAIL =====================
// GET /api/u/employees/:id. Profile plus task/leave counters.
func (h *EmployeeController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee id")
	}

	var row empModel.EmployeeModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employee")
	}

	var stats empDTO.EmployeeStats
	h.DB.Table("tasks").Where("assigned_to = ?", id).Count(&stats.TotalTasks)
	h.DB.Table("tasks").Where("assigned_to = ? AND status = 'completed'", id).Count(&stats.CompletedTasks)
	h.DB.Table("leave_requests").Where("employee_id = ? AND status = 'pending'", id).Count(&stats.PendingLeaves)
	h.DB.Table("leave_requests").Where("employee_id = ? AND status = 'approved'", id).Count(&stats.ApprovedLeaves)

	return helper.JsonOK(c, "ok", fiber.Map{
		"employee": empDTO.NewEmployeeResponse(&row),
		"stats":    stats,
	})
}

// ===================== UPDATE SELF =====================
// PUT /api/u/employees/me
func (h *EmployeeController) UpdateMe(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	return h.update(c, employeeID, false)
}

// ===================== UPDATE (ADMIN) =====================
// PUT /api/a/employees/:id
func (h *EmployeeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee id")
	}
	return h.update(c, id, true)
}

func (h *EmployeeController) update(c *fiber.Ctx, id uuid.UUID, adminFields bool) error {
	var req empDTO.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEmployee.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row empModel.EmployeeModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch employee")
	}

	req.ApplyToModel(&row, adminFields)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update employee")
	}

	return helper.JsonUpdated(c, "Employee updated", empDTO.NewEmployeeResponse(&row))
}

// ===================== CREATE (ADMIN) =====================
// POST /api/a/employees
func (h *EmployeeController) Create(c *fiber.Ctx) error {
	var req empDTO.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEmployee.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	row := req.ToModel(string(hashed))
	if err := h.DB.Create(row).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create employee")
	}

	return helper.JsonCreated(c, "Employee created", empDTO.NewEmployeeResponse(row))
}

// ===================== DEACTIVATE (ADMIN) =====================
// DELETE /api/a/employees/:id. Soft: flips is_active off.
func (h *EmployeeController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee id")
	}

	res := h.DB.Model(&empModel.EmployeeModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate employee")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
	}

	return helper.JsonDeleted(c, "Employee deactivated", nil)
}
