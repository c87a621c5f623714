// internals/features/tasks/controller/task_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	taskDTO "grofast_backend/internals/features/tasks/dto"
	taskModel "grofast_backend/internals/features/tasks/model"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

type TaskController struct{ DB *gorm.DB }

func NewTaskController(db *gorm.DB) *TaskController { return &TaskController{DB: db} }

var validateTask = validator.New()

// taskRow carries the joined assignee name for responses.
type taskRow struct {
	taskModel.TaskModel
	AssigneeName *string `gorm:"column:assignee_name"`
}

// ===================== LIST =====================
// GET /api/u/tasks
func (h *TaskController) List(c *fiber.Ctx) error {
	var q taskDTO.ListTaskQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	tx := h.DB.Table("tasks").
		Select("tasks.*, employees.name AS assignee_name").
		Joins("LEFT JOIN employees ON employees.id = tasks.assigned_to")

	// Members only see their own board; admins see everything.
	if !authMw.IsAdmin(c) {
		employeeID, err := authMw.GetEmployeeID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		tx = tx.Where("tasks.assigned_to = ?", employeeID)
	} else if q.AssignedTo != nil {
		tx = tx.Where("tasks.assigned_to = ?", *q.AssignedTo)
	}
	if q.Status != nil && *q.Status != "" {
		tx = tx.Where("tasks.status = ?", *q.Status)
	}
	if q.Priority != nil && *q.Priority != "" {
		tx = tx.Where("tasks.priority = ?", *q.Priority)
	}

	var rows []taskRow
	if err := tx.Order("tasks.created_at DESC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tasks")
	}

	out := make([]*taskDTO.TaskResponse, 0, len(rows))
	for i := range rows {
		out = append(out, taskDTO.NewTaskResponse(&rows[i].TaskModel, rows[i].AssigneeName))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== CREATE =====================
// POST /api/a/tasks
func (h *TaskController) Create(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req taskDTO.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTask.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := req.ToModel(employeeID)
	if err := h.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create task")
	}

	return helper.JsonCreated(c, "Task created", taskDTO.NewTaskResponse(row, nil))
}

// ===================== UPDATE =====================
// PUT /api/a/tasks/:id
func (h *TaskController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	var req taskDTO.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTask.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row taskModel.TaskModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch task")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update task")
	}

	return helper.JsonUpdated(c, "Task updated", taskDTO.NewTaskResponse(&row, nil))
}

// ===================== MOVE (BOARD DRAG) =====================
// PATCH /api/u/tasks/:id/status. Single-field update; title, priority and
// everything else stay untouched.
func (h *TaskController) Move(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	var req taskDTO.MoveTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTask.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	res := h.DB.Model(&taskModel.TaskModel{}).
		Where("id = ?", id).
		Update("status", req.Status)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to move task")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
	}

	return helper.JsonUpdated(c, "Task moved", fiber.Map{"id": id, "status": req.Status})
}

// ===================== DELETE =====================
// DELETE /api/a/tasks/:id. Explicit admin hard delete.
func (h *TaskController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	res := h.DB.Delete(&taskModel.TaskModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete task")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
	}

	return helper.JsonDeleted(c, "Task deleted", nil)
}
