// internals/features/tasks/dto/task_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/tasks/model"
)

/* ===================== REQUESTS ===================== */

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=2,max=200"`
	Description *string    `json:"description" validate:"omitempty"`
	AssignedTo  *uuid.UUID `json:"assigned_to" validate:"omitempty"`
	Priority    string     `json:"priority" validate:"required,oneof=low medium high"`
	Status      string     `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     *string    `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r CreateTaskRequest) ToModel(createdBy uuid.UUID) *model.TaskModel {
	m := &model.TaskModel{
		Title:      strings.TrimSpace(r.Title),
		AssignedTo: r.AssignedTo,
		Priority:   r.Priority,
		Status:     model.StatusPending,
		CreatedBy:  createdBy,
	}
	if r.Status != "" {
		m.Status = r.Status
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d != "" {
			m.Description = &d
		}
	}
	if r.DueDate != nil {
		if t, err := time.Parse("2006-01-02", *r.DueDate); err == nil {
			m.DueDate = &t
		}
	}
	return m
}

// UpdateTaskRequest: partial update.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string    `json:"description" validate:"omitempty"`
	AssignedTo  *uuid.UUID `json:"assigned_to" validate:"omitempty"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     *string    `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateTaskRequest) ApplyToModel(m *model.TaskModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			m.Description = nil
		} else {
			m.Description = &d
		}
	}
	if r.AssignedTo != nil {
		if *r.AssignedTo == uuid.Nil {
			m.AssignedTo = nil
		} else {
			m.AssignedTo = r.AssignedTo
		}
	}
	if r.Priority != nil {
		m.Priority = *r.Priority
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.DueDate != nil {
		if t, err := time.Parse("2006-01-02", *r.DueDate); err == nil {
			m.DueDate = &t
		}
	}
}

// MoveTaskRequest drives the board drag: the status field and nothing else.
type MoveTaskRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

/* ===================== QUERIES ===================== */

type ListTaskQuery struct {
	AssignedTo *uuid.UUID `query:"assigned_to"`
	Status     *string    `query:"status"`
	Priority   *string    `query:"priority"`
}

/* ===================== RESPONSES ===================== */

type TaskResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	AssignedTo   *uuid.UUID `json:"assigned_to,omitempty"`
	AssigneeName *string    `json:"assignee_name,omitempty"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	CreatedBy    uuid.UUID  `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewTaskResponse(m *model.TaskModel, assigneeName *string) *TaskResponse {
	if m == nil {
		return nil
	}
	return &TaskResponse{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		AssignedTo:   m.AssignedTo,
		AssigneeName: assigneeName,
		Priority:     m.Priority,
		Status:       m.Status,
		DueDate:      m.DueDate,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
	}
}
