// internals/features/employees/dto/employee_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/employees/model"
)

/* ===================== REQUESTS ===================== */

type CreateEmployeeRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	Role        string  `json:"role" validate:"required,oneof=admin member"`
	Department  *string `json:"department" validate:"omitempty,max=80"`
	Designation *string `json:"designation" validate:"omitempty,max=80"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
}

// ToModel builds the row; the password hash is set by the controller.
func (r CreateEmployeeRequest) ToModel(passwordHash string) *model.EmployeeModel {
	m := &model.EmployeeModel{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: passwordHash,
		Role:     r.Role,
		IsActive: true,
	}
	m.Department = trimPtr(r.Department)
	m.Designation = trimPtr(r.Designation)
	m.Phone = trimPtr(r.Phone)
	return m
}

// UpdateEmployeeRequest: partial update, all fields optional.
type UpdateEmployeeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Department  *string `json:"department" validate:"omitempty,max=80"`
	Designation *string `json:"designation" validate:"omitempty,max=80"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	// Admin-only fields; ignored on self-update.
	Role     *string `json:"role" validate:"omitempty,oneof=admin member"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

// ApplyToModel applies only the fields that were sent. adminFields controls
// whether role/is_active may change.
func (r *UpdateEmployeeRequest) ApplyToModel(m *model.EmployeeModel, adminFields bool) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Department != nil {
		m.Department = trimPtr(r.Department)
	}
	if r.Designation != nil {
		m.Designation = trimPtr(r.Designation)
	}
	if r.Phone != nil {
		m.Phone = trimPtr(r.Phone)
	}
	if adminFields {
		if r.Role != nil {
			m.Role = *r.Role
		}
		if r.IsActive != nil {
			m.IsActive = *r.IsActive
		}
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ===================== RESPONSES ===================== */

type EmployeeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  *string   `json:"department,omitempty"`
	Designation *string   `json:"designation,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEmployeeResponse(m *model.EmployeeModel) *EmployeeResponse {
	if m == nil {
		return nil
	}
	return &EmployeeResponse{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Role:        m.Role,
		Department:  m.Department,
		Designation: m.Designation,
		Phone:       m.Phone,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

// EmployeeStats backs the profile page (task/leave counters).
type EmployeeStats struct {
	TotalTasks     int64 `json:"total_tasks"`
	CompletedTasks int64 `json:"completed_tasks"`
	PendingLeaves  int64 `json:"pending_leaves"`
	ApprovedLeaves int64 `json:"approved_leaves"`
}
