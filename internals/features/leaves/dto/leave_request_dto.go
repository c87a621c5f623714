// internals/features/leaves/dto/leave_request_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/leaves/model"
)

/* ===================== REQUESTS ===================== */

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" validate:"required,oneof=casual sick annual emergency other"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required,min=3"`
}

// ToModel parses the date range; status is always forced to pending.
func (r CreateLeaveRequest) ToModel(employeeID uuid.UUID) (*model.LeaveRequestModel, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return nil, errors.New("start_date invalid (YYYY-MM-DD)")
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return nil, errors.New("end_date invalid (YYYY-MM-DD)")
	}
	if end.Before(start) {
		return nil, errors.New("end_date must not be before start_date")
	}

	return &model.LeaveRequestModel{
		EmployeeID: employeeID,
		LeaveType:  r.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     strings.TrimSpace(r.Reason),
		Status:     model.StatusPending,
	}, nil
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

/* ===================== QUERIES ===================== */

type ListLeaveQuery struct {
	Status     *string    `query:"status"`
	EmployeeID *uuid.UUID `query:"employee_id"`
}

/* ===================== RESPONSES ===================== */

type LeaveRequestResponse struct {
	ID              uuid.UUID  `json:"id"`
	EmployeeID      uuid.UUID  `json:"employee_id"`
	EmployeeName    *string    `json:"employee_name,omitempty"`
	LeaveType       string     `json:"leave_type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	ApprovedBy      *uuid.UUID `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewLeaveRequestResponse(m *model.LeaveRequestModel, employeeName *string) *LeaveRequestResponse {
	if m == nil {
		return nil
	}
	return &LeaveRequestResponse{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		EmployeeName:    employeeName,
		LeaveType:       m.LeaveType,
		StartDate:       m.StartDate.Format("2006-01-02"),
		EndDate:         m.EndDate.Format("2006-01-02"),
		Reason:          m.Reason,
		Status:          m.Status,
		RejectionReason: m.RejectionReason,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		CreatedAt:       m.CreatedAt,
	}
}
