// internals/features/leaves/model/leave_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type LeaveRequestModel struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID      uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index" json:"employee_id"`
	LeaveType       string     `gorm:"column:leave_type;type:varchar(20);not null" json:"leave_type"`
	StartDate       time.Time  `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate         time.Time  `gorm:"column:end_date;type:date;not null" json:"end_date"`
	Reason          string     `gorm:"column:reason;type:text;not null" json:"reason"`
	Status          string     `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`
	ApprovedBy      *uuid.UUID `gorm:"column:approved_by;type:uuid" json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at;type:timestamptz" json:"approved_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (LeaveRequestModel) TableName() string { return "leave_requests" }
