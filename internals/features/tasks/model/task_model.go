// internals/features/tasks/model/task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type TaskModel struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	AssignedTo  *uuid.UUID `gorm:"column:assigned_to;type:uuid;index" json:"assigned_to,omitempty"`
	Priority    string     `gorm:"column:priority;type:varchar(10);not null;default:medium" json:"priority"`
	Status      string     `gorm:"column:status;type:varchar(20);not null;default:pending" json:"status"`
	DueDate     *time.Time `gorm:"column:due_date;type:date" json:"due_date,omitempty"`
	CreatedBy   uuid.UUID  `gorm:"column:created_by;type:uuid;not null" json:"created_by"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (TaskModel) TableName() string { return "tasks" }
