// internals/features/updates/model/update_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkUpdateModel is one logged hour of client or project work.
type WorkUpdateModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID  uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index" json:"employee_id"`
	Date        time.Time `gorm:"column:date;type:date;not null;index" json:"date"`
	Hours       float64   `gorm:"column:hours;type:numeric(4,2);not null" json:"hours"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	FileURL     *string   `gorm:"column:file_url;type:text" json:"file_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (WorkUpdateModel) TableName() string { return "work_updates" }

// LearningUpdateModel is one logged hour of study or training.
type LearningUpdateModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index" json:"employee_id"`
	Date       time.Time `gorm:"column:date;type:date;not null;index" json:"date"`
	Hours      float64   `gorm:"column:hours;type:numeric(4,2);not null" json:"hours"`
	Topic      string    `gorm:"column:topic;type:text;not null" json:"topic"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (LearningUpdateModel) TableName() string { return "learning_updates" }
