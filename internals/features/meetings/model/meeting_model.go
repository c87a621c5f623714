// internals/features/meetings/model/meeting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MeetingModel struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description *string        `gorm:"column:description;type:text" json:"description,omitempty"`
	Date        time.Time      `gorm:"column:date;type:date;not null;index" json:"date"`
	StartTime   string         `gorm:"column:start_time;type:varchar(5);not null" json:"start_time"` // HH:MM
	EndTime     *string        `gorm:"column:end_time;type:varchar(5)" json:"end_time,omitempty"`
	MeetLink    *string        `gorm:"column:meet_link;type:text" json:"meet_link,omitempty"`
	Attendees   pq.StringArray `gorm:"column:attendees;type:text[]" json:"attendees"`
	CreatedBy   uuid.UUID      `gorm:"column:created_by;type:uuid;not null" json:"created_by"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (MeetingModel) TableName() string { return "meetings" }
