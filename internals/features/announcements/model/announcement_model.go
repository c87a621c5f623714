// internals/features/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AnnouncementModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title     string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null" json:"created_by"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
