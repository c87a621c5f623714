// internals/features/chat/model/channel_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChannelModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (ChannelModel) TableName() string { return "chat_channels" }

// SeedDefaultChannels makes sure the two stock channels exist.
func SeedDefaultChannels(db *gorm.DB) error {
	defaults := []ChannelModel{
		{Name: "General"},
		{Name: "Announcements"},
	}
	for i := range defaults {
		if err := db.Where("name = ?", defaults[i].Name).
			FirstOrCreate(&defaults[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
