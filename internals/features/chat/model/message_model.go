// internals/features/chat/model/message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MessageModel struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ChannelID   uuid.UUID      `gorm:"column:channel_id;type:uuid;not null;index" json:"channel_id"`
	SenderID    uuid.UUID      `gorm:"column:sender_id;type:uuid;not null" json:"sender_id"`
	Content     string         `gorm:"column:content;type:text;not null" json:"content"`
	Attachments datatypes.JSON `gorm:"column:attachments;type:jsonb" json:"attachments,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime;index" json:"created_at"`
}

func (MessageModel) TableName() string { return "chat_messages" }
