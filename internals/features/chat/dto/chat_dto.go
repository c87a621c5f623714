// internals/features/chat/dto/chat_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "grofast_backend/internals/features/chat/model"
)

/* ===================== REQUESTS ===================== */

type SendMessageRequest struct {
	Content     string         `json:"content" validate:"required,min=1,max=4000"`
	Attachments datatypes.JSON `json:"attachments" validate:"omitempty"`
}

func (r SendMessageRequest) ToModel(channelID, senderID uuid.UUID) *model.MessageModel {
	return &model.MessageModel{
		ChannelID:   channelID,
		SenderID:    senderID,
		Content:     r.Content,
		Attachments: r.Attachments,
	}
}

type CreateChannelRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

type ChannelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}

func NewChannelResponse(m *model.ChannelModel) *ChannelResponse {
	if m == nil {
		return nil
	}
	return &ChannelResponse{ID: m.ID, Name: m.Name, Description: m.Description}
}

type MessageResponse struct {
	ID          uuid.UUID      `json:"id"`
	ChannelID   uuid.UUID      `json:"channel_id"`
	SenderID    uuid.UUID      `json:"sender_id"`
	SenderName  *string        `json:"sender_name,omitempty"`
	Content     string         `json:"content"`
	Attachments datatypes.JSON `json:"attachments,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func NewMessageResponse(m *model.MessageModel, senderName *string) *MessageResponse {
	if m == nil {
		return nil
	}
	return &MessageResponse{
		ID:          m.ID,
		ChannelID:   m.ChannelID,
		SenderID:    m.SenderID,
		SenderName:  senderName,
		Content:     m.Content,
		Attachments: m.Attachments,
		CreatedAt:   m.CreatedAt,
	}
}
