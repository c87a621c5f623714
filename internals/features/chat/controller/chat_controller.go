// internals/features/chat/controller/chat_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	chatDTO "grofast_backend/internals/features/chat/dto"
	chatHub "grofast_backend/internals/features/chat/hub"
	chatModel "grofast_backend/internals/features/chat/model"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

type ChatController struct {
	DB  *gorm.DB
	Hub *chatHub.Hub
}

func NewChatController(db *gorm.DB, h *chatHub.Hub) *ChatController {
	return &ChatController{DB: db, Hub: h}
}

var validateChat = validator.New()

type messageRow struct {
	chatModel.MessageModel
	SenderName *string `gorm:"column:sender_name"`
}

// ===================== CHANNELS =====================
// GET /api/u/chat/channels
func (h *ChatController) ListChannels(c *fiber.Ctx) error {
	var rows []chatModel.ChannelModel
	if err := h.DB.Order("created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch channels")
	}

	out := make([]*chatDTO.ChannelResponse, 0, len(rows))
	for i := range rows {
		out = append(out, chatDTO.NewChannelResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== CREATE CHANNEL =====================
// POST /api/a/chat/channels
func (h *ChatController) CreateChannel(c *fiber.Ctx) error {
	var req chatDTO.CreateChannelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateChat.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := chatModel.ChannelModel{Name: req.Name, Description: req.Description}
	if err := h.DB.Create(&row).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Channel name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create channel")
	}
	return helper.JsonCreated(c, "Channel created", chatDTO.NewChannelResponse(&row))
}

// ===================== HISTORY =====================
// GET /api/u/chat/channels/:id/messages: newest page first, returned in
// chronological order for rendering.
func (h *ChatController) ListMessages(c *fiber.Ctx) error {
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid channel id")
	}

	p := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := h.DB.Model(&chatModel.MessageModel{}).
		Where("channel_id = ?", channelID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count messages")
	}

	var rows []messageRow
	if err := h.DB.Table("chat_messages").
		Select("chat_messages.*, employees.name AS sender_name").
		Joins("LEFT JOIN employees ON employees.id = chat_messages.sender_id").
		Where("chat_messages.channel_id = ?", channelID).
		Order("chat_messages.created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch messages")
	}

	// Reverse so the page reads oldest to newest.
	out := make([]*chatDTO.MessageResponse, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, chatDTO.NewMessageResponse(&rows[i].MessageModel, rows[i].SenderName))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== SEND =====================
// POST /api/u/chat/channels/:id/messages: persists first, then fans out
// to live subscribers. The hub event carries the row id so clients that
// also see the HTTP response render the message once.
func (h *ChatController) SendMessage(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	channelID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid channel id")
	}

	var channel chatModel.ChannelModel
	if err := h.DB.First(&channel, "id = ?", channelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Channel not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch channel")
	}

	var req chatDTO.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateChat.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := req.ToModel(channelID, employeeID)
	if err := h.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	senderName := authMw.GetUserName(c)
	resp := chatDTO.NewMessageResponse(row, senderName)
	if h.Hub != nil {
		h.Hub.Broadcast(chatHub.Event{
			MessageID: row.ID,
			ChannelID: channelID,
			Payload:   resp,
		})
	}

	return helper.JsonCreated(c, "Message sent", resp)
}
