// internals/features/announcements/dto/announcement_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/announcements/model"
)

/* ===================== REQUESTS ===================== */

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required,min=2,max=200"`
	Content string `json:"content" validate:"required,min=3"`
}

func (r CreateAnnouncementRequest) ToModel(createdBy uuid.UUID) *model.AnnouncementModel {
	return &model.AnnouncementModel{
		Title:     strings.TrimSpace(r.Title),
		Content:   strings.TrimSpace(r.Content),
		IsActive:  true,
		CreatedBy: createdBy,
	}
}

type UpdateAnnouncementRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=2,max=200"`
	Content  *string `json:"content" validate:"omitempty,min=3"`
	IsActive *bool   `json:"is_active" validate:"omitempty"`
}

func (r *UpdateAnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		m.Content = strings.TrimSpace(*r.Content)
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* ===================== RESPONSES ===================== */

type AnnouncementResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAnnouncementResponse(m *model.AnnouncementModel) *AnnouncementResponse {
	if m == nil {
		return nil
	}
	return &AnnouncementResponse{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		IsActive:  m.IsActive,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
