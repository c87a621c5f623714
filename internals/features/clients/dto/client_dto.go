// internals/features/clients/dto/client_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/clients/model"
)

/* ===================== REQUESTS ===================== */

type CreateClientRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=150"`
	Company *string `json:"company" validate:"omitempty,max=150"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Notes   *string `json:"notes" validate:"omitempty"`
}

func (r CreateClientRequest) ToModel() *model.ClientModel {
	return &model.ClientModel{
		Name:     strings.TrimSpace(r.Name),
		Company:  trimPtr(r.Company),
		Email:    trimPtr(r.Email),
		Phone:    trimPtr(r.Phone),
		Notes:    trimPtr(r.Notes),
		IsActive: true,
	}
}

type UpdateClientRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=150"`
	Company *string `json:"company" validate:"omitempty,max=150"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Notes   *string `json:"notes" validate:"omitempty"`
}

func (r *UpdateClientRequest) ApplyToModel(m *model.ClientModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Company != nil {
		m.Company = trimPtr(r.Company)
	}
	if r.Email != nil {
		m.Email = trimPtr(r.Email)
	}
	if r.Phone != nil {
		m.Phone = trimPtr(r.Phone)
	}
	if r.Notes != nil {
		m.Notes = trimPtr(r.Notes)
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ===================== RESPONSES ===================== */

type ClientResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Company       *string   `json:"company,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	IsClientMonth bool      `json:"is_client_month"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewClientResponse(m *model.ClientModel) *ClientResponse {
	if m == nil {
		return nil
	}
	return &ClientResponse{
		ID:            m.ID,
		Name:          m.Name,
		Company:       m.Company,
		Email:         m.Email,
		Phone:         m.Phone,
		Notes:         m.Notes,
		IsClientMonth: m.IsClientMonth,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
	}
}
