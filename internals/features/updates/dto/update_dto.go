// internals/features/updates/dto/update_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/updates/model"
)

/* ===================== REQUESTS ===================== */

type CreateWorkUpdateRequest struct {
	Date        string  `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Hours       float64 `json:"hours" form:"hours" validate:"required,gt=0,lte=24"`
	Description string  `json:"description" form:"description" validate:"required,min=3"`
}

func (r CreateWorkUpdateRequest) ToModel(employeeID uuid.UUID, fileURL *string) (*model.WorkUpdateModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, errors.New("date invalid (YYYY-MM-DD)")
	}
	return &model.WorkUpdateModel{
		EmployeeID:  employeeID,
		Date:        date,
		Hours:       r.Hours,
		Description: strings.TrimSpace(r.Description),
		FileURL:     fileURL,
	}, nil
}

type CreateLearningUpdateRequest struct {
	Date  string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours float64 `json:"hours" validate:"required,gt=0,lte=24"`
	Topic string  `json:"topic" validate:"required,min=3"`
}

func (r CreateLearningUpdateRequest) ToModel(employeeID uuid.UUID) (*model.LearningUpdateModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, errors.New("date invalid (YYYY-MM-DD)")
	}
	return &model.LearningUpdateModel{
		EmployeeID: employeeID,
		Date:       date,
		Hours:      r.Hours,
		Topic:      strings.TrimSpace(r.Topic),
	}, nil
}

type UpdateWorkUpdateRequest struct {
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Hours       *float64 `json:"hours" validate:"omitempty,gt=0,lte=24"`
	Description *string  `json:"description" validate:"omitempty,min=3"`
}

func (r *UpdateWorkUpdateRequest) ApplyToModel(m *model.WorkUpdateModel) {
	if r.Date != nil {
		if t, err := time.Parse("2006-01-02", *r.Date); err == nil {
			m.Date = t
		}
	}
	if r.Hours != nil {
		m.Hours = *r.Hours
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
}

type UpdateLearningUpdateRequest struct {
	Date  *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Hours *float64 `json:"hours" validate:"omitempty,gt=0,lte=24"`
	Topic *string  `json:"topic" validate:"omitempty,min=3"`
}

func (r *UpdateLearningUpdateRequest) ApplyToModel(m *model.LearningUpdateModel) {
	if r.Date != nil {
		if t, err := time.Parse("2006-01-02", *r.Date); err == nil {
			m.Date = t
		}
	}
	if r.Hours != nil {
		m.Hours = *r.Hours
	}
	if r.Topic != nil {
		m.Topic = strings.TrimSpace(*r.Topic)
	}
}

/* ===================== RESPONSES ===================== */

type WorkUpdateResponse struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Date         string    `json:"date"`
	Hours        float64   `json:"hours"`
	Description  string    `json:"description"`
	FileURL      *string   `json:"file_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewWorkUpdateResponse(m *model.WorkUpdateModel, employeeName *string) *WorkUpdateResponse {
	if m == nil {
		return nil
	}
	return &WorkUpdateResponse{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: employeeName,
		Date:         m.Date.Format("2006-01-02"),
		Hours:        m.Hours,
		Description:  m.Description,
		FileURL:      m.FileURL,
		CreatedAt:    m.CreatedAt,
	}
}

type LearningUpdateResponse struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Date         string    `json:"date"`
	Hours        float64   `json:"hours"`
	Topic        string    `json:"topic"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewLearningUpdateResponse(m *model.LearningUpdateModel, employeeName *string) *LearningUpdateResponse {
	if m == nil {
		return nil
	}
	return &LearningUpdateResponse{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: employeeName,
		Date:         m.Date.Format("2006-01-02"),
		Hours:        m.Hours,
		Topic:        m.Topic,
		CreatedAt:    m.CreatedAt,
	}
}
