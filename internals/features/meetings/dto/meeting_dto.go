// internals/features/meetings/dto/meeting_dto.go
package dto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/meetings/model"
)

/* ===================== REQUESTS ===================== */

type CreateMeetingRequest struct {
	Title        string   `json:"title" validate:"required,min=2,max=200"`
	Description  *string  `json:"description" validate:"omitempty"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      *string  `json:"end_time" validate:"omitempty,datetime=15:04"`
	MeetLink     *string  `json:"meet_link" validate:"omitempty,url"`
	Attendees    []string `json:"attendees" validate:"omitempty,dive,min=1"`
	GenerateLink bool     `json:"generate_link"`
}

func (r CreateMeetingRequest) ToModel(createdBy uuid.UUID) (*model.MeetingModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, errors.New("date invalid (YYYY-MM-DD)")
	}
	if r.EndTime != nil && *r.EndTime <= r.StartTime {
		return nil, errors.New("end_time must be after start_time")
	}

	m := &model.MeetingModel{
		Title:     strings.TrimSpace(r.Title),
		Date:      date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Attendees: r.Attendees,
		CreatedBy: createdBy,
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d != "" {
			m.Description = &d
		}
	}
	switch {
	case r.MeetLink != nil && strings.TrimSpace(*r.MeetLink) != "":
		link := strings.TrimSpace(*r.MeetLink)
		m.MeetLink = &link
	case r.GenerateLink:
		link := GenerateMeetLink()
		m.MeetLink = &link
	}
	return m, nil
}

type UpdateMeetingRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=2,max=200"`
	Description *string  `json:"description" validate:"omitempty"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string  `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string  `json:"end_time" validate:"omitempty,datetime=15:04"`
	MeetLink    *string  `json:"meet_link" validate:"omitempty,url"`
	Attendees   []string `json:"attendees" validate:"omitempty,dive,min=1"`
}

func (r *UpdateMeetingRequest) ApplyToModel(m *model.MeetingModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			m.Description = nil
		} else {
			m.Description = &d
		}
	}
	if r.Date != nil {
		if t, err := time.Parse("2006-01-02", *r.Date); err == nil {
			m.Date = t
		}
	}
	if r.StartTime != nil {
		m.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		m.EndTime = r.EndTime
	}
	if r.MeetLink != nil {
		link := strings.TrimSpace(*r.MeetLink)
		if link == "" {
			m.MeetLink = nil
		} else {
			m.MeetLink = &link
		}
	}
	if r.Attendees != nil {
		m.Attendees = r.Attendees
	}
}

// GenerateMeetLink builds a Meet-style xxx-yyyy-zzz room code. Room codes
// are not secrets; the clock fills in if the CSPRNG ever fails.
func GenerateMeetLink() string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		now := time.Now().UnixNano()
		for i := range buf {
			buf[i] = byte(now >> (uint(i) * 6))
		}
	}
	for i := range buf {
		buf[i] = letters[int(buf[i])%len(letters)]
	}
	return fmt.Sprintf("https://meet.google.com/%s-%s-%s", buf[:3], buf[3:7], buf[7:])
}

/* ===================== QUERIES ===================== */

type ListMeetingQuery struct {
	From *string `query:"from"` // YYYY-MM-DD inclusive
	To   *string `query:"to"`   // YYYY-MM-DD inclusive
}

/* ===================== RESPONSES ===================== */

type MeetingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     *string   `json:"end_time,omitempty"`
	MeetLink    *string   `json:"meet_link,omitempty"`
	Attendees   []string  `json:"attendees"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMeetingResponse(m *model.MeetingModel) *MeetingResponse {
	if m == nil {
		return nil
	}
	attendees := []string(m.Attendees)
	if attendees == nil {
		attendees = []string{}
	}
	return &MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Date:        m.Date.Format("2006-01-02"),
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		MeetLink:    m.MeetLink,
		Attendees:   attendees,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}
