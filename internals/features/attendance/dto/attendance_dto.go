// internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/attendance/model"
)

/* ===================== QUERIES ===================== */

type ListAttendanceQuery struct {
	From       *string    `query:"from"` // YYYY-MM-DD inclusive
	To         *string    `query:"to"`   // YYYY-MM-DD inclusive
	EmployeeID *uuid.UUID `query:"employee_id"`
}

/* ===================== RESPONSES ===================== */

type AttendanceResponse struct {
	ID           uuid.UUID  `json:"id"`
	EmployeeID   uuid.UUID  `json:"employee_id"`
	EmployeeName *string    `json:"employee_name,omitempty"`
	Date         string     `json:"date"`
	CheckIn      time.Time  `json:"check_in"`
	CheckOut     *time.Time `json:"check_out,omitempty"`
	SelfieURL    *string    `json:"selfie_url,omitempty"`
	Status       string     `json:"status"`
	WorkedHours  *float64   `json:"worked_hours,omitempty"`
}

func NewAttendanceResponse(m *model.AttendanceModel, employeeName *string) *AttendanceResponse {
	if m == nil {
		return nil
	}
	resp := &AttendanceResponse{
		ID:           m.ID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: employeeName,
		Date:         m.Date.Format("2006-01-02"),
		CheckIn:      m.CheckIn,
		CheckOut:     m.CheckOut,
		SelfieURL:    m.SelfieURL,
		Status:       m.Status,
	}
	if h := WorkedHours(m.CheckIn, m.CheckOut); h != nil {
		resp.WorkedHours = h
	}
	return resp
}

// WorkedHours returns the duration between check-in and check-out in
// hours, nil while still checked in. Clock skew is clamped to zero so a
// check-out recorded before check-in never yields a negative duration.
func WorkedHours(checkIn time.Time, checkOut *time.Time) *float64 {
	if checkOut == nil {
		return nil
	}
	d := checkOut.Sub(checkIn)
	if d < 0 {
		d = 0
	}
	h := d.Hours()
	return &h
}
