package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/attendance/model"
)

func TestWorkedHoursNilWhileCheckedIn(t *testing.T) {
	if got := WorkedHours(time.Now(), nil); got != nil {
		t.Fatalf("open row should have nil worked hours, got %v", *got)
	}
}

func TestWorkedHours(t *testing.T) {
	in := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	out := in.Add(8*time.Hour + 30*time.Minute)

	got := WorkedHours(in, &out)
	if got == nil || *got != 8.5 {
		t.Fatalf("WorkedHours = %v, want 8.5", got)
	}
}

// A check-out stamped before check-in (clock skew, manual fix-ups) must
// clamp to zero instead of going negative.
func TestWorkedHoursClampsNegative(t *testing.T) {
	in := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	out := in.Add(-time.Minute)

	got := WorkedHours(in, &out)
	if got == nil || *got != 0 {
		t.Fatalf("WorkedHours = %v, want 0", got)
	}
}

func TestNewAttendanceResponse(t *testing.T) {
	in := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)
	m := &model.AttendanceModel{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		CheckIn:    in,
		CheckOut:   &out,
		Status:     "present",
	}

	resp := NewAttendanceResponse(m, nil)
	if resp.Date != "2025-06-02" {
		t.Errorf("Date = %q", resp.Date)
	}
	if resp.WorkedHours == nil || *resp.WorkedHours != 8 {
		t.Errorf("WorkedHours = %v", resp.WorkedHours)
	}

	if NewAttendanceResponse(nil, nil) != nil {
		t.Error("nil model must map to nil response")
	}
}
