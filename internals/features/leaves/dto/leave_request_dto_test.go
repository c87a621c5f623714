package dto

import (
	"testing"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/leaves/model"
)

func TestCreateLeaveToModel(t *testing.T) {
	employeeID := uuid.New()
	req := CreateLeaveRequest{
		LeaveType: "casual",
		StartDate: "2025-07-01",
		EndDate:   "2025-07-03",
		Reason:    "  family function  ",
	}

	m, err := req.ToModel(employeeID)
	if err != nil {
		t.Fatal(err)
	}
	if m.Status != model.StatusPending {
		t.Errorf("Status = %q, every new request must be pending", m.Status)
	}
	if m.EmployeeID != employeeID {
		t.Errorf("EmployeeID = %s", m.EmployeeID)
	}
	if m.Reason != "family function" {
		t.Errorf("Reason = %q, want trimmed", m.Reason)
	}
	if m.EndDate.Before(m.StartDate) {
		t.Error("range parsed backwards")
	}
}

func TestCreateLeaveToModelSingleDay(t *testing.T) {
	req := CreateLeaveRequest{
		LeaveType: "sick",
		StartDate: "2025-07-01",
		EndDate:   "2025-07-01",
		Reason:    "fever",
	}
	if _, err := req.ToModel(uuid.New()); err != nil {
		t.Fatalf("same-day leave must be allowed: %v", err)
	}
}

func TestCreateLeaveToModelRejectsInvertedRange(t *testing.T) {
	req := CreateLeaveRequest{
		LeaveType: "annual",
		StartDate: "2025-07-10",
		EndDate:   "2025-07-05",
		Reason:    "trip",
	}
	if _, err := req.ToModel(uuid.New()); err == nil {
		t.Fatal("end before start must be rejected")
	}
}

func TestCreateLeaveToModelRejectsBadDates(t *testing.T) {
	for _, req := range []CreateLeaveRequest{
		{LeaveType: "sick", StartDate: "01-07-2025", EndDate: "2025-07-02", Reason: "x y z"},
		{LeaveType: "sick", StartDate: "2025-07-01", EndDate: "tomorrow", Reason: "x y z"},
	} {
		if _, err := req.ToModel(uuid.New()); err == nil {
			t.Errorf("dates %q..%q should be rejected", req.StartDate, req.EndDate)
		}
	}
}
