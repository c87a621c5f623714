package dto

import (
	"testing"

	"github.com/google/uuid"
)

func TestCreateWorkUpdateToModel(t *testing.T) {
	employeeID := uuid.New()
	fileURL := "https://abc.supabase.co/storage/v1/object/public/work-update-files/x.fig"
	req := CreateWorkUpdateRequest{
		Date:        "2025-07-01",
		Hours:       6.5,
		Description: "  homepage wireframes  ",
	}

	m, err := req.ToModel(employeeID, &fileURL)
	if err != nil {
		t.Fatal(err)
	}
	if m.Hours != 6.5 {
		t.Errorf("Hours = %v", m.Hours)
	}
	if m.Description != "homepage wireframes" {
		t.Errorf("Description = %q, want trimmed", m.Description)
	}
	if m.FileURL == nil || *m.FileURL != fileURL {
		t.Errorf("FileURL = %v", m.FileURL)
	}
	if m.Date.Format("2006-01-02") != "2025-07-01" {
		t.Errorf("Date = %v", m.Date)
	}
}

func TestCreateWorkUpdateToModelRejectsBadDate(t *testing.T) {
	req := CreateWorkUpdateRequest{Date: "July 1st", Hours: 2, Description: "stuff"}
	if _, err := req.ToModel(uuid.New(), nil); err == nil {
		t.Fatal("unparseable date must be rejected")
	}
}

func TestCreateLearningUpdateToModel(t *testing.T) {
	req := CreateLearningUpdateRequest{Date: "2025-07-02", Hours: 1, Topic: " Figma variables "}
	m, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if m.Topic != "Figma variables" {
		t.Errorf("Topic = %q, want trimmed", m.Topic)
	}
}
