package dto

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

func strp(s string) *string { return &s }

var meetLinkRe = regexp.MustCompile(`^https://meet\.google\.com/[a-z]{3}-[a-z]{4}-[a-z]{3}$`)

func TestGenerateMeetLinkFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		link := GenerateMeetLink()
		if !meetLinkRe.MatchString(link) {
			t.Fatalf("link %q does not match xxx-yyyy-zzz", link)
		}
		seen[link] = true
	}
	if len(seen) < 2 {
		t.Fatal("links should vary between calls")
	}
}

func TestCreateMeetingToModelGeneratesLinkOnRequest(t *testing.T) {
	req := CreateMeetingRequest{
		Title:        "Sprint review",
		Date:         "2025-07-10",
		StartTime:    "10:00",
		GenerateLink: true,
	}
	m, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if m.MeetLink == nil || !meetLinkRe.MatchString(*m.MeetLink) {
		t.Fatalf("MeetLink = %v", m.MeetLink)
	}
}

func TestCreateMeetingToModelPrefersExplicitLink(t *testing.T) {
	req := CreateMeetingRequest{
		Title:        "Client call",
		Date:         "2025-07-10",
		StartTime:    "10:00",
		MeetLink:     strp("https://zoom.us/j/123"),
		GenerateLink: true,
	}
	m, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if m.MeetLink == nil || *m.MeetLink != "https://zoom.us/j/123" {
		t.Fatalf("MeetLink = %v, explicit link must win", m.MeetLink)
	}
}

func TestCreateMeetingToModelRejectsBackwardsTimes(t *testing.T) {
	req := CreateMeetingRequest{
		Title:     "Standup",
		Date:      "2025-07-10",
		StartTime: "10:00",
		EndTime:   strp("09:30"),
	}
	if _, err := req.ToModel(uuid.New()); err == nil {
		t.Fatal("end_time before start_time must be rejected")
	}
}

func TestNewMeetingResponseNeverNilAttendees(t *testing.T) {
	req := CreateMeetingRequest{Title: "1:1", Date: "2025-07-10", StartTime: "15:00"}
	m, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	resp := NewMeetingResponse(m)
	if resp.Attendees == nil {
		t.Fatal("attendees must serialize as [] not null")
	}
}
