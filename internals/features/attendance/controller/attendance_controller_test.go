package controller

import (
	"testing"
	"time"
)

// The stored date and the check-in timestamp come from the same UTC
// clock, so the row's date always names check_in's calendar day.
func TestTodayDateMatchesCheckInClock(t *testing.T) {
	before := todayDate()
	now := nowUTC()
	after := todayDate()

	if now.Location() != time.UTC {
		t.Fatalf("check-in clock location = %v, want UTC", now.Location())
	}
	if before.Location() != time.UTC {
		t.Fatalf("date location = %v, want UTC", before.Location())
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !day.Equal(before) && !day.Equal(after) {
		t.Fatalf("check-in day %v matches neither %v nor %v", day, before, after)
	}
}

func TestTodayDateIsMidnight(t *testing.T) {
	d := todayDate()
	h, m, s := d.Clock()
	if h != 0 || m != 0 || s != 0 || d.Nanosecond() != 0 {
		t.Fatalf("todayDate not truncated to midnight: %v", d)
	}
}
