// internals/features/dashboard/dto/dashboard_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// AnnouncementSlot is the banner payload embedded in both dashboards.
type AnnouncementSlot struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskSlot is a trimmed task row for the member landing page.
type TaskSlot struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Status   string    `json:"status"`
	Priority string    `json:"priority"`
}

// ClientSlot is a trimmed client row for the admin landing page.
type ClientSlot struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IsClientMonth bool      `json:"is_client_month"`
}

// AdminDashboardResponse aggregates the company-wide tiles. Slots that
// failed to load come back zero-valued rather than failing the page.
type AdminDashboardResponse struct {
	TotalEmployees     int64             `json:"total_employees"`
	PresentToday       int64             `json:"present_today"`
	PendingLeaves      int64             `json:"pending_leaves"`
	OpenTasks          int64             `json:"open_tasks"`
	CompletedTasks     int64             `json:"completed_tasks"`
	ActiveClients      int64             `json:"active_clients"`
	MeetingsToday      int64             `json:"meetings_today"`
	RecentClients      []ClientSlot      `json:"recent_clients"`
	LatestAnnouncement *AnnouncementSlot `json:"latest_announcement,omitempty"`
	FailedSlots        []string          `json:"failed_slots,omitempty"`
}

// MemberDashboardResponse is the personal landing page summary.
type MemberDashboardResponse struct {
	MyOpenTasks        int64             `json:"my_open_tasks"`
	MyCompletedTasks   int64             `json:"my_completed_tasks"`
	MyPendingLeaves    int64             `json:"my_pending_leaves"`
	CheckedInToday     bool              `json:"checked_in_today"`
	MeetingsToday      int64             `json:"meetings_today"`
	RecentTasks        []TaskSlot        `json:"recent_tasks"`
	LatestAnnouncement *AnnouncementSlot `json:"latest_announcement,omitempty"`
	FailedSlots        []string          `json:"failed_slots,omitempty"`
}
