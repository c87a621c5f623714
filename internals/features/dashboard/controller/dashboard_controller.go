// internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashDTO "grofast_backend/internals/features/dashboard/dto"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

type DashboardController struct{ DB *gorm.DB }

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// slot is one independent dashboard query. A failure is logged and
// reported in failed_slots instead of sinking the whole page.
type slot struct {
	name string
	run  func() error
}

func runSlots(slots []slot) []string {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed []string

	for i := range slots {
		s := slots[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.run(); err != nil {
				log.Printf("[DASHBOARD] slot %s failed: %v", s.name, err)
				mu.Lock()
				failed = append(failed, s.name)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return failed
}

func (h *DashboardController) countInto(dest *int64, table, where string, args ...interface{}) func() error {
	return func() error {
		tx := h.DB.Table(table)
		if where != "" {
			tx = tx.Where(where, args...)
		}
		return tx.Count(dest).Error
	}
}

func (h *DashboardController) latestAnnouncementInto(dest **dashDTO.AnnouncementSlot) func() error {
	return func() error {
		var row dashDTO.AnnouncementSlot
		err := h.DB.Table("announcements").
			Select("id, title, content, created_at").
			Where("is_active = TRUE").
			Order("created_at DESC").
			Limit(1).
			Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		*dest = &row
		return nil
	}
}

// ===================== ADMIN =====================
// GET /api/a/dashboard
func (h *DashboardController) Admin(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	var resp dashDTO.AdminDashboardResponse
	resp.FailedSlots = runSlots([]slot{
		{"total_employees", h.countInto(&resp.TotalEmployees, "employees", "is_active = TRUE")},
		{"present_today", h.countInto(&resp.PresentToday, "attendance_records", "date = ?", today)},
		{"pending_leaves", h.countInto(&resp.PendingLeaves, "leave_requests", "status = 'pending'")},
		{"open_tasks", h.countInto(&resp.OpenTasks, "tasks", "status IN ('pending', 'in_progress')")},
		{"completed_tasks", h.countInto(&resp.CompletedTasks, "tasks", "status = 'completed'")},
		{"active_clients", h.countInto(&resp.ActiveClients, "clients", "is_active = TRUE")},
		{"meetings_today", h.countInto(&resp.MeetingsToday, "meetings", "date = ?", today)},
		{"recent_clients", func() error {
			return h.DB.Table("clients").
				Select("id, name, is_client_month").
				Where("is_active = TRUE").
				Order("created_at DESC").
				Limit(5).
				Scan(&resp.RecentClients).Error
		}},
		{"latest_announcement", h.latestAnnouncementInto(&resp.LatestAnnouncement)},
	})
	if resp.RecentClients == nil {
		resp.RecentClients = []dashDTO.ClientSlot{}
	}

	return helper.JsonOK(c, "ok", resp)
}

// ===================== MEMBER =====================
// GET /api/u/dashboard
func (h *DashboardController) Member(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	today := time.Now().Format("2006-01-02")

	var resp dashDTO.MemberDashboardResponse
	var checkedIn int64
	resp.FailedSlots = runSlots([]slot{
		{"my_open_tasks", h.countInto(&resp.MyOpenTasks, "tasks", "assigned_to = ? AND status IN ('pending', 'in_progress')", employeeID)},
		{"my_completed_tasks", h.countInto(&resp.MyCompletedTasks, "tasks", "assigned_to = ? AND status = 'completed'", employeeID)},
		{"my_pending_leaves", h.countInto(&resp.MyPendingLeaves, "leave_requests", "employee_id = ? AND status = 'pending'", employeeID)},
		{"checked_in_today", h.countInto(&checkedIn, "attendance_records", "employee_id = ? AND date = ?", employeeID, today)},
		{"meetings_today", h.countInto(&resp.MeetingsToday, "meetings", "date = ?", today)},
		{"recent_tasks", func() error {
			return h.DB.Table("tasks").
				Select("id, title, status, priority").
				Where("assigned_to = ?", employeeID).
				Order("created_at DESC").
				Limit(5).
				Scan(&resp.RecentTasks).Error
		}},
		{"latest_announcement", h.latestAnnouncementInto(&resp.LatestAnnouncement)},
	})
	resp.CheckedInToday = checkedIn > 0
	if resp.RecentTasks == nil {
		resp.RecentTasks = []dashDTO.TaskSlot{}
	}

	return helper.JsonOK(c, "ok", resp)
}
