// internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annController "grofast_backend/internals/features/announcements/controller"
	attController "grofast_backend/internals/features/attendance/controller"
	chatController "grofast_backend/internals/features/chat/controller"
	clientController "grofast_backend/internals/features/clients/controller"
	dashController "grofast_backend/internals/features/dashboard/controller"
	empController "grofast_backend/internals/features/employees/controller"
	leaveController "grofast_backend/internals/features/leaves/controller"
	meetController "grofast_backend/internals/features/meetings/controller"
	reportController "grofast_backend/internals/features/reports/controller"
	taskController "grofast_backend/internals/features/tasks/controller"
)

// AdminRoutes mounts the management surface.
// Base: /api/a (AuthMiddleware + AdminOnly already applied by the caller).
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	employees := empController.NewEmployeeController(db)
	tasks := taskController.NewTaskController(db)
	leaves := leaveController.NewLeaveController(db)
	attendance := attController.NewAttendanceController(db)
	clients := clientController.NewClientController(db)
	meetings := meetController.NewMeetingController(db)
	// Channel admin does not push realtime events, so no hub here.
	chat := chatController.NewChatController(db, nil)
	announcements := annController.NewAnnouncementController(db)
	dashboard := dashController.NewDashboardController(db)
	reports := reportController.NewReportController(db)

	// ---------- Employees ----------
	r.Post("/employees", employees.Create)
	r.Put("/employees/:id", employees.Update)
	r.Delete("/employees/:id", employees.Deactivate)

	// ---------- Tasks ----------
	r.Post("/tasks", tasks.Create)
	r.Put("/tasks/:id", tasks.Update)
	r.Delete("/tasks/:id", tasks.Delete)

	// ---------- Leaves ----------
	r.Get("/leaves", leaves.List)
	r.Patch("/leaves/:id/approve", leaves.Approve)
	r.Patch("/leaves/:id/reject", leaves.Reject)

	// ---------- Attendance ----------
	r.Get("/attendance", attendance.List)

	// ---------- Clients ----------
	r.Post("/clients", clients.Create)
	r.Put("/clients/:id", clients.Update)
	r.Patch("/clients/:id/client-of-month", clients.SetClientOfMonth)
	r.Delete("/clients/:id", clients.Delete)

	// ---------- Meetings ----------
	r.Put("/meetings/:id", meetings.Update)
	r.Delete("/meetings/:id", meetings.Delete)

	// ---------- Chat ----------
	r.Post("/chat/channels", chat.CreateChannel)

	// ---------- Announcements ----------
	r.Get("/announcements", announcements.List)
	r.Post("/announcements", announcements.Create)
	r.Put("/announcements/:id", announcements.Update)
	r.Delete("/announcements/:id", announcements.Delete)

	// ---------- Dashboard & Reports ----------
	r.Get("/dashboard", dashboard.Admin)
	r.Get("/reports/monthly", reports.Monthly)
}
