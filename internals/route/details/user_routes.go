// internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annController "grofast_backend/internals/features/announcements/controller"
	attController "grofast_backend/internals/features/attendance/controller"
	chatController "grofast_backend/internals/features/chat/controller"
	chatHub "grofast_backend/internals/features/chat/hub"
	clientController "grofast_backend/internals/features/clients/controller"
	dashController "grofast_backend/internals/features/dashboard/controller"
	empController "grofast_backend/internals/features/employees/controller"
	leaveController "grofast_backend/internals/features/leaves/controller"
	meetController "grofast_backend/internals/features/meetings/controller"
	taskController "grofast_backend/internals/features/tasks/controller"
	updController "grofast_backend/internals/features/updates/controller"
)

// UserRoutes mounts everything reachable by any signed-in employee.
// Base: /api/u (AuthMiddleware already applied by the caller).
func UserRoutes(r fiber.Router, db *gorm.DB, hub *chatHub.Hub) {
	employees := empController.NewEmployeeController(db)
	tasks := taskController.NewTaskController(db)
	leaves := leaveController.NewLeaveController(db)
	attendance := attController.NewAttendanceController(db)
	clients := clientController.NewClientController(db)
	meetings := meetController.NewMeetingController(db)
	chat := chatController.NewChatController(db, hub)
	updates := updController.NewUpdateController(db)
	announcements := annController.NewAnnouncementController(db)
	dashboard := dashController.NewDashboardController(db)

	// ---------- Employees ----------
	r.Get("/employees", employees.List)
	r.Put("/employees/me", employees.UpdateMe)
	r.Get("/employees/:id", employees.Detail)

	// ---------- Tasks ----------
	r.Get("/tasks", tasks.List)
	r.Patch("/tasks/:id/status", tasks.Move)

	// ---------- Leaves ----------
	r.Get("/leaves", leaves.ListMine)
	r.Post("/leaves", leaves.Create)
	r.Delete("/leaves/:id", leaves.Cancel)

	// ---------- Attendance ----------
	r.Get("/attendance", attendance.History)
	r.Get("/attendance/today", attendance.Today)
	r.Post("/attendance/check-in", attendance.CheckIn)
	r.Patch("/attendance/check-out", attendance.CheckOut)

	// ---------- Clients ----------
	r.Get("/clients", clients.List)

	// ---------- Meetings ----------
	r.Get("/meetings", meetings.List)
	r.Post("/meetings", meetings.Create)

	// ---------- Chat ----------
	r.Get("/chat/channels", chat.ListChannels)
	r.Get("/chat/channels/:id/messages", chat.ListMessages)
	r.Post("/chat/channels/:id/messages", chat.SendMessage)
	r.Get("/chat/channels/:id/ws", chat.WsUpgrade, chat.WsStream())

	// ---------- Updates ----------
	r.Get("/updates/work", updates.ListWork)
	r.Post("/updates/work", updates.CreateWork)
	r.Put("/updates/work/:id", updates.UpdateWork)
	r.Delete("/updates/work/:id", updates.DeleteWork)
	r.Get("/updates/learning", updates.ListLearning)
	r.Post("/updates/learning", updates.CreateLearning)
	r.Put("/updates/learning/:id", updates.UpdateLearning)
	r.Delete("/updates/learning/:id", updates.DeleteLearning)

	// ---------- Announcements ----------
	r.Get("/announcements", announcements.ListActive)
	r.Get("/announcements/latest", announcements.Latest)

	// ---------- Dashboard ----------
	r.Get("/dashboard", dashboard.Member)
}
