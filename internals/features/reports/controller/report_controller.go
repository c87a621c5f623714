// internals/features/reports/controller/report_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reportDTO "grofast_backend/internals/features/reports/dto"
	helper "grofast_backend/internals/helpers"
)

type ReportController struct{ DB *gorm.DB }

func NewReportController(db *gorm.DB) *ReportController { return &ReportController{DB: db} }

// ===================== MONTHLY =====================
// GET /api/a/reports/monthly?month=YYYY-MM&employee_id=
// One aggregated row per active employee. Defaults to the current month.
// Each total comes from a correlated subquery so employees with no
// activity still appear with zeroes.
func (h *ReportController) Monthly(c *fiber.Ctx) error {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month invalid (YYYY-MM)")
	}
	end := start.AddDate(0, 1, 0)

	tx := h.DB.Table("employees e").Where("e.is_active = TRUE")
	if raw := strings.TrimSpace(c.Query("employee_id")); raw != "" {
		employeeID, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employee_id")
		}
		tx = tx.Where("e.id = ?", employeeID)
	}

	var rows []reportDTO.MonthlyEmployeeReport
	err = tx.
		Select(`
			e.id   AS employee_id,
			e.name AS employee_name,
			e.department,
			(SELECT COUNT(*) FROM attendance_records a
				WHERE a.employee_id = e.id AND a.date >= ? AND a.date < ?) AS days_present,
			(SELECT COALESCE(SUM(GREATEST(EXTRACT(EPOCH FROM (a.check_out - a.check_in)) / 3600, 0)), 0)
				FROM attendance_records a
				WHERE a.employee_id = e.id AND a.check_out IS NOT NULL
				AND a.date >= ? AND a.date < ?) AS hours_worked,
			(SELECT COUNT(*) FROM leave_requests l
				WHERE l.employee_id = e.id AND l.status = 'approved'
				AND l.start_date < ? AND l.end_date >= ?) AS leaves_approved,
			(SELECT COALESCE(SUM(w.hours), 0) FROM work_updates w
				WHERE w.employee_id = e.id AND w.date >= ? AND w.date < ?) AS work_hours,
			(SELECT COALESCE(SUM(lu.hours), 0) FROM learning_updates lu
				WHERE lu.employee_id = e.id AND lu.date >= ? AND lu.date < ?) AS learning_hours,
			(SELECT COUNT(*) FROM tasks t
				WHERE t.assigned_to = e.id AND t.status = 'completed'
				AND t.updated_at >= ? AND t.updated_at < ?) AS tasks_completed`,
			start, end,
			start, end,
			end, start,
			start, end,
			start, end,
			start, end,
		).
		Order("e.name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build monthly report")
	}

	if rows == nil {
		rows = []reportDTO.MonthlyEmployeeReport{}
	}
	return helper.JsonOK(c, "ok", reportDTO.MonthlyReportResponse{
		Month:     month,
		Employees: rows,
	})
}
