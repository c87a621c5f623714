// internals/features/reports/dto/report_dto.go
package dto

import "github.com/google/uuid"

// MonthlyEmployeeReport is one row of the month grid: totals per
// employee across attendance, leave, work and learning hours.
type MonthlyEmployeeReport struct {
	EmployeeID     uuid.UUID `json:"employee_id"`
	EmployeeName   string    `json:"employee_name"`
	Department     *string   `json:"department,omitempty"`
	DaysPresent    int64     `json:"days_present"`
	HoursWorked    float64   `json:"hours_worked"`
	LeavesApproved int64     `json:"leaves_approved"`
	WorkHours      float64   `json:"work_hours"`
	LearningHours  float64   `json:"learning_hours"`
	TasksCompleted int64     `json:"tasks_completed"`
}

type MonthlyReportResponse struct {
	Month     string                  `json:"month"` // YYYY-MM
	Employees []MonthlyEmployeeReport `json:"employees"`
}
