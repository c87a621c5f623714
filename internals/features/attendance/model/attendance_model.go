// internals/features/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// One row per employee per calendar day, enforced by the composite
// unique index on (employee_id, date).
type AttendanceModel struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date" json:"employee_id"`
	Date       time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date" json:"date"`
	CheckIn    time.Time  `gorm:"column:check_in;type:timestamptz;not null" json:"check_in"`
	CheckOut   *time.Time `gorm:"column:check_out;type:timestamptz" json:"check_out,omitempty"`
	SelfieURL  *string    `gorm:"column:selfie_url;type:text" json:"selfie_url,omitempty"`
	Status     string     `gorm:"column:status;type:varchar(20);not null;default:present" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string { return "attendance_records" }
