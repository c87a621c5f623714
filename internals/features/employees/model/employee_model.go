// internals/features/employees/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type EmployeeModel struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"column:email;type:varchar(255);not null;unique" json:"email"`
	Password    string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	Role        string    `gorm:"column:role;type:varchar(20);not null;default:member" json:"role"`
	Department  *string   `gorm:"column:department;type:varchar(80)" json:"department,omitempty"`
	Designation *string   `gorm:"column:designation;type:varchar(80)" json:"designation,omitempty"`
	Phone       *string   `gorm:"column:phone;type:varchar(30)" json:"phone,omitempty"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (EmployeeModel) TableName() string { return "employees" }
