// internals/features/clients/model/client_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ClientModel struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(150);not null" json:"name"`
	Company       *string   `gorm:"column:company;type:varchar(150)" json:"company,omitempty"`
	Email         *string   `gorm:"column:email;type:varchar(100)" json:"email,omitempty"`
	Phone         *string   `gorm:"column:phone;type:varchar(30)" json:"phone,omitempty"`
	Notes         *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	IsClientMonth bool      `gorm:"column:is_client_month;not null;default:false" json:"is_client_month"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;autoUpdateTime" json:"updated_at"`
}

func (ClientModel) TableName() string { return "clients" }
