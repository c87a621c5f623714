// internals/features/auth/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel stores the HMAC-SHA256 hash of an issued refresh token,
// never the token itself.
type RefreshTokenModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index" json:"employee_id"`
	Token      []byte    `gorm:"column:token;type:bytea;not null;uniqueIndex" json:"-"`
	ExpiresAt  time.Time `gorm:"column:expires_at;type:timestamptz;not null" json:"expires_at"`
	UserAgent  *string   `gorm:"column:user_agent;type:text" json:"user_agent,omitempty"`
	IP         *string   `gorm:"column:ip;type:varchar(64)" json:"ip,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }
