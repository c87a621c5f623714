// internals/features/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist holds access tokens revoked by logout until they expire.
type TokenBlacklist struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Token     string         `gorm:"column:token;type:text;not null;index" json:"-"`
	ExpiredAt time.Time      `gorm:"column:expired_at;type:timestamptz;not null" json:"expired_at"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz;not null;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
