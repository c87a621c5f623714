// internals/features/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "grofast_backend/internals/features/auth/model"
	employeeModel "grofast_backend/internals/features/employees/model"
)

// FindEmployeeByEmailLight loads just what login needs.
func FindEmployeeByEmailLight(db *gorm.DB, email string) (*employeeModel.EmployeeModel, error) {
	var emp employeeModel.EmployeeModel
	err := db.Select("id", "password_hash", "is_active").
		Where("LOWER(email) = LOWER(?)", email).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func FindEmployeeByID(db *gorm.DB, id uuid.UUID) (*employeeModel.EmployeeModel, error) {
	var emp employeeModel.EmployeeModel
	if err := db.First(&emp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func UpdateEmployeePassword(db *gorm.DB, id uuid.UUID, passwordHash string) error {
	return db.Model(&employeeModel.EmployeeModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func CreateRefreshToken(db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.Create(rt).Error
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
}

func RefreshTokenHashExists(db *gorm.DB, hash []byte) (bool, error) {
	var exists bool
	err := db.Raw(`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE token = ? AND expires_at > NOW())`, hash).
		Scan(&exists).Error
	return exists, err
}

// BlacklistToken marks an access token revoked until ttl elapses. Idempotent.
func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

// CleanupExpiredAuthRows removes stale blacklist entries and expired
// refresh tokens; run from the scheduler.
func CleanupExpiredAuthRows(db *gorm.DB) (int64, error) {
	res := db.Unscoped().
		Where("expired_at < NOW()").
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		return 0, res.Error
	}
	n := res.RowsAffected

	res = db.Where("expires_at < NOW()").Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return n, res.Error
	}
	return n + res.RowsAffected, nil
}
