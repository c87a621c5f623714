// internals/features/auth/service/token_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "grofast_backend/internals/features/auth/model"
	authRepo "grofast_backend/internals/features/auth/repository"
	helpers "grofast_backend/internals/helpers"
)

// ========================== CSRF ==========================
// GET /api/auth/csrf: issues the double-submit cookie.
func CSRF(c *fiber.Ctx) error {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to generate CSRF token")
	}
	token := hex.EncodeToString(buf)

	c.Cookie(&fiber.Cookie{
		Name:     "csrf_token",
		Value:    token,
		HTTPOnly: false, // the SPA must read it to echo it back
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return helpers.JsonOK(c, "ok", fiber.Map{"csrf_token": token})
}

func enforceCSRF(c *fiber.Ctx) error {
	return helpers.CheckCSRFCookieHeader(c)
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	// CSRF required: this endpoint is cookie-based by construction.
	if err := enforceCSRF(c); err != nil {
		return helpers.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	employeeID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// The hash must still be on record.
	oldHash := computeRefreshHash(refreshCookie, refreshSecret)
	exists, err := authRepo.RefreshTokenHashExists(db, oldHash)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if !exists {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	// Re-resolve the profile on every session change. A missing row keeps
	// the session alive but produces an empty role claim (fail closed).
	emp, err := authRepo.FindEmployeeByID(db, employeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load employee profile")
	}
	if emp != nil && !emp.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	// ROTATE: drop the old token before issuing the new pair.
	if err := authRepo.DeleteRefreshTokenByHash(db, oldHash); err != nil {
		log.Printf("[WARN] refresh rotate: delete old hash failed: %v", err)
	}

	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	accessClaims := BuildAccessClaims(employeeID, emp, now)
	refreshClaims := buildRefreshClaims(employeeID, now)

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}
	newRefresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	ua, ip := c.Get("User-Agent"), c.IP()
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		EmployeeID: employeeID,
		Token:      computeRefreshHash(newRefresh, refreshSecret),
		ExpiresAt:  now.Add(refreshTTLDefault),
		UserAgent:  strptr(ua),
		IP:         strptr(ip),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setAuthCookies(c, accessToken, newRefresh, now)

	return helpers.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": accessToken,
		"employee":     emp,
	})
}
