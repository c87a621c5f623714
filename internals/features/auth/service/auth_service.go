// internals/features/auth/service/auth_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"grofast_backend/internals/configs"
	authModel "grofast_backend/internals/features/auth/model"
	authRepo "grofast_backend/internals/features/auth/repository"
	employeeModel "grofast_backend/internals/features/employees/model"
	helpers "grofast_backend/internals/helpers"
)

/* ==========================
   Const & small helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	empLight, err := authRepo.FindEmployeeByEmailLight(db, input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !empLight.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an admin.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(empLight.Password), []byte(input.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	empFull, err := authRepo.FindEmployeeByID(db, empLight.ID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load employee profile")
	}

	return issueTokens(c, db, empFull)
}

/* ==========================
   ISSUE TOKENS + Response
========================== */

// BuildAccessClaims derives the access token claims from the employee row.
// A nil employee means authenticated-without-profile: the role claim stays
// empty so admin checks fail closed downstream.
func BuildAccessClaims(id uuid.UUID, emp *employeeModel.EmployeeModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"typ": "access",
		"sub": id.String(),
		"id":  id.String(),
		"iat": now.Unix(),
		"exp": now.Add(accessTTLDefault).Unix(),
	}
	if emp != nil {
		claims["name"] = emp.Name
		claims["role"] = emp.Role
	} else {
		claims["role"] = ""
	}
	return claims
}

func buildRefreshClaims(id uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": id.String(),
		"id":  id.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

func issueTokens(c *fiber.Ctx, db *gorm.DB, emp *employeeModel.EmployeeModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	accessClaims := BuildAccessClaims(emp.ID, emp, now)
	refreshClaims := buildRefreshClaims(emp.ID, now)

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to sign access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	// Store the refresh token hashed.
	tokenHash := computeRefreshHash(refreshToken, refreshSecret)
	ua, ip := c.Get("User-Agent"), c.IP()
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		EmployeeID: emp.ID,
		Token:      tokenHash,
		ExpiresAt:  now.Add(refreshTTLDefault),
		UserAgent:  strptr(ua),
		IP:         strptr(ip),
	}); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to store refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now)

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"employee":     emp,
		"access_token": accessToken,
	})
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(refreshTTLDefault),
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// CSRF is mandatory when auth came from cookies (no Bearer header).
	cookieAT := strings.TrimSpace(c.Cookies("access_token"))
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	usesCookieAuth := cookieAT != "" && !strings.HasPrefix(authHeader, "Bearer ")

	if usesCookieAuth {
		if err := helpers.CheckCSRFCookieHeader(c); err != nil {
			return helpers.JsonError(c, fiber.StatusForbidden, err.Error())
		}
	}

	accessToken := helpers.GetRawAccessToken(c)
	ttl := resolveBlacklistTTL(accessToken)

	if accessToken != "" {
		if err := authRepo.BlacklistToken(db, accessToken, ttl); err != nil {
			log.Printf("[WARN] Failed to blacklist token: %v", err)
		}
	} else {
		log.Println("[INFO] Logout without access token; clearing cookies anyway (idempotent)")
	}

	if rt := helpers.GetRefreshTokenFromCookie(c); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			_ = authRepo.DeleteRefreshTokenByHash(db, computeRefreshHash(rt, secret))
		}
	}

	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token", "csrf_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: name != "csrf_token",
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}

	return helpers.JsonOK(c, "Logout successful", nil)
}

func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := os.Getenv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret := strings.TrimSpace(configs.JWTSecret)
	if jwtSecret == "" || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + 60*time.Second
				}
				return time.Minute
			}
		}
	}
	return ttl
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx, employeeID uuid.UUID) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if len(input.NewPassword) < 6 {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "New password must be at least 6 characters")
	}

	emp, err := authRepo.FindEmployeeByID(db, employeeID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Employee not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(input.CurrentPassword)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := authRepo.UpdateEmployeePassword(db, emp.ID, string(hashed)); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helpers.JsonUpdated(c, "Password updated successfully", nil)
}
