// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"grofast_backend/internals/configs"
	authModel "grofast_backend/internals/features/auth/model"
	helper "grofast_backend/internals/helpers"
)

// AuthMiddleware verifies the access token, rejects blacklisted tokens and
// inactive employees, and stashes the claims in Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// Blacklist check, once per request.
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARN] Token found in blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error on blacklist check:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		employeeID, err := extractEmployeeID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing employee ID")
		}
		c.Locals("employee_id", employeeID.String())
		helper.SetRawAccessToken(c, tokenString)

		if err := ensureEmployeeActive(db, employeeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Authenticated-but-profile-incomplete: keep the session but
				// no role claim survives, so admin checks fail closed.
				c.Locals("userRole", "")
				return c.Next()
			}
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		storeBasicClaimsToLocals(c, claims)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if raw := helper.GetRawAccessToken(c); raw != "" {
		return raw, nil
	}
	return "", errors.New("missing access token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().Add(-leeway).After(time.Unix(int64(exp), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractEmployeeID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		sub, _ = claims["id"].(string)
	}
	return uuid.Parse(sub)
}

func ensureEmployeeActive(db *gorm.DB, employeeID uuid.UUID) error {
	// Take (not Scan) so a missing row surfaces as ErrRecordNotFound.
	var row struct{ IsActive bool }
	err := db.Table("employees").
		Select("is_active").
		Where("id = ?", employeeID).
		Take(&row).Error
	if err != nil {
		return err
	}
	if !row.IsActive {
		return errors.New("employee inactive")
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	} else {
		c.Locals("userRole", "")
	}
	if name, ok := claims["name"].(string); ok {
		c.Locals("userName", name)
	}
}
