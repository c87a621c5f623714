package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"grofast_backend/internals/constants"
)

// GetEmployeeID returns the authenticated employee id stashed by AuthMiddleware.
func GetEmployeeID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("employee_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing employee id in context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid employee id in context")
	}
	return id, nil
}

// GetRole returns the role claim; empty when the profile is unresolved.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

// IsAdmin fails closed: no role claim means not admin.
func IsAdmin(c *fiber.Ctx) bool {
	return GetRole(c) == constants.RoleAdmin
}

// GetUserName returns the display name claim, nil when absent.
func GetUserName(c *fiber.Ctx) *string {
	name, ok := c.Locals("userName").(string)
	if !ok || name == "" {
		return nil
	}
	return &name
}
