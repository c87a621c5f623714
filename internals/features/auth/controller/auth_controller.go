// internals/features/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "grofast_backend/internals/features/auth/repository"
	authService "grofast_backend/internals/features/auth/service"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController { return &AuthController{DB: db} }

func (h *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(h.DB, c)
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(h.DB, c)
}

func (h *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(h.DB, c)
}

func (h *AuthController) CSRF(c *fiber.Ctx) error {
	return authService.CSRF(c)
}

func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	return authService.ChangePassword(h.DB, c, employeeID)
}

// Me re-resolves the employee profile from the DB on every call. A session
// whose row disappeared is reported as authenticated-without-profile rather
// than an error.
func (h *AuthController) Me(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	emp, err := authRepo.FindEmployeeByID(h.DB, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", fiber.Map{
				"employee_id": employeeID,
				"employee":    nil,
			})
		}
		log.Printf("[WARN] me: profile lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load employee profile")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"employee_id": employeeID,
		"employee":    emp,
	})
}
