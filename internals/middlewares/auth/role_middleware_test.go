package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"grofast_backend/internals/constants"
)

func roleApp(role interface{}, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != nil {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Get("/x", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	app := roleApp(constants.RoleAdmin, AdminOnly("tests"))
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAdminOnlyRejectsMember(t *testing.T) {
	app := roleApp(constants.RoleMember, AdminOnly("tests"))
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

// Missing or empty role claims must not fall through to the handler.
func TestAdminOnlyFailsClosed(t *testing.T) {
	for name, role := range map[string]interface{}{
		"missing": nil,
		"empty":   "",
	} {
		app := roleApp(role, AdminOnly("tests"))
		resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s role: status = %d, want 401", name, resp.StatusCode)
		}
	}
}

func TestIsAdminFailsClosedWithoutClaim(t *testing.T) {
	app := fiber.New()
	var isAdmin bool
	app.Get("/x", func(c *fiber.Ctx) error {
		isAdmin = IsAdmin(c)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if isAdmin {
		t.Fatal("IsAdmin must be false when no role claim is set")
	}
}
