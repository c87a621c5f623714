package controller

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	leaveModel "grofast_backend/internals/features/leaves/model"
)

// dryRunDB builds SQL without touching a database.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "host=127.0.0.1 user=test dbname=test sslmode=disable",
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func leaveTestApp(db *gorm.DB, employeeID uuid.UUID) *fiber.App {
	h := NewLeaveController(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("employee_id", employeeID.String())
		c.Locals("userRole", "admin")
		return c.Next()
	})
	app.Delete("/leaves/:id", h.Cancel)
	app.Patch("/leaves/:id/approve", h.Approve)
	return app
}

// Owner cancel must carry the owner and pending-status guards in the
// WHERE clause, so a decided request can never be deleted.
func TestCancelOnlyDeletesOwnPendingRequest(t *testing.T) {
	db := dryRunDB(t)

	var sql string
	var vars []interface{}
	err := db.Callback().Delete().After("gorm:delete").Register("capture_delete", func(tx *gorm.DB) {
		sql = tx.Statement.SQL.String()
		vars = tx.Statement.Vars
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	employeeID := uuid.New()
	app := leaveTestApp(db, employeeID)

	req := httptest.NewRequest("DELETE", "/leaves/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	// Dry run matches no rows, so the handler reports not found.
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	if !strings.Contains(sql, "employee_id = ") || !strings.Contains(sql, "status = ") {
		t.Fatalf("delete missing owner or status guard: %s", sql)
	}
	if !strings.Contains(fmt.Sprint(vars), leaveModel.StatusPending) {
		t.Fatalf("status guard not bound to pending: %v", vars)
	}
	if !strings.Contains(fmt.Sprint(vars), employeeID.String()) {
		t.Fatalf("owner guard not bound to the caller: %v", vars)
	}
}

// Approve and reject only transition rows that are still pending.
func TestDecideUpdatesOnlyPendingRequests(t *testing.T) {
	db := dryRunDB(t)

	var sql string
	var vars []interface{}
	err := db.Callback().Update().After("gorm:update").Register("capture_update", func(tx *gorm.DB) {
		sql = tx.Statement.SQL.String()
		vars = tx.Statement.Vars
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	app := leaveTestApp(db, uuid.New())

	req := httptest.NewRequest("PATCH", "/leaves/"+uuid.NewString()+"/approve", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	if !strings.Contains(sql, "status = ") {
		t.Fatalf("update missing pending guard: %s", sql)
	}
	if !strings.Contains(sql, "approved_by") || !strings.Contains(sql, "approved_at") {
		t.Fatalf("decision must record who and when: %s", sql)
	}
	if !strings.Contains(fmt.Sprint(vars), leaveModel.StatusPending) {
		t.Fatalf("pending guard not bound: %v", vars)
	}
	if !strings.Contains(fmt.Sprint(vars), leaveModel.StatusApproved) {
		t.Fatalf("approved status not bound: %v", vars)
	}
}
