package controller

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

// The flag must be cleared on every holder before the target gets it, and
// the set must only land on an active row.
func TestApplyClientOfMonthClearsBeforeSetting(t *testing.T) {
	db := dryRunDB(t)

	var stmts []string
	err := db.Callback().Update().After("gorm:update").Register("capture_update", func(tx *gorm.DB) {
		stmts = append(stmts, tx.Statement.SQL.String())
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	err = applyClientOfMonth(db, uuid.New())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want record-not-found when no row matches", err)
	}

	if len(stmts) != 2 {
		t.Fatalf("statements = %d, want clear then set", len(stmts))
	}
	clear, set := stmts[0], stmts[1]
	if !strings.Contains(clear, "is_client_month = TRUE") {
		t.Fatalf("first statement must clear current holders: %s", clear)
	}
	if strings.Contains(clear, "id = ") {
		t.Fatalf("clear must not be scoped to one row: %s", clear)
	}
	if !strings.Contains(set, "id = ") || !strings.Contains(set, "is_active = TRUE") {
		t.Fatalf("set must target one active row: %s", set)
	}
}
