package controller

import (
	"errors"
	"sort"
	"testing"
)

// Each slot runs independently; one failure must not affect the others.
func TestRunSlotsToleratesFailures(t *testing.T) {
	var a, b int64
	failed := runSlots([]slot{
		{"a", func() error { a = 7; return nil }},
		{"boom", func() error { return errors.New("db down") }},
		{"b", func() error { b = 3; return nil }},
	})

	if a != 7 || b != 3 {
		t.Fatalf("healthy slots not applied: a=%d b=%d", a, b)
	}
	if len(failed) != 1 || failed[0] != "boom" {
		t.Fatalf("failed = %v, want [boom]", failed)
	}
}

func TestRunSlotsAllFail(t *testing.T) {
	failed := runSlots([]slot{
		{"x", func() error { return errors.New("x") }},
		{"y", func() error { return errors.New("y") }},
	})
	sort.Strings(failed)
	if len(failed) != 2 || failed[0] != "x" || failed[1] != "y" {
		t.Fatalf("failed = %v", failed)
	}
}

func TestRunSlotsEmpty(t *testing.T) {
	if failed := runSlots(nil); len(failed) != 0 {
		t.Fatalf("failed = %v, want none", failed)
	}
}
