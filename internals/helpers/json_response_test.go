package helper

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	if p.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("page 2 of 3 should have both next and prev")
	}

	p = BuildPaginationFromPage(0, 1, 20)
	if p.TotalPages != 1 {
		t.Fatalf("empty result should still report one page, got %d", p.TotalPages)
	}
	if p.HasNext || p.HasPrev {
		t.Fatalf("single page should have neither next nor prev")
	}
}

func TestResolvePagingDefaultsAndCap(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		url                   string
		page, perPage, offset int
	}{
		{"/x", 1, 20, 0},
		{"/x?page=3&per_page=10", 3, 10, 20},
		{"/x?page=0&per_page=-5", 1, 20, 0},
		{"/x?per_page=9999", 1, 100, 0},
		{"/x?limit=7", 1, 7, 0},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.url, nil))
		if err != nil {
			t.Fatalf("%s: %v", tc.url, err)
		}
		resp.Body.Close()
		if got.Page != tc.page || got.PerPage != tc.perPage || got.Offset != tc.offset {
			t.Errorf("%s: got page=%d per_page=%d offset=%d, want %d/%d/%d",
				tc.url, got.Page, got.PerPage, got.Offset, tc.page, tc.perPage, tc.offset)
		}
	}
}

func TestJsonErrorShape(t *testing.T) {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Task not found")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	for _, want := range []string{`"success":false`, `"error_code":"NOT_FOUND"`, "Task not found"} {
		if !strings.Contains(s, want) {
			t.Errorf("body missing %q: %s", want, s)
		}
	}
}

func TestStatusToErrorCode(t *testing.T) {
	cases := map[int]string{
		fiber.StatusBadRequest:          "BAD_REQUEST",
		fiber.StatusUnauthorized:        "UNAUTHORIZED",
		fiber.StatusForbidden:           "FORBIDDEN",
		fiber.StatusConflict:            "CONFLICT",
		fiber.StatusInternalServerError: "INTERNAL_ERROR",
		fiber.StatusTeapot:              "ERROR",
	}
	for status, want := range cases {
		if got := statusToErrorCode(status); got != want {
			t.Errorf("statusToErrorCode(%d) = %q, want %q", status, got, want)
		}
	}
}
