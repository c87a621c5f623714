package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	employeeModel "grofast_backend/internals/features/employees/model"
)

func TestBuildAccessClaimsWithProfile(t *testing.T) {
	id := uuid.New()
	emp := &employeeModel.EmployeeModel{ID: id, Name: "Asha", Role: "admin"}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	claims := BuildAccessClaims(id, emp, now)

	if claims["typ"] != "access" {
		t.Errorf("typ = %v", claims["typ"])
	}
	if claims["sub"] != id.String() || claims["id"] != id.String() {
		t.Errorf("subject claims mismatch: sub=%v id=%v", claims["sub"], claims["id"])
	}
	if claims["role"] != "admin" || claims["name"] != "Asha" {
		t.Errorf("profile claims mismatch: role=%v name=%v", claims["role"], claims["name"])
	}
	exp, iat := claims["exp"].(int64), claims["iat"].(int64)
	if exp-iat != int64(accessTTLDefault/time.Second) {
		t.Errorf("ttl = %ds", exp-iat)
	}
}

// A token holder whose profile row disappeared must end up with an empty
// role claim so admin gates reject them.
func TestBuildAccessClaimsNilEmployeeFailsClosed(t *testing.T) {
	id := uuid.New()
	claims := BuildAccessClaims(id, nil, time.Now())

	role, ok := claims["role"].(string)
	if !ok || role != "" {
		t.Fatalf("role = %v, want empty string", claims["role"])
	}
	if _, hasName := claims["name"]; hasName {
		t.Fatalf("name claim should be absent without a profile")
	}
}

func TestComputeRefreshHashDeterministic(t *testing.T) {
	a := computeRefreshHash("token-1", "secret")
	b := computeRefreshHash("token-1", "secret")
	if !bytes.Equal(a, b) {
		t.Fatal("same input must hash identically")
	}
	if bytes.Equal(a, computeRefreshHash("token-2", "secret")) {
		t.Fatal("different tokens must not collide")
	}
	if bytes.Equal(a, computeRefreshHash("token-1", "other-secret")) {
		t.Fatal("different secrets must not collide")
	}
	if len(a) != 32 {
		t.Fatalf("hash length = %d, want 32 (sha256)", len(a))
	}
}
