package dto

import (
	"testing"

	model "grofast_backend/internals/features/employees/model"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestCreateEmployeeToModelNormalizes(t *testing.T) {
	req := CreateEmployeeRequest{
		Name:       "  Asha Rao  ",
		Email:      " Asha@GROFAST.in ",
		Password:   "ignored-here",
		Role:       "member",
		Department: strp("   "),
	}
	m := req.ToModel("hashed")

	if m.Name != "Asha Rao" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Email != "asha@grofast.in" {
		t.Errorf("Email = %q, want lowercase trimmed", m.Email)
	}
	if m.Password != "hashed" {
		t.Errorf("Password = %q, want the supplied hash", m.Password)
	}
	if m.Department != nil {
		t.Errorf("blank department should be nil, got %q", *m.Department)
	}
	if !m.IsActive {
		t.Error("new employees must start active")
	}
}

// Self-update must never be able to escalate role or flip is_active.
func TestApplyToModelIgnoresAdminFieldsOnSelfUpdate(t *testing.T) {
	m := &model.EmployeeModel{Name: "Asha", Role: "member", IsActive: true}
	req := UpdateEmployeeRequest{
		Name:     strp("Asha R."),
		Role:     strp("admin"),
		IsActive: boolp(false),
	}

	req.ApplyToModel(m, false)

	if m.Name != "Asha R." {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Role != "member" {
		t.Errorf("Role = %q, self-update must not change it", m.Role)
	}
	if !m.IsActive {
		t.Error("IsActive must not change on self-update")
	}
}

func TestApplyToModelAdminFields(t *testing.T) {
	m := &model.EmployeeModel{Role: "member", IsActive: true}
	req := UpdateEmployeeRequest{Role: strp("admin"), IsActive: boolp(false)}

	req.ApplyToModel(m, true)

	if m.Role != "admin" || m.IsActive {
		t.Errorf("admin update not applied: role=%q is_active=%v", m.Role, m.IsActive)
	}
}

func TestApplyToModelLeavesUnsetFieldsAlone(t *testing.T) {
	dep := "Design"
	m := &model.EmployeeModel{Name: "Asha", Department: &dep}
	req := UpdateEmployeeRequest{}

	req.ApplyToModel(m, true)

	if m.Name != "Asha" || m.Department == nil || *m.Department != "Design" {
		t.Error("empty request must not modify the row")
	}
}
