package dto

import (
	"testing"

	model "grofast_backend/internals/features/clients/model"
)

func strp(s string) *string { return &s }

func TestCreateClientToModel(t *testing.T) {
	req := CreateClientRequest{
		Name:    "  Acme Corp  ",
		Company: strp(" Acme Holdings "),
		Email:   strp("   "),
	}
	m := req.ToModel()

	if m.Name != "Acme Corp" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Company == nil || *m.Company != "Acme Holdings" {
		t.Errorf("Company = %v", m.Company)
	}
	if m.Email != nil {
		t.Errorf("blank email should be nil, got %q", *m.Email)
	}
	if !m.IsActive {
		t.Error("new clients must start active")
	}
	if m.IsClientMonth {
		t.Error("new clients must not start as client of the month")
	}
}

func TestUpdateClientApplyToModelClearsWithBlank(t *testing.T) {
	phone := "+91 98765"
	m := &model.ClientModel{Name: "Acme", Phone: &phone}
	req := UpdateClientRequest{Phone: strp("  ")}

	req.ApplyToModel(m)

	if m.Phone != nil {
		t.Fatalf("Phone = %q, blank update should clear it", *m.Phone)
	}
	if m.Name != "Acme" {
		t.Error("unset fields must stay untouched")
	}
}
