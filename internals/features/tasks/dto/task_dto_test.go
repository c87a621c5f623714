package dto

import (
	"testing"

	"github.com/google/uuid"

	model "grofast_backend/internals/features/tasks/model"
)

func strp(s string) *string { return &s }

func TestCreateTaskToModelDefaultsToPending(t *testing.T) {
	creator := uuid.New()
	req := CreateTaskRequest{Title: " Redesign landing page ", Priority: "high"}

	m := req.ToModel(creator)

	if m.Status != model.StatusPending {
		t.Errorf("Status = %q, want pending by default", m.Status)
	}
	if m.Title != "Redesign landing page" {
		t.Errorf("Title = %q, want trimmed", m.Title)
	}
	if m.CreatedBy != creator {
		t.Errorf("CreatedBy = %s", m.CreatedBy)
	}
	if m.DueDate != nil {
		t.Error("DueDate should stay nil when not sent")
	}
}

func TestCreateTaskToModelParsesDueDate(t *testing.T) {
	req := CreateTaskRequest{Title: "Ship it", Priority: "low", DueDate: strp("2025-08-15")}
	m := req.ToModel(uuid.New())
	if m.DueDate == nil || m.DueDate.Format("2006-01-02") != "2025-08-15" {
		t.Fatalf("DueDate = %v", m.DueDate)
	}
}

func TestUpdateTaskApplyToModelPartial(t *testing.T) {
	assignee := uuid.New()
	m := &model.TaskModel{Title: "Old", Priority: "low", Status: model.StatusPending, AssignedTo: &assignee}
	req := UpdateTaskRequest{Priority: strp("high")}

	req.ApplyToModel(m)

	if m.Priority != "high" {
		t.Errorf("Priority = %q", m.Priority)
	}
	if m.Title != "Old" || m.Status != model.StatusPending || m.AssignedTo == nil {
		t.Error("unset fields must stay untouched")
	}
}

// Sending the zero uuid unassigns the task.
func TestUpdateTaskApplyToModelClearsAssignee(t *testing.T) {
	assignee := uuid.New()
	m := &model.TaskModel{AssignedTo: &assignee}
	nilID := uuid.Nil
	req := UpdateTaskRequest{AssignedTo: &nilID}

	req.ApplyToModel(m)

	if m.AssignedTo != nil {
		t.Fatalf("AssignedTo = %v, want cleared", m.AssignedTo)
	}
}

func TestUpdateTaskApplyToModelClearsDescription(t *testing.T) {
	desc := "something"
	m := &model.TaskModel{Description: &desc}
	req := UpdateTaskRequest{Description: strp("   ")}

	req.ApplyToModel(m)

	if m.Description != nil {
		t.Fatalf("Description = %q, want nil after blank update", *m.Description)
	}
}
