package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		ListID:    "list-1",
		Title:     "Buy milk",
		Priority:  PriorityHigh,
		CreatedAt: now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateCompletedRequiresCompletedAt(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		ListID:    "list-1",
		Title:     "Done task",
		Completed: true,
		CreatedAt: now,
	}
	err := task.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "model: completed_at is required when task is completed" {
		t.Fatalf("unexpected error: %v", err)
	}

	task.SetCompleted(true, now)
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task after SetCompleted, got: %v", err)
	}
	task.SetCompleted(false, now)
	if task.CompletedAt != nil || task.Completed {
		t.Fatalf("expected completion cleared, got %+v", task)
	}
}

func TestTaskValidateInvalidPriority(t *testing.T) {
	task := NewTask("list-1", "  Bad priority  ")
	if task.Title != "Bad priority" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	task.Priority = Priority(9)
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}
	if task.Priority.String() != "Priority(9)" {
		t.Fatalf("unexpected priority string: %s", task.Priority)
	}
}

func TestNewListDefaults(t *testing.T) {
	a := NewList("Groceries", ProviderComputer)
	b := NewList("Groceries", ProviderComputer)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected unique ids, got %q and %q", a.ID, b.ID)
	}
	if a.Icon != DefaultListIcon {
		t.Fatalf("unexpected icon: %q", a.Icon)
	}
	if err := a.Validate(); err != nil {
		t.Fatalf("expected valid list: %v", err)
	}

	a.Service = Provider("dropbox")
	if err := a.Validate(); !errors.Is(err, ErrInvalidProvider) {
		t.Fatalf("expected ErrInvalidProvider, got: %v", err)
	}
}
