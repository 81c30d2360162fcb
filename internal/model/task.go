package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidProvider = errors.New("model: invalid list provider")
)

// Priority is a small ordinal; its value is also the index of the
// matching entry in the details priority selector.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
)

var priorityNames = [...]string{"Low", "Normal", "High"}

func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

func (p Priority) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// Priorities returns every valid priority in selector order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh}
}

type Task struct {
	ID          string
	ListID      string
	Title       string
	Notes       string
	Priority    Priority
	Completed   bool
	Favorite    bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func NewTask(listID, title string) Task {
	return Task{
		ID:        uuid.NewString(),
		ListID:    listID,
		Title:     strings.TrimSpace(title),
		Priority:  PriorityNormal,
		CreatedAt: time.Now().UTC(),
	}
}

// SetCompleted toggles completion and keeps CompletedAt consistent with it.
func (t *Task) SetCompleted(done bool, now time.Time) {
	t.Completed = done
	if done {
		at := now.UTC()
		t.CompletedAt = &at
		return
	}
	t.CompletedAt = nil
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.ListID) == "" {
		return errors.New("model: task list id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Completed && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task is completed")
	}
	if !t.Completed && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task is not completed")
	}
	return nil
}
