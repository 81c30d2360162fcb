package storage

import "time"

type List struct {
	ID        string
	Name      string
	Icon      string
	Provider  string
	CreatedAt time.Time
}

type Task struct {
	ID          string
	ListID      string
	Title       string
	Notes       string
	Priority    int
	Completed   bool
	Favorite    bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

type ListFilter struct {
	Provider string
	Limit    int
	Offset   int
}

type TaskListFilter struct {
	ListID    string
	Completed *bool
	Limit     int
	Offset    int
}
