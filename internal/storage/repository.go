package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

type Repository interface {
	CreateList(ctx context.Context, in List) error
	GetList(ctx context.Context, id string) (List, error)
	UpdateList(ctx context.Context, in List) error
	DeleteList(ctx context.Context, id string) error
	ListLists(ctx context.Context, filter ListFilter) ([]List, error)

	CreateTask(ctx context.Context, in Task) error
	GetTask(ctx context.Context, id string) (Task, error)
	UpdateTask(ctx context.Context, in Task) error
	DeleteTask(ctx context.Context, listID, id string) error
	ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error)
}
