// Package service defines the backend facade the controller talks to.
// Every list and task operation goes through Service; the controller never
// imports a storage driver or an API client directly.
package service

import (
	"context"
	"errors"

	"github.com/sandeepkv93/done/internal/model"
)

var ErrUnknownProvider = errors.New("service: unknown provider")

type Service interface {
	// ReadLists returns all lists in backend order.
	ReadLists(ctx context.Context) ([]model.List, error)

	// CreateList persists a new list and returns it as stored.
	CreateList(ctx context.Context, list model.List) (model.List, error)

	// UpdateList persists a renamed (or re-iconed) list.
	UpdateList(ctx context.Context, list model.List) error

	// DeleteList removes a list and its tasks.
	DeleteList(ctx context.Context, id string) error

	// ReadTasksFromList returns the tasks of one list in backend order.
	ReadTasksFromList(ctx context.Context, listID string) ([]model.Task, error)

	CreateTask(ctx context.Context, task model.Task) error

	// UpdateTask persists task and returns the backend's view of it.
	UpdateTask(ctx context.Context, task model.Task) (model.Task, error)

	DeleteTask(ctx context.Context, listID, taskID string) error
}
