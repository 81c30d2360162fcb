package service

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/done/internal/model"
	"github.com/sandeepkv93/done/internal/storage"
)

// Local serves lists and tasks kept on this computer.
type Local struct {
	repo storage.Repository
}

func NewLocal(repo storage.Repository) *Local {
	return &Local{repo: repo}
}

func (l *Local) ReadLists(ctx context.Context) ([]model.List, error) {
	rows, err := l.repo.ListLists(ctx, storage.ListFilter{Provider: string(model.ProviderComputer)})
	if err != nil {
		return nil, fmt.Errorf("read lists: %w", err)
	}
	out := make([]model.List, 0, len(rows))
	for _, row := range rows {
		out = append(out, listFromStorage(row))
	}
	return out, nil
}

func (l *Local) CreateList(ctx context.Context, list model.List) (model.List, error) {
	if list.Service == "" {
		list.Service = model.ProviderComputer
	}
	if err := list.Validate(); err != nil {
		return model.List{}, err
	}
	if err := l.repo.CreateList(ctx, listToStorage(list)); err != nil {
		return model.List{}, fmt.Errorf("create list: %w", err)
	}
	stored, err := l.repo.GetList(ctx, list.ID)
	if err != nil {
		return model.List{}, fmt.Errorf("reload list: %w", err)
	}
	return listFromStorage(stored), nil
}

func (l *Local) UpdateList(ctx context.Context, list model.List) error {
	if err := list.Validate(); err != nil {
		return err
	}
	if err := l.repo.UpdateList(ctx, listToStorage(list)); err != nil {
		return fmt.Errorf("update list: %w", err)
	}
	return nil
}

func (l *Local) DeleteList(ctx context.Context, id string) error {
	if err := l.repo.DeleteList(ctx, id); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

func (l *Local) ReadTasksFromList(ctx context.Context, listID string) ([]model.Task, error) {
	rows, err := l.repo.ListTasks(ctx, storage.TaskListFilter{ListID: listID})
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	out := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, taskFromStorage(row))
	}
	return out, nil
}

func (l *Local) CreateTask(ctx context.Context, task model.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if err := l.repo.CreateTask(ctx, taskToStorage(task)); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (l *Local) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	if err := l.repo.UpdateTask(ctx, taskToStorage(task)); err != nil {
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}
	stored, err := l.repo.GetTask(ctx, task.ID)
	if err != nil {
		return model.Task{}, fmt.Errorf("reload task: %w", err)
	}
	return taskFromStorage(stored), nil
}

func (l *Local) DeleteTask(ctx context.Context, listID, taskID string) error {
	if err := l.repo.DeleteTask(ctx, listID, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func listToStorage(in model.List) storage.List {
	return storage.List{
		ID:        in.ID,
		Name:      in.Name,
		Icon:      in.Icon,
		Provider:  string(in.Service),
		CreatedAt: in.CreatedAt,
	}
}

func listFromStorage(in storage.List) model.List {
	return model.List{
		ID:        in.ID,
		Name:      in.Name,
		Icon:      in.Icon,
		Service:   model.Provider(in.Provider),
		CreatedAt: in.CreatedAt,
	}
}

func taskToStorage(in model.Task) storage.Task {
	return storage.Task{
		ID:          in.ID,
		ListID:      in.ListID,
		Title:       in.Title,
		Notes:       in.Notes,
		Priority:    int(in.Priority),
		Completed:   in.Completed,
		Favorite:    in.Favorite,
		CreatedAt:   in.CreatedAt,
		CompletedAt: in.CompletedAt,
	}
}

func taskFromStorage(in storage.Task) model.Task {
	return model.Task{
		ID:          in.ID,
		ListID:      in.ListID,
		Title:       in.Title,
		Notes:       in.Notes,
		Priority:    model.Priority(in.Priority),
		Completed:   in.Completed,
		Favorite:    in.Favorite,
		CreatedAt:   in.CreatedAt,
		CompletedAt: in.CompletedAt,
	}
}
