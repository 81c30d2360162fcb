// Package servicetest provides an in-memory service.Service for tests.
package servicetest

import (
	"context"
	"errors"
	"sync"

	"github.com/sandeepkv93/done/internal/model"
)

var ErrNotFound = errors.New("servicetest: not found")

// Call records one invocation on the fake, in order.
type Call struct {
	Method string
	Arg    string
}

// Fake keeps lists and tasks in memory. Setting an error field makes the
// matching method fail with it.
type Fake struct {
	mu    sync.Mutex
	lists []model.List
	tasks map[string][]model.Task
	calls []Call

	ReadListsErr  error
	CreateListErr error
	UpdateListErr error
	DeleteListErr error
	ReadTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
}

func New(lists ...model.List) *Fake {
	f := &Fake{tasks: make(map[string][]model.Task)}
	f.lists = append(f.lists, lists...)
	return f
}

// AddTasks seeds tasks into their lists.
func (f *Fake) AddTasks(tasks ...model.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range tasks {
		f.tasks[t.ListID] = append(f.tasks[t.ListID], t)
	}
}

func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *Fake) Lists() []model.List {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.List, len(f.lists))
	copy(out, f.lists)
	return out
}

func (f *Fake) Tasks(listID string) []model.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Task, len(f.tasks[listID]))
	copy(out, f.tasks[listID])
	return out
}

func (f *Fake) record(method, arg string) {
	f.calls = append(f.calls, Call{Method: method, Arg: arg})
}

func (f *Fake) ReadLists(ctx context.Context) ([]model.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ReadLists", "")
	if f.ReadListsErr != nil {
		return nil, f.ReadListsErr
	}
	out := make([]model.List, len(f.lists))
	copy(out, f.lists)
	return out, nil
}

func (f *Fake) CreateList(ctx context.Context, list model.List) (model.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateList", list.Name)
	if f.CreateListErr != nil {
		return model.List{}, f.CreateListErr
	}
	f.lists = append(f.lists, list)
	return list, nil
}

func (f *Fake) UpdateList(ctx context.Context, list model.List) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateList", list.ID)
	if f.UpdateListErr != nil {
		return f.UpdateListErr
	}
	for i := range f.lists {
		if f.lists[i].ID == list.ID {
			f.lists[i] = list
			return nil
		}
	}
	return ErrNotFound
}

func (f *Fake) DeleteList(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteList", id)
	if f.DeleteListErr != nil {
		return f.DeleteListErr
	}
	for i := range f.lists {
		if f.lists[i].ID == id {
			f.lists = append(f.lists[:i], f.lists[i+1:]...)
			delete(f.tasks, id)
			return nil
		}
	}
	return ErrNotFound
}

func (f *Fake) ReadTasksFromList(ctx context.Context, listID string) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ReadTasksFromList", listID)
	if f.ReadTasksErr != nil {
		return nil, f.ReadTasksErr
	}
	out := make([]model.Task, len(f.tasks[listID]))
	copy(out, f.tasks[listID])
	return out, nil
}

func (f *Fake) CreateTask(ctx context.Context, task model.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateTask", task.ID)
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.tasks[task.ListID] = append(f.tasks[task.ListID], task)
	return nil
}

func (f *Fake) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateTask", task.ID)
	if f.UpdateTaskErr != nil {
		return model.Task{}, f.UpdateTaskErr
	}
	items := f.tasks[task.ListID]
	for i := range items {
		if items[i].ID == task.ID {
			items[i] = task
			return task, nil
		}
	}
	return model.Task{}, ErrNotFound
}

func (f *Fake) DeleteTask(ctx context.Context, listID, taskID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteTask", taskID)
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	items := f.tasks[listID]
	for i := range items {
		if items[i].ID == taskID {
			f.tasks[listID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
