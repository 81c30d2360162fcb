package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sandeepkv93/done/internal/model"
)

// Router fans Service calls out to one backend per provider. Lists are
// routed by their Service field; id-only calls are routed through the
// list ownership learned from earlier reads and creates, falling back to
// the default provider for ids it has never seen.
type Router struct {
	mu       sync.RWMutex
	order    []model.Provider
	backends map[model.Provider]Service
	owners   map[string]model.Provider
	fallback model.Provider
}

func NewRouter(fallback model.Provider) *Router {
	return &Router{
		backends: make(map[model.Provider]Service),
		owners:   make(map[string]model.Provider),
		fallback: fallback,
	}
}

// Register adds a backend; ReadLists visits backends in registration order.
func (r *Router) Register(p model.Provider, svc Service) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.backends[p]; !ok {
		r.order = append(r.order, p)
	}
	r.backends[p] = svc
}

func (r *Router) Providers() []model.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Provider, len(r.order))
	copy(out, r.order)
	return out
}

// ReadLists returns the lists of every backend that answered. Failed
// backends contribute an error but do not hide the others.
func (r *Router) ReadLists(ctx context.Context) ([]model.List, error) {
	var (
		out  []model.List
		errs []error
	)
	for _, p := range r.Providers() {
		svc, err := r.backend(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		lists, err := svc.ReadLists(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			continue
		}
		for i := range lists {
			if lists[i].Service == "" {
				lists[i].Service = p
			}
			r.remember(lists[i].ID, p)
		}
		out = append(out, lists...)
	}
	return out, errors.Join(errs...)
}

func (r *Router) CreateList(ctx context.Context, list model.List) (model.List, error) {
	p := list.Service
	if p == "" {
		p = r.fallback
		list.Service = p
	}
	svc, err := r.backend(p)
	if err != nil {
		return model.List{}, err
	}
	created, err := svc.CreateList(ctx, list)
	if err != nil {
		return model.List{}, err
	}
	if created.Service == "" {
		created.Service = p
	}
	r.remember(created.ID, p)
	return created, nil
}

func (r *Router) UpdateList(ctx context.Context, list model.List) error {
	svc, err := r.backend(r.providerFor(list.ID, list.Service))
	if err != nil {
		return err
	}
	return svc.UpdateList(ctx, list)
}

func (r *Router) DeleteList(ctx context.Context, id string) error {
	svc, err := r.backend(r.providerFor(id, ""))
	if err != nil {
		return err
	}
	if err := svc.DeleteList(ctx, id); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.owners, id)
	r.mu.Unlock()
	return nil
}

func (r *Router) ReadTasksFromList(ctx context.Context, listID string) ([]model.Task, error) {
	svc, err := r.backend(r.providerFor(listID, ""))
	if err != nil {
		return nil, err
	}
	return svc.ReadTasksFromList(ctx, listID)
}

func (r *Router) CreateTask(ctx context.Context, task model.Task) error {
	svc, err := r.backend(r.providerFor(task.ListID, ""))
	if err != nil {
		return err
	}
	return svc.CreateTask(ctx, task)
}

func (r *Router) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	svc, err := r.backend(r.providerFor(task.ListID, ""))
	if err != nil {
		return model.Task{}, err
	}
	return svc.UpdateTask(ctx, task)
}

func (r *Router) DeleteTask(ctx context.Context, listID, taskID string) error {
	svc, err := r.backend(r.providerFor(listID, ""))
	if err != nil {
		return err
	}
	return svc.DeleteTask(ctx, listID, taskID)
}

func (r *Router) backend(p model.Provider) (Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	svc, ok := r.backends[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, p)
	}
	return svc, nil
}

func (r *Router) providerFor(listID string, hint model.Provider) model.Provider {
	if hint != "" {
		return hint
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.owners[listID]; ok {
		return p
	}
	return r.fallback
}

func (r *Router) remember(listID string, p model.Provider) {
	r.mu.Lock()
	r.owners[listID] = p
	r.mu.Unlock()
}
