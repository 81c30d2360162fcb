package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sandeepkv93/done/internal/model"
	"github.com/sandeepkv93/done/internal/service/servicetest"
)

func TestRouterAggregatesListsInRegistrationOrder(t *testing.T) {
	local := servicetest.New(model.List{ID: "a", Name: "A"})
	remote := servicetest.New(model.List{ID: "b", Name: "B", Service: model.ProviderGoogle})

	r := NewRouter(model.ProviderComputer)
	r.Register(model.ProviderComputer, local)
	r.Register(model.ProviderGoogle, remote)

	lists, err := r.ReadLists(context.Background())
	if err != nil {
		t.Fatalf("read lists: %v", err)
	}
	if len(lists) != 2 || lists[0].ID != "a" || lists[1].ID != "b" {
		t.Fatalf("unexpected order: %#v", lists)
	}
	if lists[0].Service != model.ProviderComputer {
		t.Fatalf("expected provider filled in, got %q", lists[0].Service)
	}

	if err := r.DeleteList(context.Background(), "b"); err != nil {
		t.Fatalf("delete remote list: %v", err)
	}
	if calls := remote.Calls(); calls[len(calls)-1].Method != "DeleteList" {
		t.Fatalf("expected delete routed to remote, got %#v", calls)
	}
	if calls := local.Calls(); len(calls) != 1 {
		t.Fatalf("expected local untouched after read, got %#v", calls)
	}
}

func TestRouterPartialReadFailure(t *testing.T) {
	local := servicetest.New(model.List{ID: "a", Name: "A"})
	remote := servicetest.New()
	remote.ReadListsErr = errors.New("offline")

	r := NewRouter(model.ProviderComputer)
	r.Register(model.ProviderComputer, local)
	r.Register(model.ProviderGoogle, remote)

	lists, err := r.ReadLists(context.Background())
	if err == nil {
		t.Fatal("expected joined error")
	}
	if len(lists) != 1 || lists[0].ID != "a" {
		t.Fatalf("expected healthy backend lists, got %#v", lists)
	}
}

func TestRouterUnknownProvider(t *testing.T) {
	r := NewRouter(model.ProviderComputer)
	_, err := r.CreateList(context.Background(), model.NewList("X", model.ProviderGoogle))
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestRouterRoutesTasksByListOwner(t *testing.T) {
	local := servicetest.New()
	remote := servicetest.New()
	r := NewRouter(model.ProviderComputer)
	r.Register(model.ProviderComputer, local)
	r.Register(model.ProviderGoogle, remote)

	list, err := r.CreateList(context.Background(), model.NewList("Remote", model.ProviderGoogle))
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	task := model.NewTask(list.ID, "call bank")
	if err := r.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if got := remote.Tasks(list.ID); len(got) != 1 {
		t.Fatalf("expected task on remote backend, got %#v", got)
	}
	if got := local.Tasks(list.ID); len(got) != 0 {
		t.Fatalf("expected no task on local backend, got %#v", got)
	}
}
