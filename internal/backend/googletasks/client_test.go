package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"google.golang.org/api/option"

	"github.com/sandeepkv93/done/internal/model"
)

type recorded struct {
	Method string
	Path   string
	Body   map[string]any
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, func() []recorded) {
	t.Helper()

	var (
		mu   sync.Mutex
		reqs []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{Method: r.Method, Path: r.URL.Path}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}
		mu.Lock()
		reqs = append(reqs, rec)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := NewWithHTTPClient(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, func() []recorded {
		mu.Lock()
		defer mu.Unlock()
		return append([]recorded(nil), reqs...)
	}
}

func TestReadListsMapsToGoogleProvider(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/users/@me/lists") {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, `{"items":[{"id":"L1","title":"Work"},{"id":"L2","title":"Home"}]}`)
	})

	lists, err := client.ReadLists(context.Background())
	if err != nil {
		t.Fatalf("read lists: %v", err)
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}
	if lists[0].ID != "L1" || lists[0].Name != "Work" || lists[0].Service != model.ProviderGoogle {
		t.Fatalf("unexpected list: %#v", lists[0])
	}
	if lists[1].Icon != model.DefaultListIcon {
		t.Fatalf("expected default icon, got %q", lists[1].Icon)
	}
}

func TestCreateListUsesServerID(t *testing.T) {
	client, reqs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"server-id","title":"Groceries"}`)
	})

	created, err := client.CreateList(context.Background(), model.NewList("Groceries", model.ProviderGoogle))
	if err != nil {
		t.Fatalf("create list: %v", err)
	}
	if created.ID != "server-id" {
		t.Fatalf("expected server id, got %q", created.ID)
	}
	got := reqs()
	if len(got) != 1 || got[0].Method != http.MethodPost || got[0].Body["title"] != "Groceries" {
		t.Fatalf("unexpected request: %#v", got)
	}
}

func TestReadTasksFromList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/lists/L1/tasks") {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("showCompleted") != "true" {
			t.Errorf("expected completed tasks requested, got %q", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `{"items":[
			{"id":"T1","title":"Milk","status":"needsAction","notes":"2 litres"},
			{"id":"T2","title":"Bread","status":"completed","completed":"2026-01-02T03:04:05Z"}
		]}`)
	})

	tasks, err := client.ReadTasksFromList(context.Background(), "L1")
	if err != nil {
		t.Fatalf("read tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ListID != "L1" || tasks[0].Notes != "2 litres" || tasks[0].Completed {
		t.Fatalf("unexpected first task: %#v", tasks[0])
	}
	if !tasks[1].Completed || tasks[1].CompletedAt == nil {
		t.Fatalf("expected completed task, got %#v", tasks[1])
	}
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if !tasks[1].CompletedAt.Equal(want) {
		t.Fatalf("unexpected completion time: %v", tasks[1].CompletedAt)
	}
}

func TestUpdateTaskKeepsLocalOnlyFields(t *testing.T) {
	client, reqs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":"T1","title":"Renamed","status":"needsAction"}`)
	})

	task := model.Task{ID: "T1", ListID: "L1", Title: "Renamed", Priority: model.PriorityHigh, Favorite: true}
	updated, err := client.UpdateTask(context.Background(), task)
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.Title != "Renamed" || updated.Priority != model.PriorityHigh || !updated.Favorite {
		t.Fatalf("unexpected updated task: %#v", updated)
	}
	got := reqs()
	if len(got) != 1 || got[0].Method != http.MethodPatch || !strings.HasSuffix(got[0].Path, "/lists/L1/tasks/T1") {
		t.Fatalf("unexpected request: %#v", got)
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"code":404,"message":"not found"}}`)
	})

	err := client.DeleteTask(context.Background(), "L1", "missing")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found message, got %v", err)
	}
}

func TestWrapErrorNil(t *testing.T) {
	if err := wrapError(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	base := errors.New("boom")
	if err := wrapError(base); !errors.Is(err, base) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
