// Package googletasks implements service.Service on top of the Google Tasks API.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"github.com/sandeepkv93/done/internal/model"
)

const (
	// APITimeout bounds every API round trip.
	APITimeout = 5 * time.Second

	pageSize   = 100
	tasksScope = "https://www.googleapis.com/auth/tasks"

	statusCompleted   = "completed"
	statusNeedsAction = "needsAction"
)

// Client implements service.Service using Google Tasks API.
type Client struct {
	svc *tasks.Service
}

// New creates a client from an OAuth client file and a stored token.
func New(ctx context.Context, oauthClientPath, tokenPath string) (*Client, error) {
	clientJSON, err := os.ReadFile(oauthClientPath)
	if err != nil {
		return nil, fmt.Errorf("read oauth client: %w", err)
	}
	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth client: %w", err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	// Refreshes the access token on demand.
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))
	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client and optional
// extra options (tests point option.WithEndpoint at an httptest server).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

func (c *Client) ReadLists(ctx context.Context) ([]model.List, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var out []model.List
	err := c.svc.Tasklists.List().MaxResults(pageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, item := range resp.Items {
			out = append(out, listFromAPI(item))
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return out, nil
}

// CreateList inserts the list; the API assigns its own id, which replaces
// the locally generated one in the returned list.
func (c *Client) CreateList(ctx context.Context, list model.List) (model.List, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	created, err := c.svc.Tasklists.Insert(&tasks.TaskList{Title: list.Name}).Context(ctx).Do()
	if err != nil {
		return model.List{}, wrapError(err)
	}
	out := listFromAPI(created)
	if list.Icon != "" {
		out.Icon = list.Icon
	}
	return out, nil
}

func (c *Client) UpdateList(ctx context.Context, list model.List) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasklists.Patch(list.ID, &tasks.TaskList{Title: list.Name}).Context(ctx).Do()
	return wrapError(err)
}

func (c *Client) DeleteList(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	return wrapError(c.svc.Tasklists.Delete(id).Context(ctx).Do())
}

func (c *Client) ReadTasksFromList(ctx context.Context, listID string) ([]model.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var out []model.Task
	err := c.svc.Tasks.List(listID).
		MaxResults(pageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, item := range resp.Items {
				out = append(out, taskFromAPI(listID, item))
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, task model.Task) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasks.Insert(task.ListID, taskToAPI(task, false)).Context(ctx).Do()
	return wrapError(err)
}

func (c *Client) UpdateTask(ctx context.Context, task model.Task) (model.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	patched, err := c.svc.Tasks.Patch(task.ListID, task.ID, taskToAPI(task, true)).Context(ctx).Do()
	if err != nil {
		return model.Task{}, wrapError(err)
	}
	out := taskFromAPI(task.ListID, patched)
	// Priority and favorite have no API counterpart.
	out.Priority = task.Priority
	out.Favorite = task.Favorite
	return out, nil
}

func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	return wrapError(c.svc.Tasks.Delete(listID, taskID).Context(ctx).Do())
}

func listFromAPI(in *tasks.TaskList) model.List {
	out := model.List{
		ID:      in.Id,
		Name:    in.Title,
		Icon:    model.DefaultListIcon,
		Service: model.ProviderGoogle,
	}
	if ts, err := time.Parse(time.RFC3339, in.Updated); err == nil {
		out.CreatedAt = ts
	}
	return out
}

func taskFromAPI(listID string, in *tasks.Task) model.Task {
	out := model.Task{
		ID:        in.Id,
		ListID:    listID,
		Title:     in.Title,
		Notes:     in.Notes,
		Priority:  model.PriorityNormal,
		Completed: in.Status == statusCompleted,
	}
	if ts, err := time.Parse(time.RFC3339, in.Updated); err == nil {
		out.CreatedAt = ts
	}
	if in.Completed != nil {
		if ts, err := time.Parse(time.RFC3339, *in.Completed); err == nil {
			out.CompletedAt = &ts
		}
	}
	if out.Completed && out.CompletedAt == nil {
		at := out.CreatedAt
		out.CompletedAt = &at
	}
	return out
}

func taskToAPI(in model.Task, patch bool) *tasks.Task {
	out := &tasks.Task{
		Title:  in.Title,
		Notes:  in.Notes,
		Status: statusNeedsAction,
	}
	if in.Completed {
		out.Status = statusCompleted
		if in.CompletedAt != nil {
			done := in.CompletedAt.UTC().Format(time.RFC3339)
			out.Completed = &done
		}
	} else if patch {
		// An explicit null is needed to clear the completion timestamp.
		out.NullFields = append(out.NullFields, "Completed")
	}
	return out
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "context deadline exceeded"):
		return fmt.Errorf("google tasks: request timed out: %w", err)
	case strings.Contains(errStr, "401") || strings.Contains(errStr, "403"):
		return fmt.Errorf("google tasks: token expired or revoked: %w", err)
	case strings.Contains(errStr, "404"):
		return fmt.Errorf("google tasks: not found: %w", err)
	}
	return fmt.Errorf("google tasks: %w", err)
}
