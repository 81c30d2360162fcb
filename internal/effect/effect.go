// Package effect describes side effects as values and runs them as
// bubbletea commands. Each command carries the rule that turns its outcome
// into the follow-up message.
package effect

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/config"
	"github.com/sandeepkv93/done/internal/model"
)

// Command is one of the command types declared below.
type Command interface{ isCommand() }

type (
	FetchLists struct {
		Then func([]model.List) tea.Msg
	}
	FetchTasks struct {
		ListID string
		Then   func(listID string, tasks []model.Task) tea.Msg
	}
	CreateList struct {
		List model.List
		Then func(model.List) tea.Msg
	}
	UpdateList struct {
		List model.List
		Then func(model.List) tea.Msg
	}
	DeleteList struct {
		ID string
	}
	CreateTask struct {
		Task model.Task
		Then func(model.Task) tea.Msg
	}
	UpdateTask struct {
		Task model.Task
		Then func(model.Task) tea.Msg
	}
	DeleteTask struct {
		ListID string
		TaskID string
	}
	ApplyTheme struct {
		Theme config.AppTheme
		Then  func(theme config.AppTheme, dark bool) tea.Msg
	}
	OpenURL struct {
		URL string
	}
	// SpawnInstance starts another copy of the running executable.
	SpawnInstance struct{}
	Quit          struct{}
	// After delivers Msg once Delay has passed, or immediately when zero.
	After struct {
		Delay time.Duration
		Msg   tea.Msg
	}
)

func (FetchLists) isCommand()    {}
func (FetchTasks) isCommand()    {}
func (CreateList) isCommand()    {}
func (UpdateList) isCommand()    {}
func (DeleteList) isCommand()    {}
func (CreateTask) isCommand()    {}
func (UpdateTask) isCommand()    {}
func (DeleteTask) isCommand()    {}
func (ApplyTheme) isCommand()    {}
func (OpenURL) isCommand()       {}
func (SpawnInstance) isCommand() {}
func (Quit) isCommand()          {}
func (After) isCommand()         {}

// Name is used in logs and failure messages.
func Name(c Command) string {
	switch c.(type) {
	case FetchLists:
		return "fetch lists"
	case FetchTasks:
		return "fetch tasks"
	case CreateList:
		return "create list"
	case UpdateList:
		return "update list"
	case DeleteList:
		return "delete list"
	case CreateTask:
		return "create task"
	case UpdateTask:
		return "update task"
	case DeleteTask:
		return "delete task"
	case ApplyTheme:
		return "apply theme"
	case OpenURL:
		return "open url"
	case SpawnInstance:
		return "spawn instance"
	case Quit:
		return "quit"
	case After:
		return "after"
	default:
		return "unknown"
	}
}
