// Package details is the single-task edit panel.
package details

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/model"
)

// Msg is one of the message types declared below.
type Msg interface{ isMsg() }

type (
	SetTaskMsg     struct{ Task model.Task }
	RenameMsg      struct{ Title string }
	SetPriorityMsg struct{ Priority model.Priority }
	CompleteMsg    struct{ Completed bool }
	FavoriteMsg    struct{ Favorite bool }
	DeleteMsg      struct{}
	SetNotesMsg    struct{ Notes string }
	KeyMsg         struct{ Key tea.KeyMsg }
)

func (SetTaskMsg) isMsg()     {}
func (RenameMsg) isMsg()      {}
func (SetPriorityMsg) isMsg() {}
func (CompleteMsg) isMsg()    {}
func (FavoriteMsg) isMsg()    {}
func (DeleteMsg) isMsg()      {}
func (SetNotesMsg) isMsg()    {}
func (KeyMsg) isMsg()         {}

// Command is one of the command types declared below.
type Command interface{ isCommand() }

type (
	Update struct{ Task model.Task }
	Rename struct {
		ID    string
		Title string
	}
	Delete   struct{ ID string }
	Complete struct {
		ID        string
		Completed bool
	}
	Favorite struct {
		ID       string
		Favorite bool
	}
	PriorityActivate struct {
		ID       string
		Priority model.Priority
	}
)

func (Update) isCommand()           {}
func (Rename) isCommand()           {}
func (Delete) isCommand()           {}
func (Complete) isCommand()         {}
func (Favorite) isCommand()         {}
func (PriorityActivate) isCommand() {}

type Model struct {
	task     *model.Task
	priority model.Priority
	title    textinput.Model
	now      func() time.Time
}

func New() *Model {
	title := textinput.New()
	title.Prompt = "Title: "
	title.CharLimit = 256
	return &Model{priority: model.PriorityNormal, title: title, now: time.Now}
}

func (m *Model) Task() (model.Task, bool) {
	if m.task == nil {
		return model.Task{}, false
	}
	return *m.task, true
}

// SetTask replaces the edit buffer without emitting anything.
func (m *Model) SetTask(task model.Task) {
	t := task
	m.task = &t
	m.title.Blur()
	m.title.SetValue(task.Title)
}

func (m *Model) Clear() {
	m.task = nil
	m.title.Blur()
	m.title.SetValue("")
}

// Priority is the active entry of the priority selector.
func (m *Model) Priority() model.Priority { return m.priority }

// ActivatePriority moves the selector without emitting anything.
func (m *Model) ActivatePriority(p model.Priority) {
	if p.IsValid() {
		m.priority = p
	}
}

// Editing reports whether the title input owns key presses.
func (m *Model) Editing() bool { return m.title.Focused() }

// Handles reports whether key is a details panel key for the current task.
func (m *Model) Handles(key tea.KeyMsg) bool {
	if m.task == nil {
		return false
	}
	if m.title.Focused() {
		return true
	}
	switch key.String() {
	case "e", "r", "p", " ", "x", "f", "d", "delete":
		return true
	}
	return false
}

func (m *Model) TitleView() string { return m.title.View() }

func (m *Model) Update(msg Msg) []Command {
	if _, ok := msg.(SetTaskMsg); !ok && m.task == nil {
		return nil
	}

	switch msg := msg.(type) {
	case SetTaskMsg:
		m.SetTask(msg.Task)
		m.ActivatePriority(msg.Task.Priority)
		return nil
	case RenameMsg:
		title := strings.TrimSpace(msg.Title)
		if title == "" {
			return nil
		}
		m.task.Title = title
		m.title.SetValue(title)
		return []Command{Rename{ID: m.task.ID, Title: title}}
	case SetPriorityMsg:
		if !msg.Priority.IsValid() {
			return nil
		}
		m.task.Priority = msg.Priority
		m.priority = msg.Priority
		return []Command{PriorityActivate{ID: m.task.ID, Priority: msg.Priority}}
	case CompleteMsg:
		m.task.SetCompleted(msg.Completed, m.now())
		return []Command{Complete{ID: m.task.ID, Completed: msg.Completed}}
	case FavoriteMsg:
		m.task.Favorite = msg.Favorite
		return []Command{Favorite{ID: m.task.ID, Favorite: msg.Favorite}}
	case DeleteMsg:
		id := m.task.ID
		m.Clear()
		return []Command{Delete{ID: id}}
	case SetNotesMsg:
		m.task.Notes = msg.Notes
		return []Command{Update{Task: *m.task}}
	case KeyMsg:
		return m.handleKey(msg.Key)
	}
	return nil
}

func (m *Model) handleKey(key tea.KeyMsg) []Command {
	if m.title.Focused() {
		switch key.String() {
		case "enter":
			m.title.Blur()
			return m.Update(RenameMsg{Title: m.title.Value()})
		case "esc":
			m.title.Blur()
			m.title.SetValue(m.task.Title)
			return nil
		}
		m.title, _ = m.title.Update(key)
		return nil
	}

	switch key.String() {
	case "e", "r":
		m.title.Focus()
		m.title.CursorEnd()
		return nil
	case "p":
		next := model.Priority((int(m.priority) + 1) % len(model.Priorities()))
		return m.Update(SetPriorityMsg{Priority: next})
	case " ", "x":
		return m.Update(CompleteMsg{Completed: !m.task.Completed})
	case "f":
		return m.Update(FavoriteMsg{Favorite: !m.task.Favorite})
	case "d", "delete":
		return m.Update(DeleteMsg{})
	}
	return nil
}
