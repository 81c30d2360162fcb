// Package content holds the task list of the selected list. It never talks
// to a backend; Update returns the commands the controller should run.
package content

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
	// ListMsg switches to list, or clears the panel when nil.
	ListMsg struct{ List *model.List }
	// SetItemsMsg carries fetched tasks. Results for a list other than the
	// current one are dropped.
	SetItemsMsg struct {
		ListID string
		Tasks  []model.Task
	}
	// ReloadMsg refetches ListID if it is still current.
	ReloadMsg struct{ ListID string }
	// TaskUpdatedMsg replaces a task with the backend-confirmed copy.
	TaskUpdatedMsg struct{ Task model.Task }
	ItemDownMsg    struct{}
	ItemUpMsg      struct{}
	RenameMsg      struct {
		ID    string
		Title string
	}
	SetPriorityMsg struct {
		ID       string
		Priority model.Priority
	}
	CompleteMsg struct {
		ID        string
		Completed bool
	}
	FavoriteMsg struct {
		ID       string
		Favorite bool
	}
	DeleteMsg struct{ ID string }
	// SelectMsg opens the task in the details panel.
	SelectMsg struct{ ID string }
	InputMsg  struct{ Value string }
	// AddTaskMsg creates a task from the current input.
	AddTaskMsg struct{}
	KeyMsg     struct{ Key tea.KeyMsg }
)

func (ListMsg) isMsg()        {}
func (SetItemsMsg) isMsg()    {}
func (ReloadMsg) isMsg()      {}
func (TaskUpdatedMsg) isMsg() {}
func (ItemDownMsg) isMsg()    {}
func (ItemUpMsg) isMsg()      {}
func (RenameMsg) isMsg()      {}
func (SetPriorityMsg) isMsg() {}
func (CompleteMsg) isMsg()    {}
func (FavoriteMsg) isMsg()    {}
func (DeleteMsg) isMsg()      {}
func (SelectMsg) isMsg()      {}
func (InputMsg) isMsg()       {}
func (AddTaskMsg) isMsg()     {}
func (KeyMsg) isMsg()         {}

// Command is one of the command types declared below.
type Command interface{ isCommand() }

type (
	GetTasks    struct{ ListID string }
	DisplayTask struct{ Task model.Task }
	UpdateTask  struct{ Task model.Task }
	Delete      struct{ TaskID string }
	CreateTask  struct{ Task model.Task }
)

func (GetTasks) isCommand()    {}
func (DisplayTask) isCommand() {}
func (UpdateTask) isCommand()  {}
func (Delete) isCommand()      {}
func (CreateTask) isCommand()  {}

type Model struct {
	list    *model.List
	tasks   []model.Task
	cursor  int
	loading bool
	input   textinput.Model
	now     func() time.Time
}

func New() *Model {
	input := textinput.New()
	input.Placeholder = "Add a task"
	input.Prompt = "+ "
	input.CharLimit = 256
	return &Model{input: input, now: time.Now}
}

func (m *Model) List() *model.List { return m.list }

func (m *Model) Tasks() []model.Task {
	return append([]model.Task(nil), m.tasks...)
}

func (m *Model) Cursor() int { return m.cursor }

func (m *Model) Loading() bool { return m.loading }

// Focused reports whether the new-task input owns key presses.
func (m *Model) Focused() bool { return m.input.Focused() }

func (m *Model) InputView() string { return m.input.View() }

func (m *Model) Selected() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return model.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) Update(msg Msg) []Command {
	switch msg := msg.(type) {
	case ListMsg:
		m.list = msg.List
		m.tasks = nil
		m.cursor = 0
		m.loading = msg.List != nil
		m.input.Blur()
		m.input.SetValue("")
		if msg.List == nil {
			return nil
		}
		return []Command{GetTasks{ListID: msg.List.ID}}
	case SetItemsMsg:
		if m.list == nil || m.list.ID != msg.ListID {
			return nil
		}
		m.tasks = append([]model.Task(nil), msg.Tasks...)
		m.loading = false
		m.clampCursor()
		return nil
	case ReloadMsg:
		if m.list == nil || m.list.ID != msg.ListID {
			return nil
		}
		m.loading = true
		return []Command{GetTasks{ListID: msg.ListID}}
	case TaskUpdatedMsg:
		if i := m.index(msg.Task.ID); i >= 0 {
			m.tasks[i] = msg.Task
		}
		return nil
	case ItemDownMsg:
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return nil
	case ItemUpMsg:
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case RenameMsg:
		title := strings.TrimSpace(msg.Title)
		if title == "" {
			return nil
		}
		return m.mutate(msg.ID, func(t *model.Task) { t.Title = title })
	case SetPriorityMsg:
		if !msg.Priority.IsValid() {
			return nil
		}
		return m.mutate(msg.ID, func(t *model.Task) { t.Priority = msg.Priority })
	case CompleteMsg:
		return m.mutate(msg.ID, func(t *model.Task) { t.SetCompleted(msg.Completed, m.now()) })
	case FavoriteMsg:
		return m.mutate(msg.ID, func(t *model.Task) { t.Favorite = msg.Favorite })
	case DeleteMsg:
		i := m.index(msg.ID)
		if i < 0 {
			return nil
		}
		m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
		m.clampCursor()
		return []Command{Delete{TaskID: msg.ID}}
	case SelectMsg:
		i := m.index(msg.ID)
		if i < 0 {
			return nil
		}
		m.cursor = i
		return []Command{DisplayTask{Task: m.tasks[i]}}
	case InputMsg:
		m.input.SetValue(msg.Value)
		return nil
	case AddTaskMsg:
		return m.addTask()
	case KeyMsg:
		return m.handleKey(msg.Key)
	}
	return nil
}

func (m *Model) addTask() []Command {
	title := strings.TrimSpace(m.input.Value())
	if m.list == nil || title == "" {
		return nil
	}
	task := model.NewTask(m.list.ID, title)
	task.CreatedAt = m.now().UTC()
	m.tasks = append(m.tasks, task)
	m.cursor = len(m.tasks) - 1
	m.input.SetValue("")
	return []Command{CreateTask{Task: task}}
}

func (m *Model) handleKey(key tea.KeyMsg) []Command {
	if m.input.Focused() {
		switch key.String() {
		case "enter":
			cmds := m.addTask()
			m.input.Blur()
			return cmds
		case "esc":
			m.input.Blur()
			m.input.SetValue("")
			return nil
		}
		m.input, _ = m.input.Update(key)
		return nil
	}

	switch key.String() {
	case "j":
		return m.Update(ItemDownMsg{})
	case "k":
		return m.Update(ItemUpMsg{})
	case "a", "n":
		if m.list != nil {
			m.input.Focus()
		}
		return nil
	}

	task, ok := m.Selected()
	if !ok {
		return nil
	}
	switch key.String() {
	case "enter":
		return m.Update(SelectMsg{ID: task.ID})
	case " ", "x":
		return m.Update(CompleteMsg{ID: task.ID, Completed: !task.Completed})
	case "f":
		return m.Update(FavoriteMsg{ID: task.ID, Favorite: !task.Favorite})
	case "p":
		next := model.Priority((int(task.Priority) + 1) % len(model.Priorities()))
		return m.Update(SetPriorityMsg{ID: task.ID, Priority: next})
	case "d", "delete":
		return m.Update(DeleteMsg{ID: task.ID})
	}
	return nil
}

func (m *Model) mutate(id string, apply func(*model.Task)) []Command {
	i := m.index(id)
	if i < 0 {
		return nil
	}
	apply(&m.tasks[i])
	return []Command{UpdateTask{Task: m.tasks[i]}}
}

func (m *Model) index(id string) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
