package details

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/model"
)

func withTask(t *testing.T) *Model {
	t.Helper()
	m := New()
	m.Update(SetTaskMsg{Task: model.Task{ID: "t1", ListID: "L1", Title: "Draft", Priority: model.PriorityLow}})
	return m
}

func TestNoTaskIgnoresEdits(t *testing.T) {
	m := New()
	if cmds := m.Update(RenameMsg{Title: "x"}); cmds != nil {
		t.Fatalf("expected nothing without a task, got %#v", cmds)
	}
	if cmds := m.Update(DeleteMsg{}); cmds != nil {
		t.Fatalf("expected nothing without a task, got %#v", cmds)
	}
}

func TestSetTaskSyncsPriority(t *testing.T) {
	m := withTask(t)
	if m.Priority() != model.PriorityLow {
		t.Fatalf("expected selector at low, got %v", m.Priority())
	}
	task, ok := m.Task()
	if !ok || task.ID != "t1" {
		t.Fatalf("unexpected task: %#v", task)
	}
}

func TestIntents(t *testing.T) {
	m := withTask(t)

	cmds := m.Update(RenameMsg{Title: "Final"})
	if r, ok := cmds[0].(Rename); !ok || r.ID != "t1" || r.Title != "Final" {
		t.Fatalf("unexpected rename intent: %#v", cmds)
	}

	cmds = m.Update(SetPriorityMsg{Priority: model.PriorityHigh})
	if p, ok := cmds[0].(PriorityActivate); !ok || p.Priority != model.PriorityHigh {
		t.Fatalf("unexpected priority intent: %#v", cmds)
	}
	if m.Priority() != model.PriorityHigh {
		t.Fatal("expected selector moved")
	}

	cmds = m.Update(CompleteMsg{Completed: true})
	if c, ok := cmds[0].(Complete); !ok || !c.Completed {
		t.Fatalf("unexpected complete intent: %#v", cmds)
	}

	cmds = m.Update(FavoriteMsg{Favorite: true})
	if f, ok := cmds[0].(Favorite); !ok || !f.Favorite {
		t.Fatalf("unexpected favorite intent: %#v", cmds)
	}

	cmds = m.Update(SetNotesMsg{Notes: "# notes"})
	if u, ok := cmds[0].(Update); !ok || u.Task.Notes != "# notes" || u.Task.Title != "Final" {
		t.Fatalf("unexpected update intent: %#v", cmds)
	}

	cmds = m.Update(DeleteMsg{})
	if d, ok := cmds[0].(Delete); !ok || d.ID != "t1" {
		t.Fatalf("unexpected delete intent: %#v", cmds)
	}
	if _, ok := m.Task(); ok {
		t.Fatal("expected buffer cleared after delete")
	}
}

func TestTitleEditingThroughKeys(t *testing.T) {
	m := withTask(t)
	m.Update(KeyMsg{Key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}})
	if !m.Editing() {
		t.Fatal("expected title input focused")
	}
	m.Update(KeyMsg{Key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'!'}}})
	cmds := m.Update(KeyMsg{Key: tea.KeyMsg{Type: tea.KeyEnter}})
	if r, ok := cmds[0].(Rename); !ok || r.Title != "Draft!" {
		t.Fatalf("unexpected rename intent: %#v", cmds)
	}
	if m.Editing() {
		t.Fatal("expected input blurred")
	}
}

func TestHandles(t *testing.T) {
	m := New()
	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	if m.Handles(key) {
		t.Fatal("expected no keys handled without a task")
	}
	m = withTask(t)
	if !m.Handles(key) {
		t.Fatal("expected completion key handled")
	}
	if m.Handles(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}) {
		t.Fatal("expected navigation key left to the list")
	}
}
