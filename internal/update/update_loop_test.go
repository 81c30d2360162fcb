package update

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/effect"
	"github.com/sandeepkv93/done/internal/model"
	"github.com/sandeepkv93/done/internal/service/servicetest"
)

func newRunner(fake *servicetest.Fake) *effect.Runner {
	r := effect.NewRunner(fake, nil)
	r.SetDark = func(bool) {}
	r.Failed = func(op string, err error) tea.Msg { return BackendErrorMsg{Op: op, Err: err} }
	return r
}

// drive runs cmds through r and reduces every resulting message, until no
// backend work is left. After commands are skipped.
func drive(t *testing.T, m Model, r *effect.Runner, cmds []effect.Command) Model {
	t.Helper()
	for rounds := 0; len(cmds) > 0; rounds++ {
		if rounds > 20 {
			t.Fatal("commands did not settle")
		}
		var next []effect.Command
		for _, c := range cmds {
			if _, ok := c.(effect.After); ok {
				continue
			}
			cmd := r.Cmd(c)
			if cmd == nil {
				continue
			}
			msg := cmd()
			if msg == nil {
				continue
			}
			var produced []effect.Command
			m, produced = m.Step(msg)
			next = append(next, produced...)
		}
		cmds = next
	}
	return m
}

func TestStartupLoadsListsAndTasks(t *testing.T) {
	inbox := model.List{ID: "inbox", Name: "Inbox", Service: model.ProviderComputer}
	fake := servicetest.New(inbox)
	fake.AddTasks(model.Task{ID: "t1", ListID: "inbox", Title: "Water plants"})
	r := newRunner(fake)

	m := New(Options{Runner: r})
	m = drive(t, m, r, m.InitCommands())

	if selected, ok := m.SelectedList(); !ok || selected.ID != "inbox" {
		t.Fatalf("expected inbox selected, got %#v", selected)
	}
	if tasks := m.content.Tasks(); len(tasks) != 1 || tasks[0].Title != "Water plants" {
		t.Fatalf("expected fetched task, got %#v", tasks)
	}
	view := m.View()
	if !strings.Contains(view, "Inbox") || !strings.Contains(view, "Water plants") {
		t.Fatalf("expected list and task in view, got:\n%s", view)
	}
}

func TestCreatedListAppearsAfterBackendConfirms(t *testing.T) {
	fake := servicetest.New()
	r := newRunner(fake)
	m := New(Options{Runner: r})

	m, cmds := m.Step(PaletteSubmitMsg{Input: "new Groceries"})
	m = drive(t, m, r, cmds)

	if len(fake.Lists()) != 1 {
		t.Fatalf("expected list stored, got %#v", fake.Lists())
	}
	active, ok := m.nav.Active()
	if !ok || active.Label != "Groceries" {
		t.Fatalf("expected Groceries active, got %#v", active)
	}
}

func TestBackendWriteFailureReachesStatusBar(t *testing.T) {
	fake := servicetest.New()
	fake.CreateListErr = errors.New("read-only database")
	r := newRunner(fake)
	m := New(Options{Runner: r})

	m, cmds := m.Step(PaletteSubmitMsg{Input: "new Groceries"})
	m = drive(t, m, r, cmds)

	if m.nav.Len() != 0 {
		t.Fatalf("expected no entry for failed create, got %d", m.nav.Len())
	}
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "read-only database") {
		t.Fatalf("expected failure in status, got %+v", m.Status)
	}
	if !strings.Contains(m.View(), "read-only database") {
		t.Fatal("expected failure rendered")
	}
}

func TestQuitRendersNothing(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(WindowCloseMsg{})
	if next.(Model).View() != "" {
		t.Fatal("expected empty view after quit")
	}
}

func TestHelpListsPanelKeys(t *testing.T) {
	m := newTestModel()
	m, _ = m.Step(press(tea.KeyCtrlS))
	m, _ = m.Step(runes("?"))
	if !m.HelpVisible {
		t.Fatal("expected help visible")
	}
	if view := m.View(); !strings.Contains(view, "cycle theme") {
		t.Fatalf("expected settings keys in help, got:\n%s", view)
	}
}
