package effect

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/config"
	"github.com/sandeepkv93/done/internal/model"
	"github.com/sandeepkv93/done/internal/service/servicetest"
)

type failedMsg struct {
	op  string
	err error
}

type started struct {
	name string
	args []string
}

func newTestRunner(t *testing.T, fake *servicetest.Fake) (*Runner, *[]started) {
	t.Helper()
	var starts []started
	r := NewRunner(fake, nil)
	r.Failed = func(op string, err error) tea.Msg { return failedMsg{op: op, err: err} }
	r.Start = func(name string, args ...string) error {
		starts = append(starts, started{name: name, args: args})
		return nil
	}
	r.Executable = func() (string, error) { return "/usr/bin/done", nil }
	r.SetDark = func(bool) {}
	return r, &starts
}

func TestFetchTasksDegradesToEmpty(t *testing.T) {
	fake := servicetest.New()
	fake.ReadTasksErr = errors.New("offline")
	r, _ := newTestRunner(t, fake)

	var gotID string
	gotLen := -1
	msg := r.Cmd(FetchTasks{ListID: "L1", Then: func(id string, tasks []model.Task) tea.Msg {
		gotID, gotLen = id, len(tasks)
		return "done"
	}})()
	if msg != "done" || gotID != "L1" || gotLen != 0 {
		t.Fatalf("expected empty result for L1, got %v %q %d", msg, gotID, gotLen)
	}
}

func TestFetchListsDeliversLists(t *testing.T) {
	fake := servicetest.New(model.List{ID: "a"}, model.List{ID: "b"})
	r, _ := newTestRunner(t, fake)

	msg := r.Cmd(FetchLists{Then: func(lists []model.List) tea.Msg { return len(lists) }})()
	if msg != 2 {
		t.Fatalf("expected two lists, got %v", msg)
	}
}

func TestWriteFailureSurfaces(t *testing.T) {
	fake := servicetest.New()
	fake.CreateListErr = errors.New("disk full")
	r, _ := newTestRunner(t, fake)

	msg := r.Cmd(CreateList{List: model.NewList("Groceries", model.ProviderComputer), Then: func(model.List) tea.Msg {
		t.Fatal("success callback must not run")
		return nil
	}})()
	failed, ok := msg.(failedMsg)
	if !ok || failed.op != "create list" || failed.err == nil {
		t.Fatalf("expected failure message, got %#v", msg)
	}
}

func TestWriteFailureDroppedWithoutHandler(t *testing.T) {
	fake := servicetest.New()
	r, _ := newTestRunner(t, fake)
	r.Failed = nil

	if msg := r.Cmd(DeleteList{ID: "missing"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}

func TestUpdateTaskReturnsConfirmedCopy(t *testing.T) {
	task := model.Task{ID: "t1", ListID: "L1", Title: "A"}
	fake := servicetest.New(model.List{ID: "L1"})
	fake.AddTasks(task)
	r, _ := newTestRunner(t, fake)

	task.Title = "B"
	msg := r.Cmd(UpdateTask{Task: task, Then: func(t model.Task) tea.Msg { return t.Title }})()
	if msg != "B" {
		t.Fatalf("expected confirmed title, got %v", msg)
	}
}

func TestApplyThemeResolvesSystem(t *testing.T) {
	r, _ := newTestRunner(t, servicetest.New())
	r.SystemDark = true
	var applied []bool
	r.SetDark = func(dark bool) { applied = append(applied, dark) }

	then := func(theme config.AppTheme, dark bool) tea.Msg { return dark }
	if msg := r.Cmd(ApplyTheme{Theme: config.AppThemeSystem, Then: then})(); msg != true {
		t.Fatalf("expected system to follow terminal, got %v", msg)
	}
	if msg := r.Cmd(ApplyTheme{Theme: config.AppThemeLight, Then: then})(); msg != false {
		t.Fatalf("expected light theme, got %v", msg)
	}
	if len(applied) != 2 || !applied[0] || applied[1] {
		t.Fatalf("unexpected applied sequence: %v", applied)
	}
}

func TestSpawnInstanceUsesTerminalWrapper(t *testing.T) {
	r, starts := newTestRunner(t, servicetest.New())
	r.Terminal = "foot -e"

	r.Cmd(SpawnInstance{})()
	if len(*starts) != 1 {
		t.Fatalf("expected one process, got %d", len(*starts))
	}
	got := (*starts)[0]
	if got.name != "foot" || strings.Join(got.args, " ") != "-e /usr/bin/done" {
		t.Fatalf("unexpected spawn: %#v", got)
	}
}

func TestSpawnInstanceWithoutTerminalOnlyLogs(t *testing.T) {
	r, starts := newTestRunner(t, servicetest.New())
	if msg := r.Cmd(SpawnInstance{})(); msg != nil {
		t.Fatalf("expected no message, got %#v", msg)
	}
	if len(*starts) != 0 {
		t.Fatalf("expected nothing started, got %#v", *starts)
	}
}

func TestOpenURLStartsHandler(t *testing.T) {
	r, starts := newTestRunner(t, servicetest.New())
	r.Cmd(OpenURL{URL: "https://example.com"})()
	if len(*starts) != 1 {
		t.Fatalf("expected handler started, got %#v", *starts)
	}
	args := (*starts)[0].args
	if args[len(args)-1] != "https://example.com" {
		t.Fatalf("expected url passed last, got %#v", args)
	}
}

func TestBatchQuitAndAfter(t *testing.T) {
	r, _ := newTestRunner(t, servicetest.New())
	if cmd := r.Batch(nil); cmd != nil {
		t.Fatal("expected nil cmd for no commands")
	}
	if msg := r.Cmd(Quit{})(); msg != tea.Quit() {
		t.Fatalf("expected quit message, got %#v", msg)
	}
	if msg := r.Cmd(After{Msg: "hello"})(); msg != "hello" {
		t.Fatalf("expected direct message, got %#v", msg)
	}
}
