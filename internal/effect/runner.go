package effect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/done/internal/config"
	"github.com/sandeepkv93/done/internal/service"
)

var ErrNoTerminal = errors.New("effect: no terminal configured for new instance")

// Runner turns commands into tea.Cmds. Reads that fail resolve to an empty
// result; writes that fail resolve to Failed.
type Runner struct {
	Service service.Service
	Logger  *slog.Logger
	// Terminal wraps SpawnInstance, e.g. "foot -e".
	Terminal string
	// SystemDark is the detected terminal background, used for the system theme.
	SystemDark bool
	// Failed builds the message for a failed write. Nil drops failures.
	Failed func(op string, err error) tea.Msg

	// Process hooks, replaced in tests.
	Start      func(name string, args ...string) error
	Executable func() (string, error)
	SetDark    func(bool)
}

func NewRunner(svc service.Service, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		Service:    svc,
		Logger:     logger,
		Start:      startDetached,
		Executable: os.Executable,
		SetDark:    lipgloss.SetHasDarkBackground,
	}
}

// Batch converts commands into one tea.Cmd, preserving their order.
func (r *Runner) Batch(cmds []Command) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	out := make([]tea.Cmd, 0, len(cmds))
	for _, c := range cmds {
		if cmd := r.Cmd(c); cmd != nil {
			out = append(out, cmd)
		}
	}
	return tea.Batch(out...)
}

func (r *Runner) Cmd(c Command) tea.Cmd {
	switch c := c.(type) {
	case FetchLists:
		return func() tea.Msg {
			lists, err := r.Service.ReadLists(context.Background())
			if err != nil {
				r.Logger.Warn("fetch lists", "err", err)
			}
			if c.Then == nil {
				return nil
			}
			return c.Then(lists)
		}
	case FetchTasks:
		return func() tea.Msg {
			tasks, err := r.Service.ReadTasksFromList(context.Background(), c.ListID)
			if err != nil {
				r.Logger.Warn("fetch tasks", "list_id", c.ListID, "err", err)
				tasks = nil
			}
			if c.Then == nil {
				return nil
			}
			return c.Then(c.ListID, tasks)
		}
	case CreateList:
		return func() tea.Msg {
			created, err := r.Service.CreateList(context.Background(), c.List)
			if err != nil {
				return r.fail(c, err, "list_id", c.List.ID)
			}
			return then(c.Then, created)
		}
	case UpdateList:
		return func() tea.Msg {
			if err := r.Service.UpdateList(context.Background(), c.List); err != nil {
				return r.fail(c, err, "list_id", c.List.ID)
			}
			return then(c.Then, c.List)
		}
	case DeleteList:
		return func() tea.Msg {
			if err := r.Service.DeleteList(context.Background(), c.ID); err != nil {
				return r.fail(c, err, "list_id", c.ID)
			}
			return nil
		}
	case CreateTask:
		return func() tea.Msg {
			if err := r.Service.CreateTask(context.Background(), c.Task); err != nil {
				return r.fail(c, err, "task_id", c.Task.ID)
			}
			return then(c.Then, c.Task)
		}
	case UpdateTask:
		return func() tea.Msg {
			updated, err := r.Service.UpdateTask(context.Background(), c.Task)
			if err != nil {
				return r.fail(c, err, "task_id", c.Task.ID)
			}
			return then(c.Then, updated)
		}
	case DeleteTask:
		return func() tea.Msg {
			if err := r.Service.DeleteTask(context.Background(), c.ListID, c.TaskID); err != nil {
				return r.fail(c, err, "task_id", c.TaskID)
			}
			return nil
		}
	case ApplyTheme:
		return func() tea.Msg {
			dark := r.isDark(c.Theme)
			if r.SetDark != nil {
				r.SetDark(dark)
			}
			if c.Then == nil {
				return nil
			}
			return c.Then(c.Theme, dark)
		}
	case OpenURL:
		return func() tea.Msg {
			if err := r.openURL(c.URL); err != nil {
				r.Logger.Error("open url", "url", c.URL, "err", err)
			}
			return nil
		}
	case SpawnInstance:
		return func() tea.Msg {
			if err := r.spawn(); err != nil {
				r.Logger.Error("spawn instance", "err", err)
			}
			return nil
		}
	case Quit:
		return tea.Quit
	case After:
		msg := c.Msg
		if c.Delay <= 0 {
			return func() tea.Msg { return msg }
		}
		return tea.Tick(c.Delay, func(time.Time) tea.Msg { return msg })
	default:
		r.Logger.Error("unknown command", "command", fmt.Sprintf("%T", c))
		return nil
	}
}

func then[T any](fn func(T) tea.Msg, v T) tea.Msg {
	if fn == nil {
		return nil
	}
	return fn(v)
}

func (r *Runner) fail(c Command, err error, attrs ...any) tea.Msg {
	op := Name(c)
	r.Logger.Error(op, append(attrs, "err", err)...)
	if r.Failed == nil {
		return nil
	}
	return r.Failed(op, err)
}

func (r *Runner) isDark(theme config.AppTheme) bool {
	switch theme {
	case config.AppThemeDark:
		return true
	case config.AppThemeLight:
		return false
	default:
		return r.SystemDark
	}
}

func (r *Runner) openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return r.Start("open", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		return r.Start("xdg-open", url)
	case "windows":
		return r.Start("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// spawn re-executes the binary with no arguments inside a new terminal.
func (r *Runner) spawn() error {
	exe, err := r.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	wrapper := strings.Fields(r.Terminal)
	if len(wrapper) == 0 {
		return ErrNoTerminal
	}
	args := append(wrapper[1:], exe)
	return r.Start(wrapper[0], args...)
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
