package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/config"
	"github.com/sandeepkv93/done/internal/content"
	"github.com/sandeepkv93/done/internal/details"
	"github.com/sandeepkv93/done/internal/dialog"
	"github.com/sandeepkv93/done/internal/effect"
	"github.com/sandeepkv93/done/internal/model"
	"github.com/sandeepkv93/done/internal/nav"
)

// maxRedispatch bounds the messages a single external message may
// synthesize.
const maxRedispatch = 256

// step is either a command to run or a message to reduce in its place.
type step struct {
	cmd effect.Command
	msg tea.Msg
}

func run(cmds ...effect.Command) []step {
	out := make([]step, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, step{cmd: c})
	}
	return out
}

func dispatch(msgs ...tea.Msg) []step {
	out := make([]step, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, step{msg: msg})
	}
	return out
}

// Step reduces msg and every message it synthesizes, depth first, and
// returns the commands to run in order. reduce never calls itself; a
// synthesized message is expanded in the position it was produced.
func (m Model) Step(msg tea.Msg) (Model, []effect.Command) {
	var cmds []effect.Command
	queue := dispatch(msg)
	reduced := 0
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next.msg == nil {
			if next.cmd != nil {
				cmds = append(cmds, next.cmd)
			}
			continue
		}
		if reduced > maxRedispatch {
			m.logger.Error("re-dispatch limit reached, dropping messages",
				"limit", maxRedispatch, "dropped", len(queue)+1, "msg", fmt.Sprintf("%T", next.msg))
			break
		}
		reduced++
		queue = append(m.reduce(next.msg), queue...)
	}
	return m, cmds
}

func (m *Model) reduce(msg tea.Msg) []step {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.helpModel.Width = msg.Width
		return nil

	case ContentMsg:
		return m.translateContent(m.content.Update(msg.Msg))
	case DetailsMsg:
		return m.translateDetails(m.details.Update(msg.Msg))

	case NavSelectMsg:
		return m.selectEntry(msg.Entity)
	case PopulateListsMsg:
		var first nav.EntityID
		for i, list := range msg.Lists {
			id := m.nav.Insert(list)
			if i == 0 {
				first = id
			}
		}
		if first == 0 {
			return nil
		}
		return m.selectEntry(first)
	case AddListMsg:
		return m.selectEntry(m.nav.Insert(msg.List))
	case DeleteListMsg:
		return m.deleteSelectedList()
	case UpdateListMsg:
		if id := m.nav.ActiveID(); id != 0 {
			m.nav.SetData(id, msg.List)
			list := msg.List
			m.selectedList = &list
		}
		return nil

	case OpenNewListDialogMsg:
		m.pushDialog(dialog.NewItem{})
		return nil
	case OpenRenameListDialogMsg:
		if m.selectedList == nil {
			return nil
		}
		m.pushDialog(dialog.RenameItem{From: m.selectedList.Name, To: m.selectedList.Name})
		return nil
	case OpenDeleteListDialogMsg:
		if m.selectedList == nil {
			return nil
		}
		m.pushDialog(dialog.DeleteItem{Name: m.selectedList.Name})
		return nil
	case DialogUpdateMsg:
		m.dialogs.Replace(msg.Page)
		m.syncDialogInput()
		return nil
	case DialogCancelMsg:
		m.popDialog()
		return nil
	case DialogCompleteMsg:
		page, ok := m.popDialog()
		if !ok {
			return nil
		}
		return m.completeDialog(page)
	case EscapeMsg:
		if !m.dialogs.Empty() {
			m.popDialog()
			return nil
		}
		m.showContext = false
		return nil

	case ToggleContextPageMsg:
		if m.contextPage == msg.Page {
			m.showContext = !m.showContext
		} else {
			m.contextPage = msg.Page
			m.showContext = true
		}
		return nil
	case LaunchURLMsg:
		return run(effect.OpenURL{URL: msg.URL})

	case AppThemeMsg:
		if err := m.config.SetAppTheme(m.configHandle, msg.Theme); err != nil {
			if errors.Is(err, config.ErrInvalidAppTheme) {
				return m.setStatus(err.Error(), true)
			}
			m.logger.Warn("persist app theme", "theme", msg.Theme, "err", err)
		}
		return run(m.applyTheme())
	case SystemThemeModeChangeMsg:
		m.config.Adopt(msg.Config)
		return run(m.applyTheme())
	case ThemeAppliedMsg:
		m.darkTheme = msg.Dark
		return nil

	case WindowNewMsg:
		return run(effect.SpawnInstance{})
	case WindowCloseMsg:
		m.Quitting = true
		return run(effect.Quit{})

	case BackendErrorMsg:
		return m.setStatus(fmt.Sprintf("%s failed: %v", msg.Op, msg.Err), true)
	case SetStatusMsg:
		return m.setStatus(msg.Text, msg.IsError)
	case ClearStatusMsg:
		if msg.Seq == m.Status.seq {
			m.Status = StatusBar{seq: m.Status.seq}
		}
		return nil
	case PaletteSubmitMsg:
		return m.executePaletteCommand(msg.Input)
	}
	return nil
}

// selectEntry activates id and keeps selectedList and Content in step with it.
func (m *Model) selectEntry(id nav.EntityID) []step {
	if !m.nav.Activate(id) {
		return nil
	}
	list, _ := m.nav.Data(id)
	m.selectedList = &list
	m.dropDetails(func(task model.Task) bool { return task.ListID != list.ID })
	forwarded := list
	return dispatch(ContentMsg{Msg: content.ListMsg{List: &forwarded}})
}

func (m *Model) deleteSelectedList() []step {
	if m.selectedList == nil {
		return nil
	}
	list := *m.selectedList
	if id, ok := m.nav.FindByListID(list.ID); ok {
		m.nav.Remove(id)
	}
	m.selectedList = nil
	m.nav.Deactivate()

	m.dropDetails(func(task model.Task) bool { return task.ListID == list.ID })

	steps := dispatch(ContentMsg{Msg: content.ListMsg{List: nil}})
	return append(steps, run(effect.DeleteList{ID: list.ID})...)
}

func (m *Model) completeDialog(page dialog.Page) []step {
	switch page := page.(type) {
	case dialog.NewItem:
		name := strings.TrimSpace(page.Name)
		if name == "" {
			return m.setStatus("list name cannot be empty", true)
		}
		return run(effect.CreateList{
			List: model.NewList(name, m.defaultProvider),
			Then: func(list model.List) tea.Msg { return AddListMsg{List: list} },
		})
	case dialog.RenameItem:
		if m.selectedList == nil {
			return nil
		}
		name := strings.TrimSpace(page.To)
		if name == "" {
			return m.setStatus("list name cannot be empty", true)
		}
		list := *m.selectedList
		list.Name = name
		return run(effect.UpdateList{
			List: list,
			Then: func(list model.List) tea.Msg { return UpdateListMsg{List: list} },
		})
	case dialog.DeleteItem:
		if m.selectedList == nil {
			return nil
		}
		return dispatch(DeleteListMsg{})
	default:
		m.logger.Error("unknown dialog page", "page", fmt.Sprintf("%T", page))
		return nil
	}
}

func (m *Model) translateContent(cmds []content.Command) []step {
	var steps []step
	for _, c := range cmds {
		switch c := c.(type) {
		case content.GetTasks:
			steps = append(steps, run(effect.FetchTasks{
				ListID: c.ListID,
				Then: func(listID string, tasks []model.Task) tea.Msg {
					return ContentMsg{Msg: content.SetItemsMsg{ListID: listID, Tasks: tasks}}
				},
			})...)
		case content.DisplayTask:
			m.details.ActivatePriority(c.Task.Priority)
			m.details.SetTask(c.Task)
			if !m.showContext || m.contextPage != ContextTaskDetails {
				steps = append(steps, dispatch(ToggleContextPageMsg{Page: ContextTaskDetails})...)
			}
		case content.UpdateTask:
			m.details.SetTask(c.Task)
			steps = append(steps, run(m.updateTask(c.Task))...)
		case content.Delete:
			m.dropDetails(func(task model.Task) bool { return task.ID == c.TaskID })
			if m.selectedList != nil {
				steps = append(steps, run(effect.DeleteTask{ListID: m.selectedList.ID, TaskID: c.TaskID})...)
			}
		case content.CreateTask:
			steps = append(steps, run(effect.CreateTask{
				Task: c.Task,
				Then: func(task model.Task) tea.Msg { return ContentMsg{Msg: content.ReloadMsg{ListID: task.ListID}} },
			})...)
		default:
			m.logger.Error("unknown content command", "command", fmt.Sprintf("%T", c))
		}
	}
	return steps
}

func (m *Model) translateDetails(cmds []details.Command) []step {
	var steps []step
	for _, c := range cmds {
		switch c := c.(type) {
		case details.Update:
			steps = append(steps, run(m.updateTask(c.Task))...)
		case details.Rename:
			steps = append(steps, dispatch(ContentMsg{Msg: content.RenameMsg{ID: c.ID, Title: c.Title}})...)
		case details.PriorityActivate:
			steps = append(steps, dispatch(ContentMsg{Msg: content.SetPriorityMsg{ID: c.ID, Priority: c.Priority}})...)
		case details.Complete:
			steps = append(steps, dispatch(ContentMsg{Msg: content.CompleteMsg{ID: c.ID, Completed: c.Completed}})...)
		case details.Favorite:
			steps = append(steps, dispatch(ContentMsg{Msg: content.FavoriteMsg{ID: c.ID, Favorite: c.Favorite}})...)
		case details.Delete:
			if m.contextPage == ContextTaskDetails {
				m.showContext = false
			}
			steps = append(steps, dispatch(ContentMsg{Msg: content.DeleteMsg{ID: c.ID}})...)
		default:
			m.logger.Error("unknown details command", "command", fmt.Sprintf("%T", c))
		}
	}
	return steps
}

// dropDetails clears the details buffer and hides its panel when the task
// it holds matches stale. Details edits persist through Content, so the
// buffer must never outlive Content's copy of the task.
func (m *Model) dropDetails(stale func(model.Task) bool) {
	task, ok := m.details.Task()
	if !ok || !stale(task) {
		return
	}
	m.details.Clear()
	if m.contextPage == ContextTaskDetails {
		m.showContext = false
	}
}

func (m *Model) updateTask(task model.Task) effect.Command {
	return effect.UpdateTask{
		Task: task,
		Then: func(task model.Task) tea.Msg { return ContentMsg{Msg: content.TaskUpdatedMsg{Task: task}} },
	}
}

func (m *Model) pushDialog(page dialog.Page) {
	m.dialogs.Push(page)
	m.syncDialogInput()
}

func (m *Model) popDialog() (dialog.Page, bool) {
	page, ok := m.dialogs.Pop()
	m.syncDialogInput()
	return page, ok
}

// syncDialogInput mirrors the front page into the dialog text input.
func (m *Model) syncDialogInput() {
	front, ok := m.dialogs.Front()
	if !ok || !front.Editable() {
		m.dialogInput.Blur()
		m.dialogInput.SetValue("")
		return
	}
	if m.dialogInput.Value() != front.Text() {
		m.dialogInput.SetValue(front.Text())
		m.dialogInput.CursorEnd()
	}
	m.dialogInput.Focus()
}

// setStatus shows text and schedules its removal.
func (m *Model) setStatus(text string, isError bool) []step {
	seq := m.Status.seq + 1
	m.Status = StatusBar{Text: text, IsError: isError, seq: seq}
	return run(effect.After{Delay: statusTTL, Msg: ClearStatusMsg{Seq: seq}})
}
