package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/commands"
	"github.com/sandeepkv93/done/internal/config"
	"github.com/sandeepkv93/done/internal/content"
	"github.com/sandeepkv93/done/internal/details"
	"github.com/sandeepkv93/done/internal/dialog"
)

func (m *Model) handlePaletteKey(msg tea.KeyMsg) []step {
	switch msg.String() {
	case "esc":
		m.closePalette()
		return nil
	case "enter":
		input := m.commandInput.Value()
		m.closePalette()
		return dispatch(PaletteSubmitMsg{Input: input})
	}
	m.commandInput, _ = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return nil
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

// executePaletteCommand translates a palette command into the messages the
// equivalent keyboard interaction would send.
func (m *Model) executePaletteCommand(raw string) []step {
	cmd, err := commands.Parse(strings.TrimSpace(raw))
	if err != nil {
		return m.setStatus(err.Error(), true)
	}

	var steps []step
	noSelection := &commands.CommandError{Code: commands.ErrCodeNoSelection, Message: "no list selected"}
	res, err := commands.Execute(cmd, commands.Handlers{
		New: func(a commands.NameArgs) (commands.Result, error) {
			if !m.dialogs.Empty() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "a dialog is already open"}
			}
			steps = dispatch(
				OpenNewListDialogMsg{},
				DialogUpdateMsg{Page: dialog.NewItem{Name: a.Name}},
				DialogCompleteMsg{},
			)
			return commands.Result{Message: fmt.Sprintf("creating list: %s", a.Name)}, nil
		},
		Rename: func(a commands.NameArgs) (commands.Result, error) {
			if m.selectedList == nil {
				return commands.Result{}, noSelection
			}
			if !m.dialogs.Empty() {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "a dialog is already open"}
			}
			from := m.selectedList.Name
			steps = dispatch(
				OpenRenameListDialogMsg{},
				DialogUpdateMsg{Page: dialog.RenameItem{From: from, To: a.Name}},
				DialogCompleteMsg{},
			)
			return commands.Result{Message: fmt.Sprintf("renaming %s to %s", from, a.Name)}, nil
		},
		Delete: func() (commands.Result, error) {
			if m.selectedList == nil {
				return commands.Result{}, noSelection
			}
			steps = dispatch(OpenDeleteListDialogMsg{})
			return commands.Result{Message: fmt.Sprintf("confirm deleting %s", m.selectedList.Name)}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			theme, err := config.ParseAppTheme(a.Theme)
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			steps = dispatch(AppThemeMsg{Theme: theme})
			return commands.Result{Message: fmt.Sprintf("theme: %s", theme.Label())}, nil
		},
		Add: func(a commands.AddArgs) (commands.Result, error) {
			if m.selectedList == nil {
				return commands.Result{}, noSelection
			}
			steps = dispatch(
				ContentMsg{Msg: content.InputMsg{Value: a.Title}},
				ContentMsg{Msg: content.AddTaskMsg{}},
			)
			return commands.Result{Message: fmt.Sprintf("added task: %s", a.Title)}, nil
		},
		Notes: func(a commands.NotesArgs) (commands.Result, error) {
			if _, ok := m.details.Task(); !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeNoSelection, Message: "no task open in details"}
			}
			steps = dispatch(DetailsMsg{Msg: details.SetNotesMsg{Notes: a.Notes}})
			return commands.Result{Message: "notes updated"}, nil
		},
		About: func() (commands.Result, error) {
			steps = dispatch(ToggleContextPageMsg{Page: ContextAbout})
			return commands.Result{}, nil
		},
		Settings: func() (commands.Result, error) {
			steps = dispatch(ToggleContextPageMsg{Page: ContextSettings})
			return commands.Result{}, nil
		},
	})
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	if res.Message != "" {
		steps = append(m.setStatus(res.Message, false), steps...)
	}
	return steps
}
