package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/content"
	"github.com/sandeepkv93/done/internal/details"
	"github.com/sandeepkv93/done/internal/effect"
	"github.com/sandeepkv93/done/internal/keybind"
)

// actionMsg maps a bound action to the message it dispatches.
func actionMsg(a keybind.Action) tea.Msg {
	switch a {
	case keybind.About:
		return ToggleContextPageMsg{Page: ContextAbout}
	case keybind.ItemDown:
		return ContentMsg{Msg: content.ItemDownMsg{}}
	case keybind.ItemUp:
		return ContentMsg{Msg: content.ItemUpMsg{}}
	case keybind.Settings:
		return ToggleContextPageMsg{Page: ContextSettings}
	case keybind.WindowClose:
		return WindowCloseMsg{}
	case keybind.WindowNew:
		return WindowNewMsg{}
	case keybind.NewList:
		return OpenNewListDialogMsg{}
	case keybind.DeleteList:
		return OpenDeleteListDialogMsg{}
	case keybind.RenameList:
		return OpenRenameListDialogMsg{}
	default:
		return nil
	}
}

// handleKey routes a key press: focused inputs first, then the binding
// table, then the visible panel.
func (m *Model) handleKey(key tea.KeyMsg) []step {
	keyStr := key.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return run(effect.Quit{})
	}
	if m.Palette.Active {
		return m.handlePaletteKey(key)
	}
	if !m.dialogs.Empty() {
		return m.handleDialogKey(key)
	}
	if m.content.Focused() {
		return dispatch(ContentMsg{Msg: content.KeyMsg{Key: key}})
	}
	if m.detailsVisible() && m.details.Editing() {
		return dispatch(DetailsMsg{Msg: details.KeyMsg{Key: key}})
	}

	switch keyStr {
	case "esc":
		return dispatch(EscapeMsg{})
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return nil
	case "?":
		m.HelpVisible = !m.HelpVisible
		return nil
	}

	if action, ok := m.keys.Resolve(keybind.FromKeyMsg(key)); ok {
		if msg := actionMsg(action); msg != nil {
			return dispatch(msg)
		}
		return nil
	}

	switch keyStr {
	case "tab":
		if id, ok := m.nav.Next(m.nav.ActiveID()); ok {
			return dispatch(NavSelectMsg{Entity: id})
		}
		return nil
	case "shift+tab":
		if id, ok := m.nav.Prev(m.nav.ActiveID()); ok {
			return dispatch(NavSelectMsg{Entity: id})
		}
		return nil
	}

	if m.showContext {
		switch m.contextPage {
		case ContextAbout:
			switch keyStr {
			case "o":
				return dispatch(LaunchURLMsg{URL: RepositoryURL})
			case "c":
				if url := m.build.CommitURL(); url != "" {
					return dispatch(LaunchURLMsg{URL: url})
				}
				return nil
			}
		case ContextSettings:
			if keyStr == "t" {
				return dispatch(AppThemeMsg{Theme: m.config.AppTheme.Next()})
			}
		case ContextTaskDetails:
			if m.details.Handles(key) {
				return dispatch(DetailsMsg{Msg: details.KeyMsg{Key: key}})
			}
		}
	}

	return dispatch(ContentMsg{Msg: content.KeyMsg{Key: key}})
}

func (m *Model) handleDialogKey(key tea.KeyMsg) []step {
	front, _ := m.dialogs.Front()
	switch key.String() {
	case "esc":
		return dispatch(EscapeMsg{})
	case "enter":
		return dispatch(DialogCompleteMsg{})
	}
	if !front.Editable() {
		switch key.String() {
		case "y":
			return dispatch(DialogCompleteMsg{})
		case "n":
			return dispatch(DialogCancelMsg{})
		}
		return nil
	}

	m.dialogInput, _ = m.dialogInput.Update(key)
	if m.dialogInput.Value() == front.Text() {
		return nil
	}
	return dispatch(DialogUpdateMsg{Page: front.WithText(m.dialogInput.Value())})
}

func (m *Model) detailsVisible() bool {
	return m.showContext && m.contextPage == ContextTaskDetails
}
