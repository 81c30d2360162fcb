package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/done/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.keys.HelpBindings()
	var plain []string
	for _, kb := range append(m.globalBindings(), m.panelBindings()...) {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

// globalBindings are the fixed keys outside the binding table.
func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "tab/shift+tab", Action: "next/previous list"},
		{Key: "j/k", Action: "move cursor"},
		{Key: "/", Action: "open command palette"},
		{Key: "esc", Action: "close dialog or panel"},
		{Key: "?", Action: "toggle help panel"},
		{Key: "ctrl+c", Action: "quit"},
	}
}

// panelBindings are the keys of whatever owns the main area right now.
func (m Model) panelBindings() []KeyBinding {
	if m.showContext {
		switch m.contextPage {
		case ContextAbout:
			return []KeyBinding{
				{Key: "o", Action: "open repository"},
				{Key: "c", Action: "open build commit"},
			}
		case ContextSettings:
			return []KeyBinding{{Key: "t", Action: "cycle theme"}}
		case ContextTaskDetails:
			if _, ok := m.details.Task(); ok {
				return []KeyBinding{
					{Key: "e", Action: "edit title"},
					{Key: "p", Action: "cycle priority"},
					{Key: "x", Action: "toggle done"},
					{Key: "f", Action: "toggle favorite"},
					{Key: "d", Action: "delete task"},
				}
			}
		}
	}
	if m.content.List() == nil {
		return nil
	}
	return []KeyBinding{
		{Key: "a", Action: "add task"},
		{Key: "enter", Action: "open task details"},
		{Key: "x", Action: "toggle done"},
		{Key: "f", Action: "toggle favorite"},
		{Key: "p", Action: "cycle priority"},
		{Key: "d", Action: "delete task"},
	}
}
