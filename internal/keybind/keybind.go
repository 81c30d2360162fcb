// Package keybind maps key chords to application actions.
package keybind

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Modifiers uint8

const (
	Ctrl Modifiers = 1 << iota
	Alt
	Shift
)

func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

// KeyBind is a (modifier set, key) chord.
type KeyBind struct {
	Modifiers Modifiers
	Key       string
}

// Parse reads chords in bubbletea's key string form, e.g. "ctrl+alt+x".
// Modifier order does not matter; key case does.
func Parse(chord string) KeyBind {
	chord = strings.TrimSpace(chord)
	if chord == "+" || strings.HasSuffix(chord, "++") {
		// The key itself is "+".
		mods := parseModifiers(strings.TrimSuffix(strings.TrimSuffix(chord, "+"), "+"))
		return KeyBind{Modifiers: mods, Key: "+"}
	}
	parts := strings.Split(chord, "+")
	keyPart := parts[len(parts)-1]
	return KeyBind{
		Modifiers: parseModifiers(strings.Join(parts[:len(parts)-1], "+")),
		Key:       keyPart,
	}
}

func parseModifiers(raw string) Modifiers {
	var mods Modifiers
	if raw == "" {
		return mods
	}
	for _, part := range strings.Split(raw, "+") {
		switch strings.ToLower(part) {
		case "ctrl":
			mods |= Ctrl
		case "alt":
			mods |= Alt
		case "shift":
			mods |= Shift
		}
	}
	return mods
}

// FromKeyMsg converts a bubbletea key press into a chord.
func FromKeyMsg(msg tea.KeyMsg) KeyBind {
	return Parse(msg.String())
}

func (kb KeyBind) Matches(other KeyBind) bool {
	return kb.Modifiers == other.Modifiers && kb.Key == other.Key
}

// String renders the chord in canonical bubbletea form.
func (kb KeyBind) String() string {
	var b strings.Builder
	if kb.Modifiers.Has(Ctrl) {
		b.WriteString("ctrl+")
	}
	if kb.Modifiers.Has(Alt) {
		b.WriteString("alt+")
	}
	if kb.Modifiers.Has(Shift) {
		b.WriteString("shift+")
	}
	b.WriteString(kb.Key)
	return b.String()
}

type Action int

const (
	About Action = iota
	ItemDown
	ItemUp
	Settings
	WindowClose
	WindowNew
	NewList
	DeleteList
	RenameList
)

func (a Action) String() string {
	switch a {
	case About:
		return "about"
	case ItemDown:
		return "item down"
	case ItemUp:
		return "item up"
	case Settings:
		return "settings"
	case WindowClose:
		return "close window"
	case WindowNew:
		return "new window"
	case NewList:
		return "new list"
	case DeleteList:
		return "delete list"
	case RenameList:
		return "rename list"
	default:
		return "unknown"
	}
}

type Binding struct {
	KeyBind KeyBind
	Action  Action
}

// Table is scanned in order; the first matching chord wins.
type Table []Binding

func Default() Table {
	return Table{
		{KeyBind: Parse("ctrl+o"), Action: About},
		{KeyBind: Parse("down"), Action: ItemDown},
		{KeyBind: Parse("up"), Action: ItemUp},
		{KeyBind: Parse("ctrl+s"), Action: Settings},
		{KeyBind: Parse("ctrl+q"), Action: WindowClose},
		{KeyBind: Parse("ctrl+w"), Action: WindowNew},
		{KeyBind: Parse("ctrl+n"), Action: NewList},
		{KeyBind: Parse("ctrl+d"), Action: DeleteList},
		{KeyBind: Parse("ctrl+r"), Action: RenameList},
	}
}

func (t Table) Resolve(kb KeyBind) (Action, bool) {
	for _, b := range t {
		if b.KeyBind.Matches(kb) {
			return b.Action, true
		}
	}
	return 0, false
}

// Duplicates reports chords bound more than once. Only the first binding
// of each is reachable.
func (t Table) Duplicates() []KeyBind {
	seen := make(map[KeyBind]bool, len(t))
	var dups []KeyBind
	for _, b := range t {
		if seen[b.KeyBind] {
			dups = append(dups, b.KeyBind)
			continue
		}
		seen[b.KeyBind] = true
	}
	return dups
}

// HelpBindings returns one bubbles key binding per entry for the help view.
func (t Table) HelpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(t))
	for _, b := range t {
		chord := b.KeyBind.String()
		out = append(out, key.NewBinding(key.WithKeys(chord), key.WithHelp(chord, b.Action.String())))
	}
	return out
}
