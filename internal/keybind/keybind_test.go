package keybind

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestParseModifiersInAnyOrder(t *testing.T) {
	a := Parse("ctrl+alt+x")
	b := Parse("alt+ctrl+x")
	if !a.Matches(b) {
		t.Fatalf("expected %v to match %v", a, b)
	}
	if !a.Modifiers.Has(Ctrl) || !a.Modifiers.Has(Alt) || a.Modifiers.Has(Shift) {
		t.Fatalf("unexpected modifiers: %b", a.Modifiers)
	}
	if a.Key != "x" || a.String() != "ctrl+alt+x" {
		t.Fatalf("unexpected chord: %q", a.String())
	}
}

func TestParsePlusKey(t *testing.T) {
	kb := Parse("ctrl++")
	if kb.Key != "+" || kb.Modifiers != Ctrl {
		t.Fatalf("unexpected chord: %#v", kb)
	}
}

func TestFromKeyMsg(t *testing.T) {
	kb := FromKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlN})
	if kb.Modifiers != Ctrl || kb.Key != "n" {
		t.Fatalf("unexpected chord: %#v", kb)
	}
	kb = FromKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	if kb.Modifiers != 0 || kb.Key != "down" {
		t.Fatalf("unexpected chord: %#v", kb)
	}
	kb = FromKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'N'}})
	if kb.Key != "N" {
		t.Fatalf("expected case preserved, got %#v", kb)
	}
}

func TestDefaultTableResolves(t *testing.T) {
	table := Default()
	cases := map[string]Action{
		"ctrl+o": About,
		"down":   ItemDown,
		"up":     ItemUp,
		"ctrl+s": Settings,
		"ctrl+q": WindowClose,
		"ctrl+w": WindowNew,
		"ctrl+n": NewList,
		"ctrl+d": DeleteList,
		"ctrl+r": RenameList,
	}
	for chord, want := range cases {
		got, ok := table.Resolve(Parse(chord))
		if !ok || got != want {
			t.Fatalf("%s: expected %v, got %v (ok=%v)", chord, want, got, ok)
		}
	}
	if _, ok := table.Resolve(Parse("ctrl+z")); ok {
		t.Fatal("expected unbound chord to be unmatched")
	}
	if dups := table.Duplicates(); len(dups) != 0 {
		t.Fatalf("expected no duplicate chords, got %v", dups)
	}
}

func TestResolveFirstMatchWinsAndIsDeterministic(t *testing.T) {
	table := Table{
		{KeyBind: Parse("ctrl+x"), Action: NewList},
		{KeyBind: Parse("ctrl+x"), Action: DeleteList},
	}
	for i := 0; i < 10; i++ {
		got, ok := table.Resolve(Parse("ctrl+x"))
		if !ok || got != NewList {
			t.Fatalf("expected first binding to win, got %v", got)
		}
	}
	if dups := table.Duplicates(); len(dups) != 1 || dups[0].String() != "ctrl+x" {
		t.Fatalf("expected duplicate reported, got %v", dups)
	}
}

func TestHelpBindings(t *testing.T) {
	bindings := Default().HelpBindings()
	if len(bindings) != len(Default()) {
		t.Fatalf("expected one help binding per entry, got %d", len(bindings))
	}
	if help := bindings[0].Help(); help.Key != "ctrl+o" || help.Desc != "about" {
		t.Fatalf("unexpected help: %#v", help)
	}
}
