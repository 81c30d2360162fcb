// Package dialog holds the modal prompt queue. Only the front page is
// interactive.
package dialog

import "errors"

// ErrNoDialog is the panic value of Replace on an empty stack.
var ErrNoDialog = errors.New("dialog: no dialog open")

// Page is one of NewItem, RenameItem or DeleteItem.
type Page interface {
	isPage()
	// Title is the dialog heading.
	Title() string
	// Text is the editable value, empty for pages without one.
	Text() string
	// WithText returns a copy with the editable value replaced.
	WithText(string) Page
	Editable() bool
}

type NewItem struct {
	Name string
}

type RenameItem struct {
	From string
	To   string
}

type DeleteItem struct {
	Name string
}

func (NewItem) isPage()    {}
func (RenameItem) isPage() {}
func (DeleteItem) isPage() {}

func (NewItem) Title() string    { return "Create a new list" }
func (RenameItem) Title() string { return "Rename list" }
func (DeleteItem) Title() string { return "Delete list" }

func (p NewItem) Text() string    { return p.Name }
func (p RenameItem) Text() string { return p.To }
func (DeleteItem) Text() string   { return "" }

func (p NewItem) WithText(s string) Page {
	p.Name = s
	return p
}

func (p RenameItem) WithText(s string) Page {
	p.To = s
	return p
}

func (p DeleteItem) WithText(string) Page { return p }

func (NewItem) Editable() bool    { return true }
func (RenameItem) Editable() bool { return true }
func (DeleteItem) Editable() bool { return false }

// Stack is a FIFO queue: Push appends, Front and Pop work on index 0.
type Stack struct {
	pages []Page
}

func (s *Stack) Push(p Page) {
	s.pages = append(s.pages, p)
}

func (s *Stack) Front() (Page, bool) {
	if len(s.pages) == 0 {
		return nil, false
	}
	return s.pages[0], true
}

// Pop removes the front page. It is a no-op on an empty stack.
func (s *Stack) Pop() (Page, bool) {
	if len(s.pages) == 0 {
		return nil, false
	}
	front := s.pages[0]
	s.pages = s.pages[1:]
	return front, true
}

// Replace swaps the front page. Callers must only send edits while a
// dialog is open; an empty stack panics with ErrNoDialog.
func (s *Stack) Replace(p Page) {
	if len(s.pages) == 0 {
		panic(ErrNoDialog)
	}
	s.pages[0] = p
}

func (s *Stack) Len() int {
	return len(s.pages)
}

func (s *Stack) Empty() bool {
	return len(s.pages) == 0
}
