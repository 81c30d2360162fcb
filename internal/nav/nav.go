// Package nav is the ordered list sidebar. At most one entry is active.
package nav

import "github.com/sandeepkv93/done/internal/model"

// EntityID identifies an entry for the lifetime of the model. Zero is never
// assigned.
type EntityID uint64

type Entry struct {
	ID    EntityID
	Label string
	Icon  string
	List  model.List
}

type Model struct {
	entries []Entry
	active  EntityID
	nextID  EntityID
}

func New() *Model {
	return &Model{}
}

// Insert appends an entry for list and returns its id. The entry is not
// activated.
func (m *Model) Insert(list model.List) EntityID {
	m.nextID++
	m.entries = append(m.entries, Entry{
		ID:    m.nextID,
		Label: list.Name,
		Icon:  list.Icon,
		List:  list,
	})
	return m.nextID
}

// Activate marks id active. Unknown ids leave the model unchanged.
func (m *Model) Activate(id EntityID) bool {
	if m.index(id) < 0 {
		return false
	}
	m.active = id
	return true
}

func (m *Model) Deactivate() {
	m.active = 0
}

func (m *Model) Active() (Entry, bool) {
	return m.Entry(m.active)
}

func (m *Model) ActiveID() EntityID {
	return m.active
}

func (m *Model) Entry(id EntityID) (Entry, bool) {
	i := m.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return m.entries[i], true
}

// Data returns the list attached to id.
func (m *Model) Data(id EntityID) (model.List, bool) {
	e, ok := m.Entry(id)
	return e.List, ok
}

// SetData replaces the list attached to id and refreshes its label and icon.
func (m *Model) SetData(id EntityID, list model.List) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	m.entries[i].List = list
	m.entries[i].Label = list.Name
	m.entries[i].Icon = list.Icon
	return true
}

// Remove deletes id. Removing the active entry leaves nothing active.
func (m *Model) Remove(id EntityID) bool {
	i := m.index(id)
	if i < 0 {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	if m.active == id {
		m.active = 0
	}
	return true
}

func (m *Model) FindByListID(listID string) (EntityID, bool) {
	for _, e := range m.entries {
		if e.List.ID == listID {
			return e.ID, true
		}
	}
	return 0, false
}

func (m *Model) First() (EntityID, bool) {
	if len(m.entries) == 0 {
		return 0, false
	}
	return m.entries[0].ID, true
}

func (m *Model) Last() (EntityID, bool) {
	if len(m.entries) == 0 {
		return 0, false
	}
	return m.entries[len(m.entries)-1].ID, true
}

// Next returns the entry after id, wrapping around. With no valid id it
// returns the first entry.
func (m *Model) Next(id EntityID) (EntityID, bool) {
	return m.step(id, 1)
}

// Prev returns the entry before id, wrapping around.
func (m *Model) Prev(id EntityID) (EntityID, bool) {
	return m.step(id, -1)
}

func (m *Model) step(id EntityID, delta int) (EntityID, bool) {
	if len(m.entries) == 0 {
		return 0, false
	}
	i := m.index(id)
	if i < 0 {
		return m.entries[0].ID, true
	}
	n := len(m.entries)
	return m.entries[((i+delta)%n+n)%n].ID, true
}

func (m *Model) Len() int {
	return len(m.entries)
}

// Entries returns a copy in display order.
func (m *Model) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

func (m *Model) index(id EntityID) int {
	if id == 0 {
		return -1
	}
	for i, e := range m.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
