package nav

import (
	"testing"

	"github.com/sandeepkv93/done/internal/model"
)

func TestInsertPreservesOrderAndDoesNotActivate(t *testing.T) {
	m := New()
	a := m.Insert(model.List{ID: "a", Name: "A"})
	b := m.Insert(model.List{ID: "b", Name: "B"})

	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}
	if first, _ := m.First(); first != a {
		t.Fatalf("expected first %d, got %d", a, first)
	}
	if last, _ := m.Last(); last != b {
		t.Fatalf("expected last %d, got %d", b, last)
	}
	if _, ok := m.Active(); ok {
		t.Fatal("expected no active entry after insert")
	}
}

func TestActivateSingleActive(t *testing.T) {
	m := New()
	a := m.Insert(model.List{ID: "a", Name: "A"})
	b := m.Insert(model.List{ID: "b", Name: "B"})

	m.Activate(a)
	m.Activate(b)
	active, ok := m.Active()
	if !ok || active.ID != b {
		t.Fatalf("expected %d active, got %#v", b, active)
	}
	if m.Activate(EntityID(99)) {
		t.Fatal("expected unknown id rejected")
	}
	if m.ActiveID() != b {
		t.Fatal("expected active unchanged after unknown id")
	}
}

func TestRemoveActiveClearsActive(t *testing.T) {
	m := New()
	a := m.Insert(model.List{ID: "a", Name: "A"})
	m.Activate(a)

	if !m.Remove(a) {
		t.Fatal("expected remove to succeed")
	}
	if _, ok := m.Active(); ok {
		t.Fatal("expected no active entry")
	}
	if m.Remove(a) {
		t.Fatal("expected second remove to fail")
	}
}

func TestSetDataUpdatesLabel(t *testing.T) {
	m := New()
	a := m.Insert(model.List{ID: "a", Name: "Old", Icon: "x"})
	m.SetData(a, model.List{ID: "a", Name: "New", Icon: "y"})

	e, _ := m.Entry(a)
	if e.Label != "New" || e.Icon != "y" || e.List.Name != "New" {
		t.Fatalf("unexpected entry: %#v", e)
	}
	if data, ok := m.Data(a); !ok || data.ID != "a" {
		t.Fatalf("unexpected data: %#v", data)
	}
}

func TestFindByListIDAndStepping(t *testing.T) {
	m := New()
	a := m.Insert(model.List{ID: "a"})
	b := m.Insert(model.List{ID: "b"})
	c := m.Insert(model.List{ID: "c"})

	if id, ok := m.FindByListID("b"); !ok || id != b {
		t.Fatalf("expected %d, got %d", b, id)
	}
	if _, ok := m.FindByListID("zzz"); ok {
		t.Fatal("expected unknown list id not found")
	}
	if next, _ := m.Next(c); next != a {
		t.Fatalf("expected wrap to %d, got %d", a, next)
	}
	if prev, _ := m.Prev(a); prev != c {
		t.Fatalf("expected wrap to %d, got %d", c, prev)
	}
	if next, _ := m.Next(0); next != a {
		t.Fatalf("expected first entry for unknown id, got %d", next)
	}
}
