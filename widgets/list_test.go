package widgets

import (
	"slices"
	"testing"

	"github.com/odvcencio/furry-atom/state"
)

func identity(s string) string { return s }

func TestAtomList_FollowTail(t *testing.T) {
	atom := state.CreateState([]string{"a", "b", "c", "d"})
	list := NewAtomList(atom, identity)
	list.SetFollowTail(true)
	host, surface := newHost(list, 5, 2)

	if got := list.Visible(); !slices.Equal(got, []string{"c", "d"}) {
		t.Fatalf("expected tail [c d], got %v", got)
	}

	atom.Update(func(items *[]string) { *items = append(*items, "e") })
	host.Settle()
	if got := rows(surface); !slices.Equal(got, []string{"d", "e"}) {
		t.Fatalf("expected rows [d e], got %v", got)
	}
	if got := atom.Get(); len(got) != 5 {
		t.Fatalf("expected 5 items, got %d", len(got))
	}
}

func TestAtomList_Scroll(t *testing.T) {
	atom := state.CreateState([]string{"a", "b", "c", "d"})
	list := NewAtomList(atom, identity)
	host, _ := newHost(list, 5, 2)

	list.ScrollBy(1)
	host.Invalidate()
	host.Settle()
	if got := list.Visible(); !slices.Equal(got, []string{"b", "c"}) {
		t.Fatalf("expected [b c], got %v", got)
	}

	list.ScrollBy(100)
	host.Invalidate()
	host.Settle()
	if list.Offset() != 2 {
		t.Fatalf("expected clamped offset 2, got %d", list.Offset())
	}
}

func TestAtomList_Selected(t *testing.T) {
	atom := state.CreateState([]string{"a", "b"})
	list := NewAtomList(atom, identity)
	list.SetSelected(1)
	_, surface := newHost(list, 3, 2)

	if cell := surface.Cell(0, 1); cell.Style != list.selectedStyle {
		t.Fatalf("expected selected row style")
	}
	if cell := surface.Cell(0, 0); cell.Style != list.style {
		t.Fatalf("expected plain row style")
	}
}
