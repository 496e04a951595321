package runtime

import (
	"slices"
	"testing"

	"github.com/odvcencio/furry-atom/state"
)

type valueView[T any] struct {
	probe
	atom state.Atom[T]
	seen []T
}

func (v *valueView[T]) Render(ctx RenderContext) {
	v.renders++
	v.seen = append(v.seen, UseValue(ctx.Hooks, v.atom))
}

func (v *valueView[T]) last() T {
	return v.seen[len(v.seen)-1]
}

func TestUseValue_MountUpdateUnmount(t *testing.T) {
	atom := state.CreateState([]int{})
	store := atom.(state.Store[[]int])
	before := store.SubscriberCount()
	view := &valueView[[]int]{atom: atom}
	host := newTestHost(view)

	host.Settle()
	if got := store.SubscriberCount(); got != before+1 {
		t.Fatalf("expected one subscription after mount, got %d", got)
	}

	atom.Update(func(d *[]int) { *d = append(*d, 1) })
	if !host.Dirty() {
		t.Fatalf("expected atom change to request a render")
	}
	host.Settle()
	if got := view.last(); !slices.Equal(got, []int{1}) {
		t.Fatalf("expected component to observe [1], got %v", got)
	}

	host.SetRoot(nil)
	host.Settle()
	if got := store.SubscriberCount(); got != before {
		t.Fatalf("expected subscriber count back to %d after unmount, got %d", before, got)
	}

	renders := view.renders
	atom.Update(func(d *[]int) { *d = append(*d, 2) })
	if host.Dirty() {
		t.Fatalf("expected no render request after unmount")
	}
	host.Settle()
	if view.renders != renders {
		t.Fatalf("expected unmounted component to stay idle, got %d extra renders", view.renders-renders)
	}
}

func TestUseValue_SwitchAtom(t *testing.T) {
	atom1 := state.CreateState(1)
	atom2 := state.CreateState(10)
	store1 := atom1.(state.Store[int])
	store2 := atom2.(state.Store[int])
	view := &valueView[int]{atom: atom1}
	host := newTestHost(view)
	host.Settle()

	view.atom = atom2
	host.Invalidate()
	host.Settle()

	if store1.SubscriberCount() != 0 {
		t.Fatalf("expected atom1 to be unsubscribed, got %d", store1.SubscriberCount())
	}
	if store2.SubscriberCount() != 1 {
		t.Fatalf("expected atom2 to be subscribed, got %d", store2.SubscriberCount())
	}
	if view.last() != 10 {
		t.Fatalf("expected value from atom2, got %d", view.last())
	}

	atom1.Set(2)
	if host.Dirty() {
		t.Fatalf("expected atom1 changes to be ignored")
	}

	atom2.Set(11)
	host.Settle()
	if view.last() != 11 {
		t.Fatalf("expected atom2 change to render, got %d", view.last())
	}
}

func TestUseValue_ChangeBeforeCommit(t *testing.T) {
	atom := state.CreateState("first")
	view := &valueView[string]{atom: atom}
	changed := false
	mutator := &probe{render: func(ctx RenderContext) {
		if !changed {
			changed = true
			atom.Set("second")
		}
	}}
	host := newTestHost(&probe{children: []Component{view, mutator}})

	host.Settle()
	if view.seen[0] != "first" {
		t.Fatalf("expected first render to see initial value, got %q", view.seen[0])
	}
	if view.last() != "second" {
		t.Fatalf("expected commit re-read to pick up change, got %q", view.last())
	}
}

func TestUseValue_TwoComponentsShareAtom(t *testing.T) {
	atom := state.CreateState(0)
	store := atom.(state.Store[int])
	a := &valueView[int]{atom: atom}
	b := &valueView[int]{atom: atom}
	root := &probe{children: []Component{a, b}}
	host := newTestHost(root)
	host.Settle()

	if store.SubscriberCount() != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", store.SubscriberCount())
	}

	root.children = []Component{a}
	host.Invalidate()
	host.Settle()
	if store.SubscriberCount() != 1 {
		t.Fatalf("expected removed component to unsubscribe, got %d", store.SubscriberCount())
	}

	atom.Set(5)
	host.Settle()
	if a.last() != 5 || b.last() != 0 {
		t.Fatalf("expected a=5 b=0, got a=%d b=%d", a.last(), b.last())
	}
}

type plainAtom struct {
	value int
}

func (p *plainAtom) Get() int                      { return p.value }
func (p *plainAtom) Set(v int)                     { p.value = v }
func (p *plainAtom) Update(recipe func(draft *int)) { recipe(&p.value) }

func TestUseValue_AtomWithoutStore(t *testing.T) {
	atom := &plainAtom{value: 3}
	view := &valueView[int]{atom: atom}
	host := newTestHost(view)
	host.Settle()

	atom.Set(4)
	if host.Dirty() {
		t.Fatalf("expected plain atom to be unobserved")
	}
	host.Invalidate()
	host.Settle()
	if view.last() != 4 {
		t.Fatalf("expected re-render to read the atom, got %d", view.last())
	}
}

func TestUseValue_NilAtom(t *testing.T) {
	view := &valueView[string]{}
	host := newTestHost(view)
	host.Settle()
	if view.last() != "" {
		t.Fatalf("expected zero value for nil atom, got %q", view.last())
	}
}

func TestUseValue_SwitchToNilAtom(t *testing.T) {
	atom := state.CreateState("from atom")
	store := atom.(state.Store[string])
	view := &valueView[string]{atom: atom}
	host := newTestHost(view)
	host.Settle()

	view.atom = nil
	host.Invalidate()
	host.Settle()

	if store.SubscriberCount() != 0 {
		t.Fatalf("expected old atom to be unsubscribed, got %d", store.SubscriberCount())
	}
	if view.last() != "" {
		t.Fatalf("expected zero value after switching to nil atom, got %q", view.last())
	}
}

func TestWatch(t *testing.T) {
	atom := state.CreateState("a")
	host := newTestHost(nil)
	var seen []string

	if !Watch(host, atom, func(v string) { seen = append(seen, v) }) {
		t.Fatalf("expected watch to succeed")
	}
	atom.Set("b")
	if err := host.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	atom.Set("c")

	if !slices.Equal(seen, []string{"b"}) {
		t.Fatalf("expected only [b], got %v", seen)
	}
	if Watch[int](host, &plainAtom{}, func(int) {}) {
		t.Fatalf("expected watch on plain atom to fail")
	}
}
