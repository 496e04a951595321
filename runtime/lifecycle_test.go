package runtime

import (
	"slices"
	"testing"
)

type lifecycleComponent struct {
	probe
	name   string
	events *[]string
}

func (c *lifecycleComponent) Mount() {
	*c.events = append(*c.events, "mount "+c.name)
}

func (c *lifecycleComponent) Unmount() {
	*c.events = append(*c.events, "unmount "+c.name)
}

func TestHost_LifecycleRoot(t *testing.T) {
	var events []string
	child := &lifecycleComponent{name: "child", events: &events}
	root := &lifecycleComponent{name: "root", events: &events}
	root.children = []Component{child}
	host := newTestHost(root)

	host.Settle()
	if !slices.Equal(events, []string{"mount root", "mount child"}) {
		t.Fatalf("unexpected mount events: %v", events)
	}

	events = events[:0]
	host.SetRoot(nil)
	if !slices.Equal(events, []string{"unmount child", "unmount root"}) {
		t.Fatalf("unexpected unmount events: %v", events)
	}
}

func TestHost_LifecycleRemovedChild(t *testing.T) {
	var events []string
	keep := &lifecycleComponent{name: "keep", events: &events}
	drop := &lifecycleComponent{name: "drop", events: &events}
	root := &probe{children: []Component{keep, drop}}
	host := newTestHost(root)
	host.Settle()

	events = events[:0]
	root.children = []Component{keep}
	host.Invalidate()
	host.Settle()

	if !slices.Equal(events, []string{"unmount drop"}) {
		t.Fatalf("expected only the removed child to unmount, got %v", events)
	}
	if _, ok := host.HooksFor(drop); ok {
		t.Fatalf("expected removed child hooks to be released")
	}
	if _, ok := host.HooksFor(keep); !ok {
		t.Fatalf("expected kept child to stay mounted")
	}
}

func TestFlatten(t *testing.T) {
	a, b, c := &probe{}, &probe{}, &probe{}
	b.children = []Component{c}
	root := &probe{children: []Component{a, b, nil}}

	got := Flatten(root)
	want := []Component{root, a, b, c}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected render order: %v", got)
	}
	if Flatten(nil) != nil {
		t.Fatalf("expected empty tree for nil root")
	}
}
