package runtime

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/furry-atom/state"
)

// Hooks holds the per-component state that survives re-renders.
// Hook functions must be called in the same order on every render.
type Hooks struct {
	id       ulid.ULID
	host     *Host
	effects  state.Scheduler
	slots    []any
	cursor   int
	rendered bool
	mounted  bool
}

func newHooks(host *Host, effects state.Scheduler) *Hooks {
	return &Hooks{id: ulid.Make(), host: host, effects: effects, mounted: true}
}

// ID returns the identifier of the mounted component instance.
func (h *Hooks) ID() ulid.ULID {
	return h.id
}

// Mounted reports whether the component is still mounted.
func (h *Hooks) Mounted() bool {
	return h != nil && h.mounted
}

func (h *Hooks) begin() {
	h.cursor = 0
}

func (h *Hooks) end() {
	if h.rendered && h.cursor != len(h.slots) {
		panic(fmt.Sprintf("runtime: component rendered %d hooks, previously %d", h.cursor, len(h.slots)))
	}
	h.rendered = true
}

func (h *Hooks) invalidate() {
	if !h.Mounted() || h.host == nil {
		return
	}
	h.host.markDirty()
}

func (h *Hooks) schedule(fn func()) {
	if h.effects == nil {
		return
	}
	h.effects.Schedule(fn)
}

// release runs every effect cleanup in declaration order. Each cleanup is
// deferred so one panicking cleanup does not skip the rest.
func (h *Hooks) release() {
	if !h.mounted {
		return
	}
	h.mounted = false
	for i := len(h.slots) - 1; i >= 0; i-- {
		if e, ok := h.slots[i].(*effectSlot); ok {
			defer e.runCleanup()
		}
	}
}

func useSlot[S any](h *Hooks, init func() S) S {
	if h.cursor < len(h.slots) {
		slot, ok := h.slots[h.cursor].(S)
		if !ok {
			panic(fmt.Sprintf("runtime: hook %d changed kind between renders", h.cursor))
		}
		h.cursor++
		return slot
	}
	if h.rendered {
		panic(fmt.Sprintf("runtime: hook %d added after first render", h.cursor))
	}
	slot := init()
	h.slots = append(h.slots, slot)
	h.cursor++
	return slot
}

type stateSlot[T any] struct {
	value T
	set   func(T)
}

// UseState returns a local value and its setter. The setter is stable across
// renders; setting a value that is state.Same as the current one does nothing,
// otherwise the component is scheduled for re-render.
func UseState[T any](h *Hooks, initial T) (T, func(T)) {
	slot := useSlot(h, func() *stateSlot[T] {
		s := &stateSlot[T]{value: initial}
		s.set = func(value T) {
			if !h.Mounted() || state.Same(s.value, value) {
				return
			}
			s.value = value
			h.invalidate()
		}
		return s
	})
	return slot.value, slot.set
}

type refSlot[T any] struct {
	value T
}

// UseRef returns storage that lives as long as the component.
// init runs on the first render only.
func UseRef[T any](h *Hooks, init func() T) *T {
	slot := useSlot(h, func() *refSlot[T] {
		s := &refSlot[T]{}
		if init != nil {
			s.value = init()
		}
		return s
	})
	return &slot.value
}

type effectSlot struct {
	deps    []any
	ran     bool
	cleanup func()
}

func (e *effectSlot) runCleanup() {
	cleanup := e.cleanup
	e.cleanup = nil
	if cleanup != nil {
		cleanup()
	}
}

// UseEffect runs effect after the render is committed.
//
// With nil deps the effect runs after every render. Otherwise it runs after
// the first render and again whenever a dependency is not state.Same as its
// previous value. The cleanup returned by the previous run is called before
// each re-run and when the component unmounts.
func UseEffect(h *Hooks, effect func() func(), deps []any) {
	slot := useSlot(h, func() *effectSlot { return &effectSlot{} })
	if effect == nil {
		return
	}
	if slot.ran && deps != nil && depsSame(slot.deps, deps) {
		return
	}
	slot.ran = true
	if deps != nil {
		slot.deps = append(slot.deps[:0:0], deps...)
	}
	h.schedule(func() {
		if !h.Mounted() {
			return
		}
		slot.runCleanup()
		slot.cleanup = effect()
	})
}

func depsSame(prev, next []any) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !state.Same(prev[i], next[i]) {
			return false
		}
	}
	return true
}
