package runtime

import "github.com/odvcencio/furry-atom/state"

// UseValue returns the current value of atom and re-renders the component
// whenever the atom changes.
//
// The subscription is made after commit and released on unmount or when a
// different atom is passed. Atoms that do not implement state.Store are read
// on every render instead.
func UseValue[T any](h *Hooks, atom state.Atom[T]) T {
	var initial T
	if atom != nil {
		initial = atom.Get()
	}
	value, setValue := UseState(h, initial)
	listener := UseRef(h, func() *state.Listener[T] {
		return state.NewListener(setValue)
	})
	store, subscribable := atom.(state.Store[T])

	UseEffect(h, func() func() {
		if atom == nil {
			return nil
		}
		// The atom may have changed between render and commit.
		setValue(atom.Get())
		if !subscribable {
			return nil
		}
		store.Subscribe(*listener)
		return func() {
			store.Unsubscribe(*listener)
		}
	}, []any{atom})

	switch {
	case atom == nil:
		var zero T
		return zero
	case !subscribable:
		return atom.Get()
	}
	return value
}

// Watch calls fn after every change of atom until the host is closed.
// It reports false when atom cannot be observed.
func Watch[T any](host *Host, atom state.Atom[T], fn func(T)) bool {
	if host == nil || fn == nil {
		return false
	}
	if !state.Observe(&host.watchers, atom, state.NewListener(fn)) {
		return false
	}
	host.logger.Debug("watching atom", "watchers", host.watchers.Len())
	return true
}
