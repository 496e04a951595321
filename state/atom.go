// Package state provides a minimal observable value cell for terminal UIs.
//
// An atom is not safe for concurrent use. It is meant to be read and written
// from the goroutine that drives the UI; other goroutines should hand work to
// that goroutine (see runtime.Host.Do).
package state

import "slices"

// Listener receives the atom value after each change.
// Listeners are matched by pointer, so keep the pointer to unsubscribe.
type Listener[T any] struct {
	fn func(T)
}

// NewListener wraps fn in a listener handle.
func NewListener[T any](fn func(T)) *Listener[T] {
	return &Listener[T]{fn: fn}
}

// Notify calls the wrapped function.
func (l *Listener[T]) Notify(value T) {
	if l == nil || l.fn == nil {
		return
	}
	l.fn(value)
}

type atomValue[T any] struct {
	value     T
	listeners []*Listener[T]
}

// CreateState creates an atom holding initial.
func CreateState[T any](initial T) Atom[T] {
	return &atomValue[T]{value: initial}
}

// Get returns the current value.
func (a *atomValue[T]) Get() T {
	return a.value
}

// Set replaces the value and notifies listeners unless value is the same
// as the current one. Sameness is identity, not deep equality; see Same.
func (a *atomValue[T]) Set(value T) {
	if Same(a.value, value) {
		return
	}
	a.value = value
	a.notifyChanged()
}

// Update applies recipe to a copy of the current value and sets the result.
// The previous value is left untouched.
func (a *atomValue[T]) Update(recipe func(draft *T)) {
	if recipe == nil {
		return
	}
	draft := Draft(a.value)
	recipe(&draft)
	a.Set(draft)
}

// Subscribe appends l. The same listener may be added more than once.
func (a *atomValue[T]) Subscribe(l *Listener[T]) {
	if l == nil {
		return
	}
	a.listeners = append(a.listeners, l)
}

// Unsubscribe removes the first occurrence of l.
func (a *atomValue[T]) Unsubscribe(l *Listener[T]) {
	if idx := slices.Index(a.listeners, l); idx != -1 {
		a.listeners = slices.Delete(a.listeners, idx, idx+1)
	}
}

// SubscriberCount returns the number of registered listeners.
func (a *atomValue[T]) SubscriberCount() int {
	return len(a.listeners)
}

// notifyChanged walks a snapshot of the listeners so that subscribing or
// unsubscribing from inside a listener only affects later passes.
// A panicking listener stops the pass; the new value stays committed.
func (a *atomValue[T]) notifyChanged() {
	listeners := slices.Clone(a.listeners)
	for _, l := range listeners {
		l.Notify(a.value)
	}
}
