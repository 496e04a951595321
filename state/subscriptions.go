package state

// Subscriptions tracks and clears multiple unsubscribe callbacks.
type Subscriptions struct {
	unsubs []func()
}

// Add registers an unsubscribe callback.
func (s *Subscriptions) Add(unsub func()) {
	if s == nil || unsub == nil {
		return
	}
	s.unsubs = append(s.unsubs, unsub)
}

// Len returns the number of tracked subscriptions.
func (s *Subscriptions) Len() int {
	if s == nil {
		return 0
	}
	return len(s.unsubs)
}

// Clear unsubscribes all tracked callbacks.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	unsubs := s.unsubs
	s.unsubs = nil
	for _, unsub := range unsubs {
		unsub()
	}
}

// Observe subscribes l to atom and tracks the matching unsubscribe.
// It reports false when atom does not support subscriptions.
func Observe[T any](s *Subscriptions, atom Atom[T], l *Listener[T]) bool {
	if s == nil || atom == nil || l == nil {
		return false
	}
	store, ok := atom.(Store[T])
	if !ok {
		return false
	}
	store.Subscribe(l)
	s.Add(func() { store.Unsubscribe(l) })
	return true
}
