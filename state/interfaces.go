package state

// Atom is the public capability of an observable value.
type Atom[T any] interface {
	Get() T
	Set(value T)
	Update(recipe func(draft *T))
}

// Store is the wider capability used by bindings to observe an atom.
// Obtain it with a type assertion on an Atom.
type Store[T any] interface {
	Atom[T]
	Subscribe(l *Listener[T])
	Unsubscribe(l *Listener[T])
	SubscriberCount() int
}

var _ Store[int] = (*atomValue[int])(nil)
