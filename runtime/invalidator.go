package runtime

import "sync/atomic"

// Invalidator posts at most one pending InvalidateMsg at a time.
type Invalidator struct {
	post    func(Message) bool
	pending atomic.Bool
}

// NewInvalidator creates an invalidator wired to a post function.
func NewInvalidator(post func(Message) bool) *Invalidator {
	return &Invalidator{post: post}
}

// Invalidate requests a render pass. It reports whether a message was posted.
func (i *Invalidator) Invalidate() bool {
	if i == nil || i.post == nil {
		return false
	}
	if !i.pending.CompareAndSwap(false, true) {
		return false
	}
	if !i.post(InvalidateMsg{}) {
		i.pending.Store(false)
		return false
	}
	return true
}

// Pending reports whether a request is waiting for a render pass.
func (i *Invalidator) Pending() bool {
	return i != nil && i.pending.Load()
}

func (i *Invalidator) resetPending() {
	if i == nil {
		return
	}
	i.pending.Store(false)
}
