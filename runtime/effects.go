package runtime

import (
	"context"
	"time"
)

// DoFunc hands fn to the host loop goroutine.
// It returns false when the message queue is full.
type DoFunc func(fn func()) bool

// Task runs work in a background goroutine.
// Use the context for cancellation and do to touch atoms or hooks.
type Task struct {
	Run func(ctx context.Context, do DoFunc)
}

// After runs fn on the host loop after a delay.
func After(delay time.Duration, fn func()) Task {
	return Task{
		Run: func(ctx context.Context, do DoFunc) {
			if fn == nil || do == nil {
				return
			}
			if delay <= 0 {
				do(fn)
				return
			}
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
			case <-timer.C:
				do(fn)
			}
		},
	}
}

// Every runs fn on the host loop at a fixed interval.
func Every(interval time.Duration, fn func(time.Time)) Task {
	return Task{
		Run: func(ctx context.Context, do DoFunc) {
			if interval <= 0 || fn == nil || do == nil {
				return
			}
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case now := <-ticker.C:
					do(func() { fn(now) })
				}
			}
		},
	}
}
