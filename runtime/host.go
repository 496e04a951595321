package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/odvcencio/furry-atom/state"
)

// maxSettlePasses bounds Settle when effects keep invalidating.
const maxSettlePasses = 16

// KeyHandler handles a key message. Return true if a render is needed.
type KeyHandler func(host *Host, msg KeyMsg) bool

// HostConfig configures a Host.
type HostConfig struct {
	Surface       Surface
	Root          Component
	Logger        *slog.Logger
	MessageBuffer int
	KeyHandler    KeyHandler
}

// Host owns a component tree, its hooks, and the loop that renders it.
//
// Rendering, hooks and atoms are single-threaded: touch them only from the
// goroutine running Run, or before Run starts. Other goroutines use Do.
type Host struct {
	surface     Surface
	root        Component
	logger      *slog.Logger
	keyHandler  KeyHandler
	messages    chan Message
	hooks       map[Component]*Hooks
	tree        []Component
	effects     *state.Queue
	invalidator *Invalidator
	watchers    state.Subscriptions
	taskCtx     context.Context
	taskCancel  context.CancelFunc
	pendingMu   sync.Mutex
	pendingTask []Task

	running bool
	dirty   bool
	frames  int
}

// NewHost creates a host from config.
func NewHost(cfg HostConfig) *Host {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &Host{
		surface:    cfg.Surface,
		root:       cfg.Root,
		logger:     logger,
		keyHandler: cfg.KeyHandler,
		messages:   make(chan Message, bufferSize),
		hooks:      make(map[Component]*Hooks),
		effects:    state.NewQueue(),
		dirty:      true,
	}
	h.invalidator = NewInvalidator(h.Post)
	return h
}

// Surface returns the surface the host renders into.
func (h *Host) Surface() Surface {
	return h.surface
}

// Root returns the root component.
func (h *Host) Root() Component {
	return h.root
}

// SetRoot unmounts the current tree and schedules root for mounting.
func (h *Host) SetRoot(root Component) {
	if root == h.root {
		return
	}
	h.unmountAll()
	h.root = root
	h.markDirty()
}

// HooksFor returns the hooks of a mounted component.
func (h *Host) HooksFor(c Component) (*Hooks, bool) {
	hooks, ok := h.hooks[c]
	return hooks, ok
}

// Dirty reports whether a render pass is pending.
func (h *Host) Dirty() bool {
	return h.dirty
}

// Frames returns the number of completed render passes.
func (h *Host) Frames() int {
	return h.frames
}

// Invalidate requests a render pass.
func (h *Host) Invalidate() {
	h.markDirty()
}

func (h *Host) markDirty() {
	h.dirty = true
	h.invalidator.Invalidate()
}

// Render runs one pass: layout, render in tree order, present, unmount
// components that left the tree, then run post-commit effects.
func (h *Host) Render() {
	h.invalidator.resetPending()
	h.dirty = false

	var bounds Rect
	if h.surface != nil {
		w, ht := h.surface.Size()
		bounds = Rect{Width: w, Height: ht}
	}
	if h.root != nil {
		h.root.Layout(bounds)
	}
	tree := Flatten(h.root)

	var mounted []Component
	for _, c := range tree {
		if _, ok := h.hooks[c]; ok {
			continue
		}
		hooks := newHooks(h, h.effects)
		h.hooks[c] = hooks
		mounted = append(mounted, c)
		h.logger.Debug("mount component", "id", hooks.ID().String(), "type", fmt.Sprintf("%T", c))
	}

	if h.surface != nil {
		h.surface.Clear()
	}
	for _, c := range tree {
		hooks := h.hooks[c]
		hooks.begin()
		c.Render(RenderContext{Hooks: hooks, Surface: h.surface, Bounds: c.Bounds()})
		hooks.end()
	}
	if h.surface != nil {
		h.surface.Show()
	}

	live := make(map[Component]struct{}, len(tree))
	for _, c := range tree {
		live[c] = struct{}{}
	}
	for i := len(h.tree) - 1; i >= 0; i-- {
		if _, ok := live[h.tree[i]]; !ok {
			h.unmount(h.tree[i])
		}
	}
	h.tree = tree
	h.frames++

	for _, c := range mounted {
		mountComponent(c)
	}
	h.effects.Flush()
}

// Settle renders until no pass is pending and returns the number of passes.
func (h *Host) Settle() int {
	passes := 0
	for passes == 0 || (h.dirty && passes < maxSettlePasses) {
		h.Render()
		passes++
	}
	if h.dirty {
		h.logger.Warn("render did not settle", "passes", passes)
	}
	return passes
}

func (h *Host) unmount(c Component) {
	hooks, ok := h.hooks[c]
	if !ok {
		return
	}
	delete(h.hooks, c)
	hooks.release()
	unmountComponent(c)
	h.logger.Debug("unmount component", "id", hooks.ID().String(), "type", fmt.Sprintf("%T", c))
}

func (h *Host) unmountAll() {
	for i := len(h.tree) - 1; i >= 0; i-- {
		h.unmount(h.tree[i])
	}
	h.tree = nil
}

// Post sends a message to the loop without blocking.
func (h *Host) Post(msg Message) bool {
	if h == nil || h.messages == nil || msg == nil {
		return false
	}
	select {
	case h.messages <- msg:
		return true
	default:
		return false
	}
}

// Do runs fn on the loop goroutine.
func (h *Host) Do(fn func()) bool {
	if fn == nil {
		return false
	}
	return h.Post(callMsg{fn: fn})
}

// Quit asks the loop to stop.
func (h *Host) Quit() {
	h.Post(QuitMsg{})
}

// Spawn starts a task under the host task context.
// Tasks spawned before Run wait for it to start.
func (h *Host) Spawn(task Task) {
	if task.Run == nil {
		return
	}
	h.pendingMu.Lock()
	if h.taskCtx == nil {
		h.pendingTask = append(h.pendingTask, task)
		h.pendingMu.Unlock()
		return
	}
	ctx := h.taskCtx
	h.pendingMu.Unlock()
	go task.Run(ctx, h.Do)
}

// After runs fn on the loop after delay.
func (h *Host) After(delay time.Duration, fn func()) {
	h.Spawn(After(delay, fn))
}

// Every runs fn on the loop at a fixed interval.
func (h *Host) Every(interval time.Duration, fn func(time.Time)) {
	h.Spawn(Every(interval, fn))
}

// Run processes messages and renders until Quit or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	if h.surface == nil {
		return errors.New("surface is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, taskCancel := context.WithCancel(ctx)
	defer taskCancel()

	h.pendingMu.Lock()
	h.taskCtx = taskCtx
	h.taskCancel = taskCancel
	pending := h.pendingTask
	h.pendingTask = nil
	h.pendingMu.Unlock()
	defer func() {
		h.pendingMu.Lock()
		h.taskCtx = nil
		h.taskCancel = nil
		h.pendingMu.Unlock()
	}()
	for _, task := range pending {
		go task.Run(taskCtx, h.Do)
	}

	if src, ok := h.surface.(EventSource); ok {
		go h.pollEvents(taskCtx, src)
	}

	h.running = true
	h.Settle()
	for h.running {
		select {
		case <-ctx.Done():
			h.running = false
		case msg := <-h.messages:
			h.handle(msg)
		}
		if h.running && h.dirty {
			h.Render()
		}
	}
	return ctx.Err()
}

func (h *Host) handle(msg Message) {
	switch m := msg.(type) {
	case InvalidateMsg:
		h.dirty = true
	case ResizeMsg:
		h.dirty = true
	case KeyMsg:
		if h.keyHandler != nil && h.keyHandler(h, m) {
			h.dirty = true
		}
	case callMsg:
		m.fn()
	case QuitMsg:
		h.running = false
		h.cancelTasks()
	}
}

func (h *Host) pollEvents(ctx context.Context, src EventSource) {
	for ctx.Err() == nil {
		msg, ok := src.PollEvent()
		if !ok {
			return
		}
		if msg != nil {
			h.Post(msg)
		}
	}
}

func (h *Host) cancelTasks() {
	h.pendingMu.Lock()
	cancel := h.taskCancel
	h.pendingMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Close unmounts the tree, drops watchers and closes the surface if it
// supports closing.
func (h *Host) Close() error {
	h.cancelTasks()
	h.unmountAll()
	h.watchers.Clear()
	if closer, ok := h.surface.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close surface: %w", err)
		}
	}
	return nil
}
