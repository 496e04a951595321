package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-atom/runtime"
	"github.com/odvcencio/furry-atom/scroll"
	"github.com/odvcencio/furry-atom/state"
)

// AtomList renders a slice atom one item per row.
type AtomList[T any] struct {
	Base
	items         state.Atom[[]T]
	format        func(T) string
	offset        int
	selected      int
	followTail    bool
	style         tcell.Style
	selectedStyle tcell.Style
	visible       []string
}

// NewAtomList creates a list bound to items.
func NewAtomList[T any](items state.Atom[[]T], format func(T) string) *AtomList[T] {
	return &AtomList[T]{
		items:         items,
		format:        format,
		selected:      -1,
		style:         tcell.StyleDefault,
		selectedStyle: tcell.StyleDefault.Reverse(true),
	}
}

// SetFollowTail keeps the last item in view as the list grows.
func (l *AtomList[T]) SetFollowTail(follow bool) {
	l.followTail = follow
}

// SetSelected highlights the item at index; -1 clears the selection.
func (l *AtomList[T]) SetSelected(index int) {
	l.selected = index
}

// ScrollBy moves the view by delta rows. The offset is clamped on render.
func (l *AtomList[T]) ScrollBy(delta int) {
	l.offset += delta
}

// Offset returns the scroll offset used by the last render.
func (l *AtomList[T]) Offset() int {
	return l.offset
}

// Visible returns the rows drawn by the last render.
func (l *AtomList[T]) Visible() []string {
	return l.visible
}

// Render draws the visible window of items.
func (l *AtomList[T]) Render(ctx runtime.RenderContext) {
	items := runtime.UseValue(ctx.Hooks, l.items)
	bounds := ctx.Bounds
	index := scroll.FixedHeightIndex{Height: 1, Count: len(items)}
	if l.followTail {
		l.offset = index.MaxOffset(bounds.Height)
	}
	l.offset = index.ClampOffset(l.offset, bounds.Height)

	l.visible = l.visible[:0]
	first, last := index.Window(l.offset, bounds.Height)
	for i := first; i < last; i++ {
		text := l.text(items[i])
		l.visible = append(l.visible, text)
		style := l.style
		if i == l.selected {
			style = l.selectedStyle
		}
		ctx.SetString(bounds.X, bounds.Y+i-first, truncateString(text, bounds.Width), style)
	}
}

func (l *AtomList[T]) text(item T) string {
	if l.format == nil {
		return ""
	}
	return l.format(item)
}
