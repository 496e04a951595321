package widgets

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-atom/runtime"
	"github.com/odvcencio/furry-atom/state"
)

// AtomText renders any atom through a format function, one line per "\n".
type AtomText[T any] struct {
	Base
	source state.Atom[T]
	format func(T) string
	style  tcell.Style
}

// NewAtomText creates a text widget. A nil format uses fmt's %v.
func NewAtomText[T any](source state.Atom[T], format func(T) string) *AtomText[T] {
	if format == nil {
		format = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	return &AtomText[T]{source: source, format: format, style: tcell.StyleDefault}
}

// SetStyle sets the text style.
func (t *AtomText[T]) SetStyle(style tcell.Style) {
	t.style = style
}

// Render draws the formatted value.
func (t *AtomText[T]) Render(ctx runtime.RenderContext) {
	value := runtime.UseValue(ctx.Hooks, t.source)
	bounds := ctx.Bounds
	for i, line := range strings.Split(t.format(value), "\n") {
		if i >= bounds.Height {
			break
		}
		ctx.SetString(bounds.X, bounds.Y+i, truncateString(line, bounds.Width), t.style)
	}
}
