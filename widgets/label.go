package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-atom/runtime"
	"github.com/odvcencio/furry-atom/state"
)

// AtomLabel is a one-line label bound to a string atom.
type AtomLabel struct {
	Base
	source    state.Atom[string]
	style     tcell.Style
	alignment Alignment
	text      string
}

// NewAtomLabel creates a label that follows source.
func NewAtomLabel(source state.Atom[string]) *AtomLabel {
	return &AtomLabel{
		source:    source,
		style:     tcell.StyleDefault,
		alignment: AlignLeft,
	}
}

// SetSource swaps the atom the label follows. The host moves the
// subscription on the next render.
func (l *AtomLabel) SetSource(source state.Atom[string]) {
	l.source = source
}

// Source returns the atom the label follows.
func (l *AtomLabel) Source() state.Atom[string] {
	return l.source
}

// Text returns the text drawn by the last render.
func (l *AtomLabel) Text() string {
	return l.text
}

// SetStyle sets the label style.
func (l *AtomLabel) SetStyle(style tcell.Style) {
	l.style = style
}

// SetAlignment sets text alignment.
func (l *AtomLabel) SetAlignment(align Alignment) {
	l.alignment = align
}

// Render draws the label.
func (l *AtomLabel) Render(ctx runtime.RenderContext) {
	l.text = runtime.UseValue(ctx.Hooks, l.source)
	bounds := ctx.Bounds
	if bounds.Empty() {
		return
	}
	text := truncateString(l.text, bounds.Width)
	x := alignedX(bounds, runewidth.StringWidth(text), l.alignment)
	ctx.SetString(x, bounds.Y, text, l.style)
}
