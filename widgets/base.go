// Package widgets provides components that render atoms.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-atom/runtime"
)

// Alignment controls horizontal text placement.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Base stores the bounds assigned by the parent.
// Embed it in widget structs to get Layout and Bounds.
type Base struct {
	bounds runtime.Rect
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	if b == nil {
		return
	}
	b.bounds = bounds
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	if b == nil {
		return runtime.Rect{}
	}
	return b.bounds
}

// truncateString truncates a string to fit within maxWidth.
// Adds "..." if truncated.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// alignedX returns the column where text of the given width starts.
func alignedX(bounds runtime.Rect, width int, align Alignment) int {
	switch align {
	case AlignCenter:
		return bounds.X + max(bounds.Width-width, 0)/2
	case AlignRight:
		return bounds.X + max(bounds.Width-width, 0)
	default:
		return bounds.X
	}
}
