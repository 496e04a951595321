package runtime

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Component is a unit of UI owned by a Host.
// Components key the host's hook table, so use pointer types.
type Component interface {
	Layout(bounds Rect)
	Bounds() Rect
	Render(ctx RenderContext)
}

// ChildProvider is implemented by components that contain other components.
// The host renders children after their parent.
type ChildProvider interface {
	Children() []Component
}

// RenderContext is passed to Component.Render.
type RenderContext struct {
	Hooks   *Hooks
	Surface Surface
	Bounds  Rect
}

// SetString draws s at (x, y), clipped to the context bounds.
// It returns the number of columns written.
func (c RenderContext) SetString(x, y int, s string, style tcell.Style) int {
	if c.Surface == nil || y < c.Bounds.Y || y >= c.Bounds.Y+c.Bounds.Height {
		return 0
	}
	right := c.Bounds.X + c.Bounds.Width
	start := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > right {
			break
		}
		if x >= c.Bounds.X {
			c.Surface.SetCell(x, y, r, style)
		}
		x += w
	}
	return x - start
}

// Fill paints every cell of the context bounds.
func (c RenderContext) Fill(r rune, style tcell.Style) {
	if c.Surface == nil {
		return
	}
	for y := c.Bounds.Y; y < c.Bounds.Y+c.Bounds.Height; y++ {
		for x := c.Bounds.X; x < c.Bounds.X+c.Bounds.Width; x++ {
			c.Surface.SetCell(x, y, r, style)
		}
	}
}
