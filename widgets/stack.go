package widgets

import "github.com/odvcencio/furry-atom/runtime"

// VStack lays out children top to bottom. Each child gets the height given
// to Add; a height of 0 takes the remaining rows.
type VStack struct {
	Base
	children []runtime.Component
	heights  []int
}

// NewVStack creates an empty stack.
func NewVStack() *VStack {
	return &VStack{}
}

// Add appends a child with a fixed height.
func (s *VStack) Add(child runtime.Component, height int) *VStack {
	if child == nil {
		return s
	}
	s.children = append(s.children, child)
	s.heights = append(s.heights, max(height, 0))
	return s
}

// Remove drops child from the stack. The host unmounts it on the next render.
func (s *VStack) Remove(child runtime.Component) bool {
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i:i], s.children[i+1:]...)
			s.heights = append(s.heights[:i:i], s.heights[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns the stacked components.
func (s *VStack) Children() []runtime.Component {
	return s.children
}

// Layout assigns each child a horizontal band of the bounds.
func (s *VStack) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	y := bounds.Y
	bottom := bounds.Y + bounds.Height
	for i, child := range s.children {
		height := s.heights[i]
		if height == 0 || y+height > bottom {
			height = bottom - y
		}
		child.Layout(runtime.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: max(height, 0)})
		y += max(height, 0)
	}
}

// Render draws nothing; children render themselves.
func (s *VStack) Render(ctx runtime.RenderContext) {}
