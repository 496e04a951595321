package runtime

// probe is a minimal component for tests.
type probe struct {
	bounds   Rect
	children []Component
	render   func(ctx RenderContext)
	renders  int
}

func (p *probe) Layout(bounds Rect) {
	p.bounds = bounds
	for _, child := range p.children {
		child.Layout(bounds)
	}
}

func (p *probe) Bounds() Rect { return p.bounds }

func (p *probe) Render(ctx RenderContext) {
	p.renders++
	if p.render != nil {
		p.render(ctx)
	}
}

func (p *probe) Children() []Component { return p.children }

func newTestHost(root Component) *Host {
	return NewHost(HostConfig{Surface: NewMemorySurface(20, 4), Root: root})
}
