package runtime

// Lifecycle is implemented by components that need mount/unmount hooks.
// Mount runs after the component's first commit; Unmount runs after its
// hook cleanups.
type Lifecycle interface {
	Mount()
	Unmount()
}

// Flatten returns root and its descendants in render order.
func Flatten(root Component) []Component {
	var out []Component
	flattenInto(root, &out)
	return out
}

func flattenInto(c Component, out *[]Component) {
	if c == nil {
		return
	}
	*out = append(*out, c)
	if children, ok := c.(ChildProvider); ok {
		for _, child := range children.Children() {
			flattenInto(child, out)
		}
	}
}

func mountComponent(c Component) {
	if m, ok := c.(Lifecycle); ok {
		m.Mount()
	}
}

func unmountComponent(c Component) {
	if m, ok := c.(Lifecycle); ok {
		m.Unmount()
	}
}
