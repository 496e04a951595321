package widgets

import (
	"github.com/odvcencio/furry-atom/runtime"
)

func newHost(root runtime.Component, width, height int) (*runtime.Host, *runtime.MemorySurface) {
	surface := runtime.NewMemorySurface(width, height)
	host := runtime.NewHost(runtime.HostConfig{Surface: surface, Root: root})
	host.Settle()
	return host, surface
}

func rows(surface *runtime.MemorySurface) []string {
	_, height := surface.Size()
	out := make([]string, height)
	for y := range out {
		out[y] = surface.Row(y)
	}
	return out
}
