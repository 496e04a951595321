package runtime

import "github.com/gdamore/tcell/v2"

// Message represents an event flowing into the host loop.
// Messages come from terminal input, tasks, or other goroutines via Do.
type Message interface {
	isMessage()
}

// KeyMsg represents a keyboard input event.
type KeyMsg struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

func (KeyMsg) isMessage() {}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// InvalidateMsg requests a render pass.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}

// QuitMsg stops the host loop.
type QuitMsg struct{}

func (QuitMsg) isMessage() {}

// callMsg runs fn on the loop goroutine.
type callMsg struct {
	fn func()
}

func (callMsg) isMessage() {}
