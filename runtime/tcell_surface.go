package runtime

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellSurface renders into a tcell screen.
type TcellSurface struct {
	screen tcell.Screen
}

// NewTcellSurface opens the controlling terminal.
func NewTcellSurface() (*TcellSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return WrapTcellScreen(screen)
}

// WrapTcellScreen initializes screen and wraps it.
// Pass a tcell.SimulationScreen for headless use.
func WrapTcellScreen(screen tcell.Screen) (*TcellSurface, error) {
	if screen == nil {
		return nil, errors.New("screen is required")
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	return &TcellSurface{screen: screen}, nil
}

// Screen returns the wrapped screen.
func (s *TcellSurface) Screen() tcell.Screen {
	return s.screen
}

// Size returns the screen dimensions.
func (s *TcellSurface) Size() (int, int) {
	return s.screen.Size()
}

// SetCell writes a rune into the back buffer.
func (s *TcellSurface) SetCell(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Clear blanks the back buffer.
func (s *TcellSurface) Clear() {
	s.screen.Clear()
}

// Show flushes the back buffer to the terminal.
func (s *TcellSurface) Show() {
	s.screen.Show()
}

// PollEvent waits for the next terminal event.
func (s *TcellSurface) PollEvent() (Message, bool) {
	ev := s.screen.PollEvent()
	switch e := ev.(type) {
	case nil:
		return nil, false
	case *tcell.EventKey:
		return KeyMsg{Key: e.Key(), Rune: e.Rune(), Mod: e.Modifiers()}, true
	case *tcell.EventResize:
		s.screen.Sync()
		w, h := e.Size()
		return ResizeMsg{Width: w, Height: h}, true
	default:
		return nil, true
	}
}

// Close restores the terminal.
func (s *TcellSurface) Close() error {
	s.screen.Fini()
	return nil
}
