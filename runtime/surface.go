package runtime

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the cell grid a host renders into.
type Surface interface {
	Size() (width, height int)
	SetCell(x, y int, r rune, style tcell.Style)
	Clear()
	Show()
}

// EventSource is implemented by surfaces that produce input events.
// PollEvent blocks; ok is false once the source is closed.
// A nil message with ok set means the event had no mapping.
type EventSource interface {
	PollEvent() (msg Message, ok bool)
}

// MemoryCell is one cell of a MemorySurface.
type MemoryCell struct {
	Rune  rune
	Style tcell.Style
}

// MemorySurface is an in-memory surface for tests and headless rendering.
type MemorySurface struct {
	width, height int
	cells         []MemoryCell
	shows         int
}

// NewMemorySurface creates a blank surface of the given size.
func NewMemorySurface(width, height int) *MemorySurface {
	m := &MemorySurface{}
	m.Resize(width, height)
	return m
}

// Resize changes the surface dimensions and clears it.
func (m *MemorySurface) Resize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.cells = make([]MemoryCell, m.width*m.height)
	m.Clear()
}

// Size returns the surface dimensions.
func (m *MemorySurface) Size() (int, int) {
	return m.width, m.height
}

// SetCell writes a rune. Wide runes also claim the following cell.
func (m *MemorySurface) SetCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.cells[y*m.width+x] = MemoryCell{Rune: r, Style: style}
	if runewidth.RuneWidth(r) == 2 && x+1 < m.width {
		m.cells[y*m.width+x+1] = MemoryCell{Style: style}
	}
}

// Cell returns the cell at (x, y).
func (m *MemorySurface) Cell(x, y int) MemoryCell {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return MemoryCell{}
	}
	return m.cells[y*m.width+x]
}

// Clear blanks every cell.
func (m *MemorySurface) Clear() {
	for i := range m.cells {
		m.cells[i] = MemoryCell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// Show counts frames; a memory surface has nothing to flush.
func (m *MemorySurface) Show() {
	m.shows++
}

// Shows returns how many frames were presented.
func (m *MemorySurface) Shows() int {
	return m.shows
}

// Row returns the text of row y with trailing spaces trimmed.
func (m *MemorySurface) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	var b strings.Builder
	for _, cell := range m.cells[y*m.width : (y+1)*m.width] {
		if cell.Rune == 0 {
			continue
		}
		b.WriteRune(cell.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}
