package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is a single drawable cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a cell compositor the field renderer draws into before the
// frame is flushed to the screen in one pass. Row-major: cells[y*width+x]
type Buffer struct {
	cells  []Cell
	width  int
	height int
	fill   Cell
}

// NewBuffer creates a buffer with the specified dimensions and fill cell
func NewBuffer(width, height int, fill Cell) *Buffer {
	b := &Buffer{fill: fill}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height
func (b *Buffer) Height() int { return b.height }

// Resize adjusts buffer dimensions, reallocating only when capacity is
// insufficient, and clears to the fill cell
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the fill cell using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.fill
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, silently dropping out-of-bounds writes
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (x, y); the fill cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.fill
	}
	return b.cells[y*b.width+x]
}

// WriteString writes a run of cells left to right starting at (x, y)
func (b *Buffer) WriteString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		b.Set(x+i, y, r, style)
	}
}

// Flush copies the buffer onto a screen region at the given origin
func (b *Buffer) Flush(screen tcell.Screen, originX, originY int) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(originX+x, originY+y, c.Rune, nil, c.Style)
		}
	}
}
