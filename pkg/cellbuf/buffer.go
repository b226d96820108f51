// Package cellbuf is a 2D grid of styled runes, the raster target for
// terminal wireframes.
//
// Each cell holds a rune and a StyleKey. The mapping from StyleKey to
// lipgloss.Style is supplied at render time, so a buffer carries no colors.
//
// All runes are assumed to be single-width.
package cellbuf

// StyleKey identifies a visual style.
type StyleKey int

// Cell is one styled character.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a W×H grid of cells, indexed [row][col].
type Buffer struct {
	W, H  int
	Cells [][]Cell
}

// New returns a buffer of spaces in defaultStyle. Negative sizes are
// clamped to zero.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(defaultStyle)
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Get returns the cell at (x, y).
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.Cells[y][x], true
}

// Set writes ch at (x, y). Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s left to right starting at (x, y), clipping at the
// buffer edge.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// Fill resets every cell to a space in style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// Count returns how many cells carry style.
func (b *Buffer) Count(style StyleKey) int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c.Style == style {
				n++
			}
		}
	}
	return n
}
