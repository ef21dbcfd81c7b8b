// Package display implements the 64x32 monochrome framebuffer.
package display

import "strings"

// Display dimensions in cells.
const (
	Width  = 64
	Height = 32
	Cells  = Width * Height
)

// Buffer holds one byte per display cell: 0 is off, 1 is on.
// Cell (x, y) is stored at index x + y*Width.
type Buffer [Cells]byte

// Pixel returns true if the cell at the given coordinates is on.
// Coordinates wrap around the display edges.
func (b *Buffer) Pixel(x, y int) bool {
	return b[index(x, y)] != 0
}

// Count returns the number of cells which are on.
func (b *Buffer) Count() int {
	var n int
	for _, v := range b {
		n += int(v)
	}
	return n
}

// String returns the buffer contents as rows of '#' and '.' characters.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b[x+y*Width] != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Display owns the framebuffer. Cells are only ever changed through
// Toggle and Clear, so collision detection stays consistent for every caller.
type Display struct {
	cells Buffer
}

// New creates a new, cleared display.
func New() *Display {
	return &Display{}
}

// Toggle flips the cell at the given coordinates.
// Coordinates wrap around the display edges.
// Returns true if the cell is off after the flip.
func (d *Display) Toggle(x, y int) bool {
	i := index(x, y)
	d.cells[i] ^= 1
	return d.cells[i] == 0
}

// Clear turns all cells off.
func (d *Display) Clear() {
	d.cells = Buffer{}
}

// Pixel returns true if the cell at the given coordinates is on.
func (d *Display) Pixel(x, y int) bool {
	return d.cells.Pixel(x, y)
}

// Snapshot returns a copy of the current display contents.
// Renderers running alongside the machine must use this rather than
// reading live state.
func (d *Display) Snapshot() Buffer {
	return d.cells
}

// index returns the linear cell index for the given, wrapped coordinates.
func index(x, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return x + y*Width
}
