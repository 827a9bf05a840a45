package cave

import (
	"fmt"
	"strings"
)

const (
	SolidGlyph = '#'
	AirGlyph   = '.'
)

// Grid is a dense row-major boolean map. true is solid ground, false is air.
// StartX and StartY map cell indices back to world coordinates.
type Grid struct {
	Width  int
	Height int
	StartX int
	StartY int
	cells  []bool
}

// NewGrid creates an all-air grid.
func NewGrid(width, height, startX, startY int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		StartX: startX,
		StartY: startY,
		cells:  make([]bool, width*height),
	}
}

// GridFromRows parses rows of '#' (solid) and '.' (air).
func GridFromRows(rows []string, startX, startY int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}
	width := len(rows[0])
	g := NewGrid(width, len(rows), startX, startY)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, want %d", y, len(row), width)
		}
		for x := 0; x < width; x++ {
			switch row[x] {
			case SolidGlyph:
				g.Set(x, y, true)
			case AirGlyph:
			default:
				return nil, fmt.Errorf("unexpected glyph %q at (%d, %d)", row[x], x, y)
			}
		}
	}
	return g, nil
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Solid reports whether (x, y) is ground. Cells outside the grid count as solid.
func (g *Grid) Solid(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.cells[y*g.Width+x]
}

// Set writes a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, solid bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.Width+x] = solid
}

// Fill sets every cell to the same state.
func (g *Grid) Fill(solid bool) {
	for i := range g.cells {
		g.cells[i] = solid
	}
}

func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]bool, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

// Equal compares dimensions, origin and every cell.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.Width != other.Width || g.Height != other.Height || g.StartX != other.StartX || g.StartY != other.StartY {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) SolidCount() int {
	n := 0
	for _, solid := range g.cells {
		if solid {
			n++
		}
	}
	return n
}

func (g *Grid) AirCount() int {
	return len(g.cells) - g.SolidCount()
}

// WorldCoords converts a cell index into world coordinates.
func (g *Grid) WorldCoords(x, y int) (int, int) {
	return g.StartX + x, g.StartY + y
}

// Rows renders the grid as one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		b.Reset()
		b.Grow(g.Width)
		for x := 0; x < g.Width; x++ {
			if g.cells[y*g.Width+x] {
				b.WriteByte(SolidGlyph)
			} else {
				b.WriteByte(AirGlyph)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Pack encodes the cells as a bitset, row-major, least significant bit first.
func (g *Grid) Pack() []byte {
	out := make([]byte, packedLen(g.Width, g.Height))
	for i, solid := range g.cells {
		if solid {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

// UnpackGrid is the inverse of Pack.
func UnpackGrid(width, height, startX, startY int, data []byte) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	if want := packedLen(width, height); len(data) != want {
		return nil, fmt.Errorf("packed grid is %d bytes, want %d", len(data), want)
	}
	g := NewGrid(width, height, startX, startY)
	for i := range g.cells {
		g.cells[i] = data[i/8]&(1<<(i%8)) != 0
	}
	return g, nil
}

func packedLen(width, height int) int {
	return (width*height + 7) / 8
}
