package cave

import (
	"fmt"
	"io"
)

//go:generate mockgen -source=painter.go -destination=../../internal/testmocks/cave/mock_painter.go -package=mockcave

// GridPainter receives a finished grid and draws it somewhere. It must treat
// the grid as read-only.
type GridPainter interface {
	Paint(g *Grid) error
}

// TextPainter writes the grid as rows of '#' and '.' to an io.Writer.
type TextPainter struct {
	w io.Writer
}

func NewTextPainter(w io.Writer) *TextPainter {
	return &TextPainter{w: w}
}

func (p *TextPainter) Paint(g *Grid) error {
	for _, row := range g.Rows() {
		if _, err := fmt.Fprintln(p.w, row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
