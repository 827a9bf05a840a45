package cave

import (
	"math"
)

const (
	pivotMin = 0.3
	pivotMax = 0.7
)

// CorridorRandom is the part of the generation stream corridors draw from.
type CorridorRandom interface {
	FloatRange(min, max float64) float64
	Bool() bool
}

// CorridorOptions controls ConnectRegions.
type CorridorOptions struct {
	ConnectAll bool
	HalfWidth  int
	HalfHeight int
}

// ConnectRegions links every region to the largest one with an elbow
// corridor and returns the number of corridors carved. Regions are recomputed
// from g first. Corridor ends sit on a member cell of each region: the
// centroid when it is air in that region, otherwise the nearest member, so a
// concave region whose centroid lies outside it still gets joined. Nothing is
// drawn from rng unless at least two regions exist and opts.ConnectAll is set.
func ConnectRegions(g *Grid, rng CorridorRandom, opts CorridorOptions) int {
	if !opts.ConnectAll {
		return 0
	}

	regions := FindRegions(g)
	if len(regions) < 2 {
		return 0
	}
	SortRegions(regions)

	target := anchorCell(regions[0])
	for _, r := range regions[1:] {
		carveCorridor(g, rng, anchorCell(r), target, opts.HalfWidth, opts.HalfHeight)
	}
	return len(regions) - 1
}

// anchorCell is the region's centroid when that is a member cell, otherwise
// the member nearest to it. Ties go to the earliest visited cell.
func anchorCell(r Region) Cell {
	best := r.Cells[0]
	bestDist := math.MaxInt
	for _, c := range r.Cells {
		dx, dy := c.X-r.Centroid.X, c.Y-r.Centroid.Y
		d := dx*dx + dy*dy
		if d == 0 {
			return c
		}
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// carveCorridor clears an elbow path from a to b through a jittered pivot.
// Draw order is tX, tY, then the orientation flag.
func carveCorridor(g *Grid, rng CorridorRandom, a, b Cell, halfWidth, halfHeight int) {
	tX := rng.FloatRange(pivotMin, pivotMax)
	tY := rng.FloatRange(pivotMin, pivotMax)
	pivot := Cell{
		X: int(math.Round(lerp(float64(a.X), float64(b.X), tX))),
		Y: int(math.Round(lerp(float64(a.Y), float64(b.Y), tY))),
	}
	horizontalFirst := rng.Bool()

	var path [5]Cell
	if horizontalFirst {
		path = [5]Cell{a, {pivot.X, a.Y}, pivot, {b.X, pivot.Y}, b}
	} else {
		path = [5]Cell{a, {a.X, pivot.Y}, pivot, {pivot.X, b.Y}, b}
	}
	for i := 0; i < len(path)-1; i++ {
		carveSegment(g, path[i], path[i+1], halfWidth, halfHeight)
	}
}

// carveSegment walks from one cell to another in unit steps, x first, and
// clears a box around every cell it visits, endpoints included.
func carveSegment(g *Grid, from, to Cell, halfWidth, halfHeight int) {
	c := from
	carveBox(g, c, halfWidth, halfHeight)
	for c.X != to.X {
		c.X += sign(to.X - c.X)
		carveBox(g, c, halfWidth, halfHeight)
	}
	for c.Y != to.Y {
		c.Y += sign(to.Y - c.Y)
		carveBox(g, c, halfWidth, halfHeight)
	}
}

// carveBox clears the rectangle centred on c, clamped to the grid.
func carveBox(g *Grid, c Cell, halfWidth, halfHeight int) {
	x0, x1 := max(c.X-halfWidth, 0), min(c.X+halfWidth, g.Width-1)
	y0, y1 := max(c.Y-halfHeight, 0), min(c.Y+halfHeight, g.Height-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.cells[y*g.Width+x] = false
		}
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
