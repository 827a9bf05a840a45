package cave

// Sampler returns a noise value, nominally in [0, 1], at world coordinates.
type Sampler interface {
	Sample(x, y float64) float64
}

// BuildGrid samples every cell and marks it solid when the sample falls below
// threshold. With centerAtOrigin the grid spans [-width/2, width-width/2).
func BuildGrid(width, height int, centerAtOrigin bool, sampler Sampler, threshold float64) *Grid {
	startX, startY := 0, 0
	if centerAtOrigin {
		startX = -width / 2
		startY = -height / 2
	}

	g := NewGrid(width, height, startX, startY)
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			wx, wy := g.WorldCoords(ix, iy)
			g.cells[iy*width+ix] = sampler.Sample(float64(wx), float64(wy)) < threshold
		}
	}
	return g
}

// CarveCaves clears every solid cell whose sample falls below threshold and
// returns the number of cells cleared. Air is never turned solid.
func CarveCaves(g *Grid, sampler Sampler, threshold float64) int {
	carved := 0
	for iy := 0; iy < g.Height; iy++ {
		for ix := 0; ix < g.Width; ix++ {
			i := iy*g.Width + ix
			if !g.cells[i] {
				continue
			}
			wx, wy := g.WorldCoords(ix, iy)
			if sampler.Sample(float64(wx), float64(wy)) < threshold {
				g.cells[i] = false
				carved++
			}
		}
	}
	return carved
}
