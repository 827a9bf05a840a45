package cave

const (
	solidSurvivalNeighbours = 4
	airFillNeighbours       = 5
)

// Smooth applies one cellular-automaton pass and returns a new grid.
// A solid cell stays solid with at least four solid neighbours; an air cell
// turns solid with at least five. Neighbours outside the grid count as solid.
// All counts are read from g, which is left untouched.
func Smooth(g *Grid) *Grid {
	out := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			n := solidNeighbours(g, x, y)
			if g.cells[y*g.Width+x] {
				out.cells[y*g.Width+x] = n >= solidSurvivalNeighbours
			} else {
				out.cells[y*g.Width+x] = n >= airFillNeighbours
			}
		}
	}
	return out
}

func solidNeighbours(g *Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Solid(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}
