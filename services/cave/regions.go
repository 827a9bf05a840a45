package cave

import (
	"math"
	"sort"
)

// Cell is an integer grid coordinate.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Region is a maximal set of air cells connected by 4-neighbour steps.
type Region struct {
	Cells    []Cell
	Centroid Cell
}

func (r Region) Area() int {
	return len(r.Cells)
}

// up, right, down, left
var fourNeighbours = [4]Cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// FindRegions flood-fills the air cells of g. Seeds are taken in row-major
// order and each region's cells are listed in breadth-first visit order.
func FindRegions(g *Grid) []Region {
	visited := make([]bool, g.Width*g.Height)
	var regions []Region

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := y*g.Width + x
			if g.cells[i] || visited[i] {
				continue
			}
			regions = append(regions, floodFill(g, visited, Cell{x, y}))
		}
	}
	return regions
}

func floodFill(g *Grid, visited []bool, start Cell) Region {
	visited[start.Y*g.Width+start.X] = true
	queue := []Cell{start}
	sumX, sumY := 0, 0

	for head := 0; head < len(queue); head++ {
		c := queue[head]
		sumX += c.X
		sumY += c.Y
		for _, d := range fourNeighbours {
			nx, ny := c.X+d.X, c.Y+d.Y
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := ny*g.Width + nx
			if g.cells[ni] || visited[ni] {
				continue
			}
			visited[ni] = true
			queue = append(queue, Cell{nx, ny})
		}
	}

	n := float64(len(queue))
	return Region{
		Cells: queue,
		Centroid: Cell{
			X: int(math.Round(float64(sumX) / n)),
			Y: int(math.Round(float64(sumY) / n)),
		},
	}
}

// SortRegions orders regions by descending area. Equal areas keep their
// discovery order.
func SortRegions(regions []Region) {
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Area() > regions[j].Area()
	})
}
