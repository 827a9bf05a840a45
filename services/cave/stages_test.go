package cave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleFunc adapts a plain function to Sampler.
type sampleFunc func(x, y float64) float64

func (f sampleFunc) Sample(x, y float64) float64 { return f(x, y) }

func TestBuildGrid(t *testing.T) {
	byX := sampleFunc(func(x, y float64) float64 { return x })

	tests := []struct {
		name       string
		width      int
		height     int
		centered   bool
		threshold  float64
		wantStartX int
		wantStartY int
		wantRows   []string
	}{
		{
			name:  "centered even width",
			width: 4, height: 3, centered: true, threshold: 0,
			wantStartX: -2, wantStartY: -1,
			wantRows: []string{"##..", "##..", "##.."},
		},
		{
			name:  "centered odd width truncates",
			width: 5, height: 2, centered: true, threshold: 1,
			wantStartX: -2, wantStartY: -1,
			wantRows: []string{"###..", "###.."},
		},
		{
			name:  "not centered",
			width: 4, height: 2, centered: false, threshold: 2,
			wantStartX: 0, wantStartY: 0,
			wantRows: []string{"##..", "##.."},
		},
		{
			name:  "threshold below every sample is all air",
			width: 4, height: 2, centered: false, threshold: -10,
			wantRows: []string{"....", "...."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildGrid(tt.width, tt.height, tt.centered, byX, tt.threshold)
			assert.Equal(t, tt.width, g.Width)
			assert.Equal(t, tt.height, g.Height)
			assert.Equal(t, tt.wantStartX, g.StartX)
			assert.Equal(t, tt.wantStartY, g.StartY)
			assert.Equal(t, tt.wantRows, g.Rows())
		})
	}
}

func TestCarveCaves(t *testing.T) {
	g := mustGrid(t,
		"####",
		"####",
		"####",
		"###.",
	)
	byX := sampleFunc(func(x, y float64) float64 { return x })

	carved := CarveCaves(g, byX, 2)

	assert.Equal(t, 8, carved)
	assert.Equal(t, []string{
		"..##",
		"..##",
		"..##",
		"..#.",
	}, g.Rows())
}

func TestSmooth(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "all air gains solid corners",
			in:   []string{".....", ".....", ".....", ".....", "....."},
			want: []string{"#...#", ".....", ".....", ".....", "#...#"},
		},
		{
			name: "all solid stays solid",
			in:   []string{"####", "####", "####", "####"},
			want: []string{"####", "####", "####", "####"},
		},
		{
			name: "isolated solid cell erodes",
			in:   []string{".....", ".....", "..#..", ".....", "....."},
			want: []string{"#...#", ".....", ".....", ".....", "#...#"},
		},
		{
			name: "single air hole fills",
			in:   []string{"#####", "#####", "##.##", "#####", "#####"},
			want: []string{"#####", "#####", "#####", "#####", "#####"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mustGrid(t, tt.in...)
			out := Smooth(in)
			assert.Equal(t, tt.want, out.Rows())
			assert.Equal(t, tt.in, in.Rows(), "input grid must not be modified")
		})
	}
}

func TestSmooth_IsNotIdempotent(t *testing.T) {
	g := mustGrid(t,
		"#######",
		"#######",
		"##...##",
		"##...##",
		"##...##",
		"#######",
		"#######",
	)

	once := Smooth(g)
	twice := Smooth(once)

	assert.Equal(t, []string{
		"#######",
		"#######",
		"###.###",
		"##...##",
		"###.###",
		"#######",
		"#######",
	}, once.Rows())
	assert.Equal(t, 1, twice.AirCount())
	assert.False(t, once.Equal(twice), "a second pass keeps changing the grid")
}

func TestFindRegions(t *testing.T) {
	g := mustGrid(t,
		"..#..",
		"..#..",
		"#####",
		"....#",
	)

	regions := FindRegions(g)
	require.Len(t, regions, 3)

	assert.ElementsMatch(t, []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, regions[0].Cells)
	assert.Equal(t, Cell{1, 1}, regions[0].Centroid)

	assert.ElementsMatch(t, []Cell{{3, 0}, {4, 0}, {3, 1}, {4, 1}}, regions[1].Cells)
	assert.Equal(t, Cell{4, 1}, regions[1].Centroid)

	assert.ElementsMatch(t, []Cell{{0, 3}, {1, 3}, {2, 3}, {3, 3}}, regions[2].Cells)
	assert.Equal(t, Cell{2, 3}, regions[2].Centroid)
}

func TestFindRegions_IgnoresDiagonals(t *testing.T) {
	g := mustGrid(t,
		".#",
		"#.",
	)
	assert.Len(t, FindRegions(g), 2)
}

func TestFindRegions_Empty(t *testing.T) {
	g := mustGrid(t, "###", "###")
	assert.Empty(t, FindRegions(g))
}

func TestFindRegions_NonConvexCentroid(t *testing.T) {
	g := mustGrid(t,
		".#.",
		".#.",
		"...",
	)

	regions := FindRegions(g)
	require.Len(t, regions, 1)

	r := regions[0]
	assert.Equal(t, []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}, r.Cells)
	assert.Equal(t, Cell{1, 1}, r.Centroid)
	assert.True(t, g.Solid(r.Centroid.X, r.Centroid.Y), "centroid of a U lies on rock")
	assert.Equal(t, Cell{0, 1}, anchorCell(r))
}

func TestSortRegions(t *testing.T) {
	regions := []Region{
		{Cells: make([]Cell, 1), Centroid: Cell{0, 0}},
		{Cells: make([]Cell, 3), Centroid: Cell{1, 0}},
		{Cells: make([]Cell, 3), Centroid: Cell{2, 0}},
		{Cells: make([]Cell, 2), Centroid: Cell{3, 0}},
	}

	SortRegions(regions)

	var order []int
	for _, r := range regions {
		order = append(order, r.Centroid.X)
	}
	assert.Equal(t, []int{1, 2, 3, 0}, order)
}

func TestPruneRegions(t *testing.T) {
	rows := []string{
		"...#.",
		"...#.",
		"#####",
		".#...",
	}

	tests := []struct {
		name       string
		minArea    int
		wantKept   int
		wantFilled int
		wantRows   []string
	}{
		{name: "zero is a no-op", minArea: 0, wantKept: 4, wantFilled: 0, wantRows: rows},
		{name: "keeps regions at the threshold", minArea: 1, wantKept: 4, wantFilled: 0, wantRows: rows},
		{
			name: "drops small regions", minArea: 3, wantKept: 2, wantFilled: 3,
			wantRows: []string{"...##", "...##", "#####", "##..."},
		},
		{
			name: "drops everything", minArea: 100, wantKept: 0, wantFilled: 12,
			wantRows: []string{"#####", "#####", "#####", "#####"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, rows...)
			regions := FindRegions(g)
			SortRegions(regions)

			kept, filled := PruneRegions(g, regions, tt.minArea)

			assert.Len(t, kept, tt.wantKept)
			assert.Equal(t, tt.wantFilled, filled)
			assert.Equal(t, tt.wantRows, g.Rows())
			for _, r := range FindRegions(g) {
				assert.GreaterOrEqual(t, r.Area(), tt.minArea)
			}
		})
	}
}

func TestPruneRegions_EmptyList(t *testing.T) {
	g := mustGrid(t, "###", "###")
	kept, filled := PruneRegions(g, nil, 5)
	assert.Empty(t, kept)
	assert.Zero(t, filled)
}
