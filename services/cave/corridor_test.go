package cave

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/caves/internal/testutil"
	"github.com/VoidMesh/caves/services/seed"
)

// scriptedRandom replays fixed values and records the order of draws.
type scriptedRandom struct {
	float float64
	bools []bool
	calls []string
}

func (s *scriptedRandom) FloatRange(min, max float64) float64 {
	s.calls = append(s.calls, fmt.Sprintf("float[%.1f,%.1f)", min, max))
	return s.float
}

func (s *scriptedRandom) Bool() bool {
	s.calls = append(s.calls, "bool")
	b := s.bools[0]
	if len(s.bools) > 1 {
		s.bools = s.bools[1:]
	}
	return b
}

func twoRegionGrid(t *testing.T) *Grid {
	return mustGrid(t,
		"#########",
		"#.#######",
		"#########",
		"######...",
		"#########",
	)
}

func TestConnectRegions_ElbowPath(t *testing.T) {
	tests := []struct {
		name            string
		horizontalFirst bool
		want            []string
	}{
		{
			name:            "horizontal first",
			horizontalFirst: true,
			want: []string{
				"#########",
				"#....####",
				"####....#",
				"######...",
				"#########",
			},
		},
		{
			name:            "vertical first",
			horizontalFirst: false,
			want: []string{
				"#########",
				"#.#######",
				"#....####",
				"####.....",
				"#########",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := twoRegionGrid(t)
			rng := &scriptedRandom{float: 0.5, bools: []bool{tt.horizontalFirst}}

			n := ConnectRegions(g, rng, CorridorOptions{ConnectAll: true})

			assert.Equal(t, 1, n)
			assert.Equal(t, tt.want, g.Rows())
			assert.Len(t, FindRegions(g), 1)
		})
	}
}

func TestConnectRegions_DrawOrder(t *testing.T) {
	g := mustGrid(t,
		".#######",
		"########",
		"###..###",
		"###..###",
		"########",
		"#######.",
	)
	rng := &scriptedRandom{float: 0.3, bools: []bool{true, false}}

	n := ConnectRegions(g, rng, CorridorOptions{ConnectAll: true})

	assert.Equal(t, 2, n)
	assert.Equal(t, []string{
		"float[0.3,0.7)", "float[0.3,0.7)", "bool",
		"float[0.3,0.7)", "float[0.3,0.7)", "bool",
	}, rng.calls)
	assert.Len(t, FindRegions(g), 1)
}

func TestConnectRegions_NoOps(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		opts CorridorOptions
	}{
		{
			name: "disabled",
			rows: []string{".##.", "####", "####", ".##."},
			opts: CorridorOptions{ConnectAll: false, HalfWidth: 1, HalfHeight: 1},
		},
		{
			name: "no regions",
			rows: []string{"####", "####", "####", "####"},
			opts: CorridorOptions{ConnectAll: true, HalfWidth: 1, HalfHeight: 1},
		},
		{
			name: "single region",
			rows: []string{"....", "#..#", "####", "####"},
			opts: CorridorOptions{ConnectAll: true, HalfWidth: 1, HalfHeight: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGrid(t, tt.rows...)
			rng := &scriptedRandom{float: 0.5, bools: []bool{true}}

			n := ConnectRegions(g, rng, tt.opts)

			assert.Zero(t, n)
			assert.Empty(t, rng.calls, "no draws when nothing is carved")
			assert.Equal(t, tt.rows, g.Rows())
		})
	}
}

func TestConnectRegions_AnchorsOnNonConvexRegion(t *testing.T) {
	// The small U's centroid sits on rock; the corridor must still start
	// inside the U for the two regions to join.
	g := mustGrid(t,
		".#.#######",
		".#.#######",
		"...#######",
		"##########",
		"######....",
		"######....",
	)
	rng := &scriptedRandom{float: 0.5, bools: []bool{false}}

	ConnectRegions(g, rng, CorridorOptions{ConnectAll: true})

	assert.Len(t, FindRegions(g), 1)
}

func TestConnectRegions_ClampsToBounds(t *testing.T) {
	g := mustGrid(t,
		".#####",
		"######",
		"######",
		"######",
		"######",
		"#####.",
	)
	rng := &scriptedRandom{float: 0.7, bools: []bool{true}}

	require.NotPanics(t, func() {
		ConnectRegions(g, rng, CorridorOptions{ConnectAll: true, HalfWidth: 10, HalfHeight: 10})
	})
	assert.Equal(t, 6, g.Width)
	assert.Equal(t, 6, g.Height)
	assert.Equal(t, 36, g.AirCount())
}

func TestConnectRegions_RandomGridsEndConnected(t *testing.T) {
	testutil.SkipIfShort(t, "random grid sweep")

	for i := 0; i < 40; i++ {
		t.Run(fmt.Sprintf("grid-%d", i), func(t *testing.T) {
			rng := seed.NewRandomGenerator(int64(i))
			g := NewGrid(24, 16, 0, 0)
			for y := 0; y < g.Height; y++ {
				for x := 0; x < g.Width; x++ {
					g.Set(x, y, rng.Float01() < 0.6)
				}
			}

			ConnectRegions(g, rng, CorridorOptions{ConnectAll: true, HalfWidth: i % 3, HalfHeight: (i / 3) % 2})

			if g.AirCount() > 0 {
				assert.Len(t, FindRegions(g), 1)
			}
		})
	}
}
