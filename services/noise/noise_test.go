package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/caves/internal/testutil"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Backend
		wantErr bool
	}{
		{name: "empty defaults to perlin", input: "", want: BackendPerlin},
		{name: "perlin", input: "perlin", want: BackendPerlin},
		{name: "opensimplex", input: "opensimplex", want: BackendSimplex},
		{name: "simplex alias", input: " Simplex ", want: BackendSimplex},
		{name: "unknown", input: "worley", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBackend(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGenerator(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	tests := []struct {
		name        string
		backend     Backend
		seed        int64
		wantBackend Backend
	}{
		{name: "perlin with positive seed", backend: BackendPerlin, seed: 12345, wantBackend: BackendPerlin},
		{name: "simplex with negative seed", backend: BackendSimplex, seed: -9876, wantBackend: BackendSimplex},
		{name: "unknown backend falls back to perlin", backend: Backend("bogus"), seed: 0, wantBackend: BackendPerlin},
		{name: "max int64 seed", backend: BackendSimplex, seed: math.MaxInt64, wantBackend: BackendSimplex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := NewGeneratorWithBackend(tt.backend, tt.seed)
			require.NotNil(t, generator)
			assert.Equal(t, tt.seed, generator.GetSeed())
			assert.Equal(t, tt.wantBackend, generator.GetBackend())
		})
	}

	assert.Equal(t, BackendPerlin, NewGenerator(1).GetBackend())
}

func TestGenerator_Noise2DRange(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	for _, backend := range []Backend{BackendPerlin, BackendSimplex} {
		t.Run(string(backend), func(t *testing.T) {
			generator := NewGeneratorWithBackend(backend, 12345)
			for i := 0; i < 2000; i++ {
				x := float64(i)*0.173 - 150
				y := float64(i)*0.091 - 80

				v := generator.Noise2D(x, y)
				assert.False(t, math.IsNaN(v), "noise should not be NaN")
				assert.GreaterOrEqual(t, v, -1.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		})
	}
}

func TestNoiseDeterminism(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	coordinates := []struct{ x, y float64 }{
		{0.5, 0.5},
		{10.5, 20.7},
		{-15.3, -8.9},
		{100.1, 200.2},
	}

	for _, backend := range []Backend{BackendPerlin, BackendSimplex} {
		t.Run(string(backend), func(t *testing.T) {
			g1 := NewGeneratorWithBackend(backend, 777)
			g2 := NewGeneratorWithBackend(backend, 777)
			for _, c := range coordinates {
				assert.Equal(t, g1.Noise2D(c.x, c.y), g2.Noise2D(c.x, c.y),
					"noise should be deterministic at (%.2f, %.2f)", c.x, c.y)
			}
		})
	}
}

func TestNoiseDifferentSeeds(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	coordinates := []struct{ x, y float64 }{
		{1.3, 1.7},
		{10.5, 10.25},
		{-5.3, 5.7},
		{25.1, -33.2},
	}

	for _, backend := range []Backend{BackendPerlin, BackendSimplex} {
		t.Run(string(backend), func(t *testing.T) {
			g1 := NewGeneratorWithBackend(backend, 12345)
			g2 := NewGeneratorWithBackend(backend, 54321)

			foundDifference := false
			for _, c := range coordinates {
				if math.Abs(g1.Noise2D(c.x, c.y)-g2.Noise2D(c.x, c.y)) > 0.0001 {
					foundDifference = true
					break
				}
			}
			assert.True(t, foundDifference, "different seeds should produce different noise patterns")
		})
	}
}

func TestNoiseContinuity(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	generator := NewGenerator(12345)
	base := generator.Noise2D(10.3, 10.3)

	for _, increment := range []float64{0.001, 0.01} {
		assert.Less(t, math.Abs(generator.Noise2D(10.3+increment, 10.3)-base), 0.1,
			"small increment in X should produce a small change")
		assert.Less(t, math.Abs(generator.Noise2D(10.3, 10.3+increment)-base), 0.1,
			"small increment in Y should produce a small change")
	}
}

func BenchmarkGenerator_Noise2D(b *testing.B) {
	for _, backend := range []Backend{BackendPerlin, BackendSimplex} {
		b.Run(string(backend), func(b *testing.B) {
			generator := NewGeneratorWithBackend(backend, 12345)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				generator.Noise2D(float64(i%1000)*0.37, float64(i%977)*0.41)
			}
		})
	}
}
