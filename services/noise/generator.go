package noise

import (
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Backend names a smooth 2D noise primitive.
type Backend string

const (
	BackendPerlin  Backend = "perlin"
	BackendSimplex Backend = "opensimplex"
)

// ParseBackend resolves a backend name. Empty input selects Perlin.
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case "", BackendPerlin:
		return BackendPerlin, nil
	case BackendSimplex, "simplex":
		return BackendSimplex, nil
	default:
		return "", fmt.Errorf("unknown noise backend %q", name)
	}
}

// Source is a seeded smooth noise primitive returning roughly [-1, 1].
type Source interface {
	Noise2D(x, y float64) float64
}

// Generator is a Source that remembers which backend and seed built it.
type Generator struct {
	source  Source
	seed    int64
	backend Backend
}

// NewGenerator creates a new Perlin noise generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return NewGeneratorWithBackend(BackendPerlin, seed)
}

// NewGeneratorWithBackend creates a generator for the requested backend.
// Unknown backends fall back to Perlin.
func NewGeneratorWithBackend(backend Backend, seed int64) *Generator {
	var source Source
	switch backend {
	case BackendSimplex:
		source = NewSimplexSource(seed)
	default:
		backend = BackendPerlin
		source = NewPerlinSource(seed)
	}
	return &Generator{
		source:  source,
		seed:    seed,
		backend: backend,
	}
}

// Noise2D lets a Generator be used as a Source.
func (g *Generator) Noise2D(x, y float64) float64 {
	return g.source.Noise2D(x, y)
}

// GetSeed returns the seed the primitive was built with.
func (g *Generator) GetSeed() int64 {
	return g.seed
}

func (g *Generator) GetBackend() Backend {
	return g.backend
}

// perlinSource adapts go-perlin to Source.
type perlinSource struct {
	noise *perlin.Perlin
}

// NewPerlinSource returns a single-octave Perlin primitive. Octaves are
// layered by FractalSampler, so the library's own harmonic sum is disabled.
func NewPerlinSource(seed int64) Source {
	return &perlinSource{noise: perlin.NewPerlin(2, 2, 1, seed)}
}

func (p *perlinSource) Noise2D(x, y float64) float64 {
	return p.noise.Noise2D(x, y)
}

// simplexSource adapts opensimplex-go to Source.
type simplexSource struct {
	noise opensimplex.Noise
}

func NewSimplexSource(seed int64) Source {
	return &simplexSource{noise: opensimplex.New(seed)}
}

func (s *simplexSource) Noise2D(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}
