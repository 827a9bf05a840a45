package cave

import (
	"fmt"
	"math"

	"github.com/VoidMesh/caves/services/noise"
)

// MinDimension is the smallest width or height a grid is generated with.
const MinDimension = 4

// Config holds every tunable of one generation run.
type Config struct {
	Width          int  `json:"width"`
	Height         int  `json:"height"`
	CenterAtOrigin bool `json:"center_at_origin"`

	Octaves     int     `json:"octaves"`
	Scale       float64 `json:"scale"`
	Persistence float64 `json:"persistence"`
	Lacunarity  float64 `json:"lacunarity"`
	OffsetX     float64 `json:"offset_x"`
	OffsetY     float64 `json:"offset_y"`
	Threshold   float64 `json:"threshold"`

	Smooth             bool `json:"smooth"`
	MinRegionArea      int  `json:"min_region_area"`
	CorridorHalfWidth  int  `json:"corridor_half_width"`
	CorridorHalfHeight int  `json:"corridor_half_height"`
	ConnectAllRegions  bool `json:"connect_all_regions"`

	NoiseBackend noise.Backend `json:"noise_backend"`

	// Secondary carving pass. Disabled by default.
	CarveCaves    bool    `json:"carve_caves"`
	CaveScale     float64 `json:"cave_scale"`
	CaveThreshold float64 `json:"cave_threshold"`
}

// DefaultConfig returns the settings used when a caller supplies none.
func DefaultConfig() Config {
	return Config{
		Width:              80,
		Height:             50,
		CenterAtOrigin:     true,
		Octaves:            4,
		Scale:              20,
		Persistence:        0.5,
		Lacunarity:         2,
		Threshold:          0.45,
		Smooth:             true,
		MinRegionArea:      20,
		CorridorHalfWidth:  1,
		CorridorHalfHeight: 1,
		ConnectAllRegions:  true,
		NoiseBackend:       noise.BackendPerlin,
		CarveCaves:         false,
		CaveScale:          10,
		CaveThreshold:      0.3,
	}
}

// Correction records one field that Normalize had to change.
type Correction struct {
	Field string
	From  string
	To    string
}

func (c Correction) String() string {
	return fmt.Sprintf("%s: %s -> %s", c.Field, c.From, c.To)
}

// Normalize returns a copy of c with every out-of-range value replaced by the
// nearest valid one. Invalid input is corrected, never rejected.
func (c Config) Normalize() Config {
	normalized, _ := c.normalize()
	return normalized
}

// Corrections lists what Normalize would change, in field order.
func (c Config) Corrections() []Correction {
	_, corrections := c.normalize()
	return corrections
}

func (c Config) normalize() (Config, []Correction) {
	var corrections []Correction

	fixInt := func(field string, v *int, ok func(int) bool, to int) {
		if !ok(*v) {
			corrections = append(corrections, Correction{Field: field, From: fmt.Sprint(*v), To: fmt.Sprint(to)})
			*v = to
		}
	}
	fixFloat := func(field string, v *float64, to float64) {
		if *v != to {
			corrections = append(corrections, Correction{Field: field, From: fmt.Sprint(*v), To: fmt.Sprint(to)})
			*v = to
		}
	}
	atLeast := func(min int) func(int) bool {
		return func(v int) bool { return v >= min }
	}

	fixInt("width", &c.Width, atLeast(MinDimension), MinDimension)
	fixInt("height", &c.Height, atLeast(MinDimension), MinDimension)
	fixInt("octaves", &c.Octaves, atLeast(1), 1)
	fixInt("min_region_area", &c.MinRegionArea, atLeast(0), 0)
	fixInt("corridor_half_width", &c.CorridorHalfWidth, atLeast(0), 0)
	fixInt("corridor_half_height", &c.CorridorHalfHeight, atLeast(0), 0)

	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		fixFloat("scale", &c.Scale, noise.MinScale)
	}
	switch {
	case math.IsNaN(c.Persistence) || c.Persistence < 0:
		fixFloat("persistence", &c.Persistence, 0)
	case c.Persistence > 1:
		fixFloat("persistence", &c.Persistence, 1)
	}
	if !(c.Lacunarity >= 1) || math.IsInf(c.Lacunarity, 0) {
		fixFloat("lacunarity", &c.Lacunarity, 1)
	}
	if math.IsNaN(c.OffsetX) || math.IsInf(c.OffsetX, 0) {
		fixFloat("offset_x", &c.OffsetX, 0)
	}
	if math.IsNaN(c.OffsetY) || math.IsInf(c.OffsetY, 0) {
		fixFloat("offset_y", &c.OffsetY, 0)
	}
	if !(c.CaveScale > 0) || math.IsInf(c.CaveScale, 0) {
		fixFloat("cave_scale", &c.CaveScale, noise.MinScale)
	}

	backend, err := noise.ParseBackend(string(c.NoiseBackend))
	if err != nil {
		backend = noise.BackendPerlin
	}
	if backend != c.NoiseBackend && c.NoiseBackend != "" {
		corrections = append(corrections, Correction{Field: "noise_backend", From: string(c.NoiseBackend), To: string(backend)})
	}
	c.NoiseBackend = backend

	return c, corrections
}

func (c Config) fractalParams() noise.FractalParams {
	return noise.FractalParams{
		Octaves:     c.Octaves,
		Scale:       c.Scale,
		Persistence: c.Persistence,
		Lacunarity:  c.Lacunarity,
		OffsetX:     c.OffsetX,
		OffsetY:     c.OffsetY,
	}
}

func (c Config) caveParams() noise.FractalParams {
	params := c.fractalParams()
	params.Scale = c.CaveScale
	return params
}
