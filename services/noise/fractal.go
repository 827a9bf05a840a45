package noise

// MinScale replaces a non-positive sampling scale.
const MinScale = 0.0001

// OffsetRange bounds the per-octave phase shifts. Kept well inside the
// lattice range go-perlin handles without wrapping artefacts.
const OffsetRange = 1000.0

// OffsetSource supplies the per-octave phase offsets.
type OffsetSource interface {
	FloatRange(min, max float64) float64
}

// FractalParams configures a FractalSampler.
type FractalParams struct {
	Octaves     int
	Scale       float64
	Persistence float64
	Lacunarity  float64
	OffsetX     float64
	OffsetY     float64
}

// Offset is a 2D phase shift applied to one octave.
type Offset struct {
	X, Y float64
}

// FractalSampler layers octaves of a Source into normalized fractal noise.
type FractalSampler struct {
	source        Source
	params        FractalParams
	octaveOffsets []Offset
}

// NewFractalSampler builds a sampler and draws one offset pair per octave from
// offsets, in octave order, x before y. All draws happen here so that nothing
// is consumed from the stream once sampling starts.
func NewFractalSampler(source Source, params FractalParams, offsets OffsetSource) *FractalSampler {
	if params.Octaves < 1 {
		params.Octaves = 1
	}
	if !(params.Scale > 0) {
		params.Scale = MinScale
	}

	octaveOffsets := make([]Offset, params.Octaves)
	for i := range octaveOffsets {
		octaveOffsets[i].X = offsets.FloatRange(-OffsetRange, OffsetRange)
		octaveOffsets[i].Y = offsets.FloatRange(-OffsetRange, OffsetRange)
	}

	return &FractalSampler{
		source:        source,
		params:        params,
		octaveOffsets: octaveOffsets,
	}
}

// Sample returns the amplitude-weighted mean of all octaves at (x, y),
// nominally in [0, 1]. Primitive overshoot is passed through unclamped.
func (s *FractalSampler) Sample(x, y float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	total := 0.0
	totalAmplitude := 0.0

	for _, off := range s.octaveOffsets {
		sx := (x + s.params.OffsetX + off.X) / s.params.Scale * frequency
		sy := (y + s.params.OffsetY + off.Y) / s.params.Scale * frequency

		total += amplitude * (s.source.Noise2D(sx, sy) + 1) / 2
		totalAmplitude += amplitude

		amplitude *= s.params.Persistence
		frequency *= s.params.Lacunarity
	}

	return total / totalAmplitude
}

// OctaveOffsets returns a copy of the drawn per-octave offsets.
func (s *FractalSampler) OctaveOffsets() []Offset {
	out := make([]Offset, len(s.octaveOffsets))
	copy(out, s.octaveOffsets)
	return out
}

func (s *FractalSampler) Params() FractalParams {
	return s.params
}
