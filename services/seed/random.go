package seed

import (
	"math/rand"
)

// Random is the pseudorandom stream consumed by the generation pipeline.
// Callers must draw from it in a fixed order; the order is part of the
// reproducibility contract for a given seed.
type Random interface {
	Float01() float64
	IntRange(min, maxExclusive int) int
	FloatRange(min, max float64) float64
	Bool() bool
	Seed() int64
}

// RandomGenerator implements Random using math/rand.
type RandomGenerator struct {
	rand *rand.Rand
	seed int64
}

// NewRandomGenerator creates a new random generator with the given seed.
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewRandomFromString hashes a textual seed and seeds a generator with it.
func NewRandomFromString(s string) *RandomGenerator {
	return NewRandomGenerator(int64(Hash(s)))
}

// Float01 returns a value in [0, 1).
func (r *RandomGenerator) Float01() float64 {
	return r.rand.Float64()
}

// IntRange returns a value in [min, maxExclusive). An empty range yields min.
func (r *RandomGenerator) IntRange(min, maxExclusive int) int {
	if maxExclusive <= min {
		return min
	}
	return min + r.rand.Intn(maxExclusive-min)
}

// FloatRange returns a value in [min, max).
func (r *RandomGenerator) FloatRange(min, max float64) float64 {
	return min + r.rand.Float64()*(max-min)
}

func (r *RandomGenerator) Bool() bool {
	return r.rand.Intn(2) == 1
}

func (r *RandomGenerator) Seed() int64 {
	return r.seed
}
