package seed

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{name: "empty seed", seed: ""},
		{name: "ascii seed", seed: "test-1"},
		{name: "numeric seed", seed: "123456"},
		{name: "unicode seed", seed: "höhle-🦇"},
		{name: "long seed", seed: "a very long seed string that goes on for quite a while to exercise the digest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Hash(tt.seed)
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, Hash(tt.seed), "hash should be deterministic for %q", tt.seed)
			}
		})
	}
}

func TestHashDistinguishesSeeds(t *testing.T) {
	seeds := []string{"", "test-1", "test-2", "Test-1", "test-1 ", "1", "2"}
	seen := make(map[int32]string, len(seeds))
	for _, s := range seeds {
		h := Hash(s)
		if prev, ok := seen[h]; ok {
			t.Fatalf("seeds %q and %q collide on %d", prev, s, h)
		}
		seen[h] = s
	}
}

func TestRandomSeed(t *testing.T) {
	s := RandomSeed()
	require.NotEmpty(t, s)

	n, err := strconv.ParseInt(s, 10, 64)
	require.NoError(t, err, "random seed should be a decimal integer")
	assert.GreaterOrEqual(t, n, int64(0))
}

func TestRandomGenerator_Determinism(t *testing.T) {
	r1 := NewRandomFromString("test-1")
	r2 := NewRandomFromString("test-1")

	assert.Equal(t, int64(Hash("test-1")), r1.Seed())

	for i := 0; i < 100; i++ {
		assert.Equal(t, r1.Float01(), r2.Float01())
		assert.Equal(t, r1.IntRange(-5, 17), r2.IntRange(-5, 17))
		assert.Equal(t, r1.FloatRange(0.3, 0.7), r2.FloatRange(0.3, 0.7))
		assert.Equal(t, r1.Bool(), r2.Bool())
	}
}

func TestRandomGenerator_Ranges(t *testing.T) {
	r := NewRandomGenerator(42)

	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{
			name: "float01 in unit interval",
			check: func(t *testing.T) {
				v := r.Float01()
				assert.GreaterOrEqual(t, v, 0.0)
				assert.Less(t, v, 1.0)
			},
		},
		{
			name: "int range half open",
			check: func(t *testing.T) {
				v := r.IntRange(3, 6)
				assert.GreaterOrEqual(t, v, 3)
				assert.Less(t, v, 6)
			},
		},
		{
			name: "empty int range yields min",
			check: func(t *testing.T) {
				assert.Equal(t, 9, r.IntRange(9, 9))
				assert.Equal(t, 9, r.IntRange(9, 2))
			},
		},
		{
			name: "float range within bounds",
			check: func(t *testing.T) {
				v := r.FloatRange(0.3, 0.7)
				assert.GreaterOrEqual(t, v, 0.3)
				assert.Less(t, v, 0.7)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				tt.check(t)
			}
		})
	}
}

func TestRandomGenerator_BoolProducesBothValues(t *testing.T) {
	r := NewRandomGenerator(7)
	var trues, falses int
	for i := 0; i < 200; i++ {
		if r.Bool() {
			trues++
		} else {
			falses++
		}
	}
	assert.Positive(t, trues)
	assert.Positive(t, falses)
}

func TestRandomGenerator_DifferentSeedsDiverge(t *testing.T) {
	r1 := NewRandomFromString("test-1")
	r2 := NewRandomFromString("test-2")

	different := false
	for i := 0; i < 10; i++ {
		if r1.Float01() != r2.Float01() {
			different = true
			break
		}
	}
	assert.True(t, different, "distinct seeds should produce distinct streams")
}
