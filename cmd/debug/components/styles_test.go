package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/caves/services/cave"
)

func TestViewport_Clamp(t *testing.T) {
	tests := []struct {
		name string
		in   Viewport
		want Viewport
	}{
		{name: "fits", in: Viewport{0, 0, 4, 3}, want: Viewport{0, 0, 4, 3}},
		{name: "larger than grid", in: Viewport{3, 3, 100, 100}, want: Viewport{0, 0, 10, 6}},
		{name: "offset past edge", in: Viewport{9, 5, 4, 2}, want: Viewport{6, 4, 4, 2}},
		{name: "negative offset", in: Viewport{-2, -1, 4, 2}, want: Viewport{0, 0, 4, 2}},
		{name: "zero size", in: Viewport{0, 0, 0, 0}, want: Viewport{0, 0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamp(10, 6))
		})
	}
}

func TestGridLines(t *testing.T) {
	g, err := cave.GridFromRows([]string{
		"####",
		"#..#",
		"##.#",
	}, 0, 0)
	require.NoError(t, err)

	lines := GridLines(g, Viewport{Width: 4, Height: 3})
	require.Len(t, lines, 3)

	assert.Equal(t, []string{strings.Repeat(RockSymbol, 4)}, lines[0])
	assert.Equal(t, []string{RockSymbol, AirSymbol + AirSymbol, RockSymbol}, lines[1])
	assert.Equal(t, []string{RockSymbol + RockSymbol, AirSymbol, RockSymbol}, lines[2])

	cropped := GridLines(g, Viewport{OffsetX: 1, OffsetY: 1, Width: 2, Height: 2})
	require.Len(t, cropped, 2)
	assert.Equal(t, []string{AirSymbol + AirSymbol}, cropped[0])
	assert.Equal(t, []string{RockSymbol, AirSymbol}, cropped[1])
}
