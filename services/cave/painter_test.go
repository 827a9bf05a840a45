package cave_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/VoidMesh/caves/internal/testmocks"
	mockcave "github.com/VoidMesh/caves/internal/testmocks/cave"
	"github.com/VoidMesh/caves/internal/testutil"
	"github.com/VoidMesh/caves/services/cave"
)

func TestGenerateAndPaint_WithMockPainter(t *testing.T) {
	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
	defer cleanup()

	cfg := cave.DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16

	tests := []struct {
		name      string
		setupMock func(p *mockcave.MockGridPainter)
		wantErr   error
	}{
		{
			name: "painter receives the final grid",
			setupMock: func(p *mockcave.MockGridPainter) {
				p.EXPECT().Paint(gomock.Any()).DoAndReturn(func(g *cave.Grid) error {
					assert.Equal(t, 24, g.Width)
					assert.Equal(t, 16, g.Height)
					assert.Equal(t, -12, g.StartX)
					assert.Equal(t, -8, g.StartY)
					return nil
				}).Times(1)
			},
		},
		{
			name: "painter failure is wrapped",
			setupMock: func(p *mockcave.MockGridPainter) {
				p.EXPECT().Paint(gomock.Any()).Return(errTileMapMissing).Times(1)
			},
			wantErr: errTileMapMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := testmocks.NewMockController(t)
			painter := mockcave.NewMockGridPainter(ctrl.Controller)
			tt.setupMock(painter)

			service := cave.NewServiceWithDefaultLogger()
			result, err := service.GenerateAndPaint("painted", cfg, painter)

			require.NotNil(t, result, "the grid is returned even when painting fails")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Contains(t, err.Error(), "failed to paint grid")
				return
			}
			require.NoError(t, err)
		})
	}
}

var errTileMapMissing = errors.New("tile map missing")
