package cave

import (
	"fmt"
	"time"

	"github.com/VoidMesh/caves/internal/logging"
	"github.com/VoidMesh/caves/services/noise"
	"github.com/VoidMesh/caves/services/seed"
)

// LoggerInterface abstracts logging operations for dependency injection.
type LoggerInterface interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	With(keysAndValues ...interface{}) LoggerInterface
}

// DefaultLoggerWrapper wraps the internal logging package.
type DefaultLoggerWrapper struct {
	keyvals []interface{}
}

// NewDefaultLoggerWrapper creates a new default logger wrapper.
func NewDefaultLoggerWrapper() LoggerInterface {
	return &DefaultLoggerWrapper{}
}

func (l *DefaultLoggerWrapper) Debug(msg string, keysAndValues ...interface{}) {
	logging.GetLogger().With(l.keyvals...).Debug(msg, keysAndValues...)
}

func (l *DefaultLoggerWrapper) Info(msg string, keysAndValues ...interface{}) {
	logging.GetLogger().With(l.keyvals...).Info(msg, keysAndValues...)
}

func (l *DefaultLoggerWrapper) Warn(msg string, keysAndValues ...interface{}) {
	logging.GetLogger().With(l.keyvals...).Warn(msg, keysAndValues...)
}

func (l *DefaultLoggerWrapper) Error(msg string, keysAndValues ...interface{}) {
	logging.GetLogger().With(l.keyvals...).Error(msg, keysAndValues...)
}

func (l *DefaultLoggerWrapper) With(keysAndValues ...interface{}) LoggerInterface {
	keyvals := make([]interface{}, 0, len(l.keyvals)+len(keysAndValues))
	keyvals = append(keyvals, l.keyvals...)
	keyvals = append(keyvals, keysAndValues...)
	return &DefaultLoggerWrapper{keyvals: keyvals}
}

// Stats summarises what each pipeline stage did.
type Stats struct {
	CaveCellsCarved int           `json:"cave_cells_carved"`
	RegionsFound    int           `json:"regions_found"`
	RegionsPruned   int           `json:"regions_pruned"`
	CellsPruned     int           `json:"cells_pruned"`
	CorridorsCarved int           `json:"corridors_carved"`
	AirCells        int           `json:"air_cells"`
	SolidCells      int           `json:"solid_cells"`
	Duration        time.Duration `json:"duration"`
}

// Result is the output of one generation run.
type Result struct {
	Seed    string
	IntSeed int32
	Config  Config
	Grid    *Grid
	Stats   Stats
}

// Service runs the cave generation pipeline.
type Service struct {
	logger LoggerInterface
}

// NewService creates a new cave service with dependency injection.
func NewService(logger LoggerInterface) *Service {
	componentLogger := logger.With("component", "cave-service")
	componentLogger.Debug("Creating new cave service")
	return &Service{
		logger: componentLogger,
	}
}

// NewServiceWithDefaultLogger creates a service with the default logger (convenience constructor for production use).
func NewServiceWithDefaultLogger() *Service {
	return NewService(NewDefaultLoggerWrapper())
}

// Generate builds a cave from a textual seed. The same seed and config always
// yield the same grid. cfg is normalized first; invalid values are corrected
// and logged rather than rejected.
func (s *Service) Generate(seedStr string, cfg Config) *Result {
	start := time.Now()

	normalized, corrections := cfg.normalize()
	for _, c := range corrections {
		s.logger.Warn("Corrected generation config", "field", c.Field, "from", c.From, "to", c.To)
	}

	intSeed := seed.Hash(seedStr)
	rng := seed.NewRandomGenerator(int64(intSeed))
	s.logger.Debug("Generating cave", "seed", seedStr, "int_seed", intSeed,
		"width", normalized.Width, "height", normalized.Height, "backend", normalized.NoiseBackend)

	grid, stats := s.run(normalized, rng)
	stats.Duration = time.Since(start)

	s.logger.Info("Generated cave", "seed", seedStr,
		"air_cells", stats.AirCells,
		"regions_found", stats.RegionsFound,
		"regions_pruned", stats.RegionsPruned,
		"corridors_carved", stats.CorridorsCarved,
		"duration", stats.Duration)

	return &Result{
		Seed:    seedStr,
		IntSeed: intSeed,
		Config:  normalized,
		Grid:    grid,
		Stats:   stats,
	}
}

// GenerateRandom draws a fresh seed string and generates from it. The seed is
// returned in the result so the run can be reproduced.
func (s *Service) GenerateRandom(cfg Config) *Result {
	seedStr := seed.RandomSeed()
	s.logger.Debug("Drew random seed", "seed", seedStr)
	return s.Generate(seedStr, cfg)
}

// GenerateAndPaint generates a cave and hands the grid to painter. A missing
// painter is logged and the result is still returned.
func (s *Service) GenerateAndPaint(seedStr string, cfg Config, painter GridPainter) (*Result, error) {
	result := s.Generate(seedStr, cfg)
	if painter == nil {
		s.logger.Warn("No grid painter attached, skipping paint", "seed", seedStr)
		return result, nil
	}
	if err := painter.Paint(result.Grid); err != nil {
		s.logger.Error("Failed to paint grid", "seed", seedStr, "error", err)
		return result, fmt.Errorf("failed to paint grid: %w", err)
	}
	return result, nil
}

// run executes the pipeline stages in order. Every draw from rng happens here
// and the order of those draws is fixed: primary octave offsets, cave octave
// offsets when carving is enabled, then corridor jitter.
func (s *Service) run(cfg Config, rng seed.Random) (*Grid, Stats) {
	var stats Stats

	source := noise.NewGeneratorWithBackend(cfg.NoiseBackend, rng.Seed())
	s.logger.Debug("Noise source ready", "backend", source.GetBackend(), "int_seed", source.GetSeed())
	sampler := noise.NewFractalSampler(source, cfg.fractalParams(), rng)
	var caveSampler *noise.FractalSampler
	if cfg.CarveCaves {
		caveSampler = noise.NewFractalSampler(source, cfg.caveParams(), rng)
	}

	grid := BuildGrid(cfg.Width, cfg.Height, cfg.CenterAtOrigin, sampler, cfg.Threshold)
	if caveSampler != nil {
		stats.CaveCellsCarved = CarveCaves(grid, caveSampler, cfg.CaveThreshold)
	}
	if cfg.Smooth {
		grid = Smooth(grid)
	}

	regions := FindRegions(grid)
	SortRegions(regions)
	stats.RegionsFound = len(regions)

	kept, filled := PruneRegions(grid, regions, cfg.MinRegionArea)
	stats.RegionsPruned = len(regions) - len(kept)
	stats.CellsPruned = filled
	s.logger.Debug("Pruned regions", "found", stats.RegionsFound, "pruned", stats.RegionsPruned, "cells", filled)

	stats.CorridorsCarved = ConnectRegions(grid, rng, CorridorOptions{
		ConnectAll: cfg.ConnectAllRegions,
		HalfWidth:  cfg.CorridorHalfWidth,
		HalfHeight: cfg.CorridorHalfHeight,
	})

	stats.SolidCells = grid.SolidCount()
	stats.AirCells = grid.AirCount()
	return grid, stats
}
