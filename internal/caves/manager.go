package caves

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/VoidMesh/caves/internal/db"
	"github.com/VoidMesh/caves/internal/logging"
	"github.com/VoidMesh/caves/services/cave"
	"github.com/VoidMesh/caves/services/seed"
)

// Limits caps what a request may ask the generator for. A zero field
// disables that cap.
type Limits struct {
	MaxDimension int
	MaxOctaves   int
}

// Manager generates caves and keeps a library of them in sqlite.
type Manager struct {
	db        *sql.DB
	queries   *db.LoggingQueries
	generator *cave.Service
	defaults  cave.Config
	limits    Limits
}

func NewManager(database *sql.DB, generator *cave.Service, defaults cave.Config, limits Limits) *Manager {
	return &Manager{
		db:        database,
		queries:   db.NewLoggingQueries(database),
		generator: generator,
		defaults:  defaults,
		limits:    limits,
	}
}

func (m *Manager) Defaults() cave.Config {
	return m.defaults
}

// ResolveConfig overlays the fields present in raw onto the defaults and
// checks the request limits. Range clamping is left to the generator.
func (m *Manager) ResolveConfig(raw json.RawMessage) (cave.Config, error) {
	cfg := m.defaults
	if len(bytes.TrimSpace(raw)) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return cave.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if limit := m.limits.MaxDimension; limit > 0 && (cfg.Width > limit || cfg.Height > limit) {
		return cave.Config{}, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, cfg.Width, cfg.Height, limit)
	}
	if limit := m.limits.MaxOctaves; limit > 0 && cfg.Octaves > limit {
		return cave.Config{}, fmt.Errorf("%w: octaves %d exceeds %d", ErrInvalidConfig, cfg.Octaves, limit)
	}
	return cfg, nil
}

func resolveSeed(req CreateCaveRequest) string {
	if req.Randomize || req.Seed == nil {
		return seed.RandomSeed()
	}
	return *req.Seed
}

// Preview generates a cave without storing it.
func (m *Manager) Preview(req CreateCaveRequest) (*CaveResponse, error) {
	cfg, err := m.ResolveConfig(req.Config)
	if err != nil {
		return nil, err
	}

	result := m.generator.Generate(resolveSeed(req), cfg)
	logging.WithSeed(result.Seed).Debug("Generated preview", "width", result.Grid.Width, "height", result.Grid.Height)
	return responseFromResult(result), nil
}

// PreviewTo generates a cave without storing it and hands the grid to painter.
func (m *Manager) PreviewTo(req CreateCaveRequest, painter cave.GridPainter) (*cave.Result, error) {
	cfg, err := m.ResolveConfig(req.Config)
	if err != nil {
		return nil, err
	}

	result, err := m.generator.GenerateAndPaint(resolveSeed(req), cfg, painter)
	if err != nil {
		return nil, err
	}
	logging.WithDimensions(result.Grid.Width, result.Grid.Height).Debug("Painted preview", "seed", result.Seed)
	return result, nil
}

// CreateCave generates a cave and stores it in the library.
func (m *Manager) CreateCave(ctx context.Context, req CreateCaveRequest) (*CaveResponse, error) {
	cfg, err := m.ResolveConfig(req.Config)
	if err != nil {
		return nil, err
	}

	result := m.generator.Generate(resolveSeed(req), cfg)

	configJSON, err := json.Marshal(result.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	id := uuid.NewString()
	record, err := m.queries.CreateCave(ctx, db.CreateCaveParams{
		ID:              id,
		Seed:            result.Seed,
		IntSeed:         int64(result.IntSeed),
		Width:           int64(result.Grid.Width),
		Height:          int64(result.Grid.Height),
		StartX:          int64(result.Grid.StartX),
		StartY:          int64(result.Grid.StartY),
		Config:          string(configJSON),
		Cells:           result.Grid.Pack(),
		AirCells:        int64(result.Stats.AirCells),
		RegionsFound:    int64(result.Stats.RegionsFound),
		RegionsPruned:   int64(result.Stats.RegionsPruned),
		CorridorsCarved: int64(result.Stats.CorridorsCarved),
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		log.Error("failed to store cave", "error", err, "cave_id", id, "seed", result.Seed)
		return nil, fmt.Errorf("failed to store cave: %w", err)
	}

	logging.WithCaveID(id).Info("Stored cave", "seed", result.Seed, "width", result.Grid.Width, "height", result.Grid.Height)

	resp := responseFromResult(result)
	resp.ID = record.ID
	resp.CreatedAt = &record.CreatedAt
	return resp, nil
}

// GetCave loads a stored cave.
func (m *Manager) GetCave(ctx context.Context, id string) (*CaveResponse, error) {
	record, err := m.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return responseFromRecord(record)
}

// GetCaveGrid loads only the grid of a stored cave.
func (m *Manager) GetCaveGrid(ctx context.Context, id string) (*cave.Grid, error) {
	record, err := m.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	return gridFromRecord(record)
}

// ListCaves returns the newest caves first. The limit is clamped to
// [1, MaxListLimit]; zero or less selects DefaultListLimit.
func (m *Manager) ListCaves(ctx context.Context, limit int) ([]CaveSummary, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	records, err := m.queries.ListCaves(ctx, int64(limit))
	if err != nil {
		log.Error("failed to list caves", "error", err, "limit", limit)
		return nil, fmt.Errorf("failed to list caves: %w", err)
	}

	return summariesFromRecords(records), nil
}

// ListCavesBySeed returns every stored cave generated from seedStr, newest
// first.
func (m *Manager) ListCavesBySeed(ctx context.Context, seedStr string) ([]CaveSummary, error) {
	records, err := m.queries.ListCavesBySeed(ctx, seedStr)
	if err != nil {
		log.Error("failed to list caves by seed", "error", err, "seed", seedStr)
		return nil, fmt.Errorf("failed to list caves: %w", err)
	}
	return summariesFromRecords(records), nil
}

// CountCaves returns the number of stored caves.
func (m *Manager) CountCaves(ctx context.Context) (int64, error) {
	n, err := m.queries.CountCaves(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count caves: %w", err)
	}
	return n, nil
}

// DeleteCave removes a stored cave.
func (m *Manager) DeleteCave(ctx context.Context, id string) error {
	n, err := m.queries.DeleteCave(ctx, id)
	if err != nil {
		log.Error("failed to delete cave", "error", err, "cave_id", id)
		return fmt.Errorf("failed to delete cave: %w", err)
	}
	if n == 0 {
		return ErrCaveNotFound
	}
	logging.WithCaveID(id).Info("Deleted cave")
	return nil
}

// DeleteExpired removes caves stored more than retention ago.
func (m *Manager) DeleteExpired(ctx context.Context, retention time.Duration) (int64, error) {
	start := time.Now()
	cutoff := start.UTC().Add(-retention)
	n, err := m.queries.DeleteCavesBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired caves: %w", err)
	}
	if n > 0 {
		logging.WithDuration("delete_expired", time.Since(start)).Info("Deleted expired caves", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

// Regenerate runs the generator again with a stored cave's seed and config.
func (m *Manager) Regenerate(ctx context.Context, id string) (*cave.Result, error) {
	record, err := m.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	cfg, err := configFromRecord(record)
	if err != nil {
		return nil, err
	}
	return m.generator.Generate(record.Seed, cfg), nil
}

// VerifyCave reports whether regenerating a stored cave reproduces its grid.
func (m *Manager) VerifyCave(ctx context.Context, id string) (bool, error) {
	stored, err := m.GetCaveGrid(ctx, id)
	if err != nil {
		return false, err
	}
	result, err := m.Regenerate(ctx, id)
	if err != nil {
		return false, err
	}

	ok := stored.Equal(result.Grid)
	if !ok {
		logging.WithCaveID(id).Warn("Stored cave does not match its regeneration", "seed", result.Seed)
	}
	return ok, nil
}

func (m *Manager) getRecord(ctx context.Context, id string) (db.Cave, error) {
	record, err := m.queries.GetCave(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return db.Cave{}, ErrCaveNotFound
	}
	if err != nil {
		log.Error("failed to get cave", "error", err, "cave_id", id)
		return db.Cave{}, fmt.Errorf("failed to get cave: %w", err)
	}
	return record, nil
}

func responseFromResult(result *cave.Result) *CaveResponse {
	return &CaveResponse{
		Seed:    result.Seed,
		IntSeed: result.IntSeed,
		Width:   result.Grid.Width,
		Height:  result.Grid.Height,
		StartX:  result.Grid.StartX,
		StartY:  result.Grid.StartY,
		Config:  result.Config,
		Stats:   result.Stats,
		Rows:    result.Grid.Rows(),
	}
}

func responseFromRecord(record db.Cave) (*CaveResponse, error) {
	grid, err := gridFromRecord(record)
	if err != nil {
		return nil, err
	}
	cfg, err := configFromRecord(record)
	if err != nil {
		return nil, err
	}

	createdAt := record.CreatedAt
	return &CaveResponse{
		ID:      record.ID,
		Seed:    record.Seed,
		IntSeed: int32(record.IntSeed),
		Width:   grid.Width,
		Height:  grid.Height,
		StartX:  grid.StartX,
		StartY:  grid.StartY,
		Config:  cfg,
		Stats: cave.Stats{
			RegionsFound:    int(record.RegionsFound),
			RegionsPruned:   int(record.RegionsPruned),
			CorridorsCarved: int(record.CorridorsCarved),
			AirCells:        grid.AirCount(),
			SolidCells:      grid.SolidCount(),
		},
		Rows:      grid.Rows(),
		CreatedAt: &createdAt,
	}, nil
}

func summariesFromRecords(records []db.Cave) []CaveSummary {
	summaries := make([]CaveSummary, len(records))
	for i, r := range records {
		summaries[i] = summaryFromRecord(r)
	}
	return summaries
}

func summaryFromRecord(record db.Cave) CaveSummary {
	return CaveSummary{
		ID:              record.ID,
		Seed:            record.Seed,
		Width:           int(record.Width),
		Height:          int(record.Height),
		AirCells:        int(record.AirCells),
		RegionsFound:    int(record.RegionsFound),
		RegionsPruned:   int(record.RegionsPruned),
		CorridorsCarved: int(record.CorridorsCarved),
		CreatedAt:       record.CreatedAt,
	}
}

func gridFromRecord(record db.Cave) (*cave.Grid, error) {
	grid, err := cave.UnpackGrid(int(record.Width), int(record.Height), int(record.StartX), int(record.StartY), record.Cells)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cave %s: %w", record.ID, err)
	}
	return grid, nil
}

func configFromRecord(record db.Cave) (cave.Config, error) {
	var cfg cave.Config
	if err := json.Unmarshal([]byte(record.Config), &cfg); err != nil {
		return cave.Config{}, fmt.Errorf("failed to decode config of cave %s: %w", record.ID, err)
	}
	return cfg, nil
}
