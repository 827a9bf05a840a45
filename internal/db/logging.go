package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/charmbracelet/log"
)

// LoggingQueries wraps the generated Queries struct to add debug logging
type LoggingQueries struct {
	*Queries
}

// NewLoggingQueries creates a new LoggingQueries instance
func NewLoggingQueries(db DBTX) *LoggingQueries {
	return &LoggingQueries{
		Queries: New(db),
	}
}

// WithTx creates a new LoggingQueries with a transaction
func (lq *LoggingQueries) WithTx(tx *sql.Tx) *LoggingQueries {
	return &LoggingQueries{
		Queries: lq.Queries.WithTx(tx),
	}
}

// Helper function to log query execution
func (lq *LoggingQueries) logQuery(ctx context.Context, queryName string, start time.Time, err error, args ...interface{}) {
	duration := time.Since(start)

	if err != nil {
		log.Debug("Database query failed",
			"query", queryName,
			"duration", duration,
			"error", err,
			"args", args,
		)
	} else {
		log.Debug("Database query executed",
			"query", queryName,
			"duration", duration,
			"args", args,
		)
	}
}

// CreateCave with logging. The packed cells are left out of the log line.
func (lq *LoggingQueries) CreateCave(ctx context.Context, arg CreateCaveParams) (Cave, error) {
	start := time.Now()
	log.Debug("Executing CreateCave",
		"cave_id", arg.ID,
		"seed", arg.Seed,
		"width", arg.Width,
		"height", arg.Height,
		"cells_bytes", len(arg.Cells),
	)

	result, err := lq.Queries.CreateCave(ctx, arg)
	lq.logQuery(ctx, "CreateCave", start, err, arg.ID)
	return result, err
}

// GetCave with logging
func (lq *LoggingQueries) GetCave(ctx context.Context, id string) (Cave, error) {
	start := time.Now()
	log.Debug("Executing GetCave", "cave_id", id)

	result, err := lq.Queries.GetCave(ctx, id)
	lq.logQuery(ctx, "GetCave", start, err, id)

	if err == nil {
		log.Debug("GetCave result",
			"cave_id", result.ID,
			"seed", result.Seed,
			"width", result.Width,
			"height", result.Height,
		)
	}

	return result, err
}

// ListCaves with logging
func (lq *LoggingQueries) ListCaves(ctx context.Context, limit int64) ([]Cave, error) {
	start := time.Now()
	log.Debug("Executing ListCaves", "limit", limit)

	result, err := lq.Queries.ListCaves(ctx, limit)
	lq.logQuery(ctx, "ListCaves", start, err, limit)

	if err == nil {
		log.Debug("ListCaves result", "cave_count", len(result))
	}

	return result, err
}

// ListCavesBySeed with logging
func (lq *LoggingQueries) ListCavesBySeed(ctx context.Context, seed string) ([]Cave, error) {
	start := time.Now()
	log.Debug("Executing ListCavesBySeed", "seed", seed)

	result, err := lq.Queries.ListCavesBySeed(ctx, seed)
	lq.logQuery(ctx, "ListCavesBySeed", start, err, seed)

	if err == nil {
		log.Debug("ListCavesBySeed result", "cave_count", len(result))
	}

	return result, err
}

// CountCaves with logging
func (lq *LoggingQueries) CountCaves(ctx context.Context) (int64, error) {
	start := time.Now()
	log.Debug("Executing CountCaves")

	result, err := lq.Queries.CountCaves(ctx)
	lq.logQuery(ctx, "CountCaves", start, err)

	if err == nil {
		log.Debug("CountCaves result", "count", result)
	}

	return result, err
}

// DeleteCave with logging
func (lq *LoggingQueries) DeleteCave(ctx context.Context, id string) (int64, error) {
	start := time.Now()
	log.Debug("Executing DeleteCave", "cave_id", id)

	result, err := lq.Queries.DeleteCave(ctx, id)
	lq.logQuery(ctx, "DeleteCave", start, err, id)

	if err == nil {
		log.Debug("DeleteCave result", "rows_affected", result)
	}

	return result, err
}

// DeleteCavesBefore with logging
func (lq *LoggingQueries) DeleteCavesBefore(ctx context.Context, createdAt time.Time) (int64, error) {
	start := time.Now()
	log.Debug("Executing DeleteCavesBefore", "cutoff", createdAt)

	result, err := lq.Queries.DeleteCavesBefore(ctx, createdAt)
	lq.logQuery(ctx, "DeleteCavesBefore", start, err, createdAt)

	if err == nil {
		log.Debug("DeleteCavesBefore result", "rows_affected", result)
	}

	return result, err
}
