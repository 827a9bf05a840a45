package caves

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/VoidMesh/caves/services/cave"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var (
	ErrCaveNotFound      = errors.New("cave not found")
	ErrInvalidConfig     = errors.New("invalid generation config")
	ErrDimensionTooLarge = errors.New("requested grid is too large")
)

// CreateCaveRequest asks for a cave to be generated. A missing seed draws a
// random one, as does Randomize; an explicit empty seed is a valid seed.
// Config fields that are omitted keep the server defaults.
type CreateCaveRequest struct {
	Seed      *string         `json:"seed,omitempty"`
	Randomize bool            `json:"randomize,omitempty"`
	Config    json.RawMessage `json:"config,omitempty"`
}

type CaveSummary struct {
	ID              string    `json:"id"`
	Seed            string    `json:"seed"`
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	AirCells        int       `json:"air_cells"`
	RegionsFound    int       `json:"regions_found"`
	RegionsPruned   int       `json:"regions_pruned"`
	CorridorsCarved int       `json:"corridors_carved"`
	CreatedAt       time.Time `json:"created_at"`
}

// CaveResponse is a full cave. Rows holds one string per grid row, '#' for
// solid and '.' for air. ID and CreatedAt are empty for previews.
type CaveResponse struct {
	ID        string      `json:"id,omitempty"`
	Seed      string      `json:"seed"`
	IntSeed   int32       `json:"int_seed"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	StartX    int         `json:"start_x"`
	StartY    int         `json:"start_y"`
	Config    cave.Config `json:"config"`
	Stats     cave.Stats  `json:"stats"`
	Rows      []string    `json:"rows"`
	CreatedAt *time.Time  `json:"created_at,omitempty"`
}

// ListCavesResponse holds one page of summaries. Total counts every stored
// cave regardless of filters.
type ListCavesResponse struct {
	Caves []CaveSummary `json:"caves"`
	Count int           `json:"count"`
	Total int64         `json:"total"`
}

type VerifyResponse struct {
	ID           string `json:"id"`
	Reproducible bool   `json:"reproducible"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
