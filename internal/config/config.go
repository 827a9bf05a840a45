package config

import (
	"os"
	"strconv"
	"time"

	"github.com/VoidMesh/caves/services/cave"
	"github.com/VoidMesh/caves/services/noise"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Logging    LoggingConfig
	Generation GenerationConfig
	Library    LibraryConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LoggingConfig struct {
	Level      string
	Format     string
	Structured bool
}

// GenerationConfig holds the defaults applied to requests that omit a config,
// plus the API-level request caps.
type GenerationConfig struct {
	Width              int
	Height             int
	CenterAtOrigin     bool
	Octaves            int
	Scale              float64
	Persistence        float64
	Lacunarity         float64
	Threshold          float64
	Smooth             bool
	MinRegionArea      int
	CorridorHalfWidth  int
	CorridorHalfHeight int
	ConnectAllRegions  bool
	NoiseBackend       string
	MaxDimension       int
	MaxOctaves         int
}

// LibraryConfig controls expiry of stored caves. A zero Retention keeps
// everything.
type LibraryConfig struct {
	Retention       time.Duration
	CleanupInterval time.Duration
}

func Load() *Config {
	defaults := cave.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Port:            getEnvStr("PORT", "8080"),
			ReadTimeout:     getEnvDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Path:            getEnvStr("DB_PATH", "./caves.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Logging: LoggingConfig{
			Level:      getEnvStr("LOG_LEVEL", "info"),
			Format:     getEnvStr("LOG_FORMAT", "json"),
			Structured: getEnvBool("LOG_STRUCTURED", true),
		},
		Generation: GenerationConfig{
			Width:              getEnvInt("CAVE_WIDTH", defaults.Width),
			Height:             getEnvInt("CAVE_HEIGHT", defaults.Height),
			CenterAtOrigin:     getEnvBool("CAVE_CENTER_AT_ORIGIN", defaults.CenterAtOrigin),
			Octaves:            getEnvInt("CAVE_OCTAVES", defaults.Octaves),
			Scale:              getEnvFloat("CAVE_SCALE", defaults.Scale),
			Persistence:        getEnvFloat("CAVE_PERSISTENCE", defaults.Persistence),
			Lacunarity:         getEnvFloat("CAVE_LACUNARITY", defaults.Lacunarity),
			Threshold:          getEnvFloat("CAVE_THRESHOLD", defaults.Threshold),
			Smooth:             getEnvBool("CAVE_SMOOTH", defaults.Smooth),
			MinRegionArea:      getEnvInt("CAVE_MIN_REGION_AREA", defaults.MinRegionArea),
			CorridorHalfWidth:  getEnvInt("CAVE_CORRIDOR_HALF_WIDTH", defaults.CorridorHalfWidth),
			CorridorHalfHeight: getEnvInt("CAVE_CORRIDOR_HALF_HEIGHT", defaults.CorridorHalfHeight),
			ConnectAllRegions:  getEnvBool("CAVE_CONNECT_ALL", defaults.ConnectAllRegions),
			NoiseBackend:       getEnvStr("CAVE_NOISE_BACKEND", string(defaults.NoiseBackend)),
			MaxDimension:       getEnvInt("CAVE_MAX_DIMENSION", 512),
			MaxOctaves:         getEnvInt("CAVE_MAX_OCTAVES", 16),
		},
		Library: LibraryConfig{
			Retention:       getEnvDuration("CAVE_RETENTION", 0),
			CleanupInterval: getEnvDuration("CAVE_CLEANUP_INTERVAL", time.Hour),
		},
	}
}

// CaveConfig converts the defaults into a generator config. Values are passed
// through as-is; the generator normalizes them.
func (g GenerationConfig) CaveConfig() cave.Config {
	cfg := cave.DefaultConfig()
	cfg.Width = g.Width
	cfg.Height = g.Height
	cfg.CenterAtOrigin = g.CenterAtOrigin
	cfg.Octaves = g.Octaves
	cfg.Scale = g.Scale
	cfg.Persistence = g.Persistence
	cfg.Lacunarity = g.Lacunarity
	cfg.Threshold = g.Threshold
	cfg.Smooth = g.Smooth
	cfg.MinRegionArea = g.MinRegionArea
	cfg.CorridorHalfWidth = g.CorridorHalfWidth
	cfg.CorridorHalfHeight = g.CorridorHalfHeight
	cfg.ConnectAllRegions = g.ConnectAllRegions
	cfg.NoiseBackend = noise.Backend(g.NoiseBackend)
	return cfg
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
