package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/VoidMesh/caves/internal/api"
	"github.com/VoidMesh/caves/internal/caves"
	"github.com/VoidMesh/caves/internal/config"
	"github.com/VoidMesh/caves/internal/db"
	"github.com/VoidMesh/caves/internal/logging"
	"github.com/VoidMesh/caves/services/cave"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Debug("Configuration loaded", "server_port", cfg.Server.Port, "db_path", cfg.Database.Path, "log_level", cfg.Logging.Level)

	// Setup logging
	setupLogging(cfg.Logging)
	log.Debug("Logging configured", "level", cfg.Logging.Level, "format", cfg.Logging.Format)

	// Initialize database
	database, err := initializeDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run database migrations", "error", err)
	}

	// Initialize cave manager
	log.Debug("Initializing cave manager", "max_dimension", cfg.Generation.MaxDimension, "max_octaves", cfg.Generation.MaxOctaves, "noise_backend", cfg.Generation.NoiseBackend)
	generator := cave.NewServiceWithDefaultLogger()
	caveManager := caves.NewManager(database, generator, cfg.Generation.CaveConfig(), caves.Limits{
		MaxDimension: cfg.Generation.MaxDimension,
		MaxOctaves:   cfg.Generation.MaxOctaves,
	})

	// Start background services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Library.Retention > 0 {
		go startRetentionCleanup(ctx, caveManager, cfg.Library)
	} else {
		log.Debug("Cave retention disabled, stored caves are kept")
	}

	// Initialize API handlers
	handler := api.NewHandler(caveManager)
	router := api.SetupRoutes(handler)
	log.Debug("API routes configured")

	// Create HTTP server
	log.Debug("Creating HTTP server", "port", cfg.Server.Port, "read_timeout", cfg.Server.ReadTimeout, "write_timeout", cfg.Server.WriteTimeout, "idle_timeout", cfg.Server.IdleTimeout)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Starting VoidMesh caves server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
		log.Debug("Server stopped listening")
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("Shutting down server...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	} else {
		log.Debug("Server shutdown completed gracefully")
	}

	log.Info("Server exited")
}

func setupLogging(cfg config.LoggingConfig) {
	// Set log level
	switch cfg.Level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warn("Invalid log level, using info", "level", cfg.Level)
		log.SetLevel(log.InfoLevel)
	}

	// Configure output format
	if cfg.Format == "json" && cfg.Structured {
		log.SetFormatter(log.JSONFormatter)
	} else {
		log.SetReportCaller(true)
		log.SetReportTimestamp(true)
	}

	log.SetPrefix("[voidmesh-caves] ")

	// Pipeline and library logs go through the shared logger
	logging.SetLevel(logging.GetLogger(), logging.ParseLevel(cfg.Level))
	if cfg.Format == "json" && cfg.Structured {
		logging.GetLogger().SetFormatter(log.JSONFormatter)
	}
}

func initializeDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	database, err := db.Open(cfg.Path)
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	log.Debug("Configuring database connection pool", "max_open_conns", cfg.MaxOpenConns, "max_idle_conns", cfg.MaxIdleConns, "conn_max_lifetime", cfg.ConnMaxLifetime)
	database.SetMaxOpenConns(cfg.MaxOpenConns)
	database.SetMaxIdleConns(cfg.MaxIdleConns)
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Info("Database initialized", "path", cfg.Path)
	return database, nil
}

func startRetentionCleanup(ctx context.Context, caveManager *caves.Manager, cfg config.LibraryConfig) {
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Hour
	}

	log.Debug("Starting cave retention ticker", "interval", interval, "retention", cfg.Retention)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Background services stopped")
			return

		case <-ticker.C:
			start := time.Now()
			n, err := caveManager.DeleteExpired(ctx, cfg.Retention)
			if err != nil {
				log.Error("Failed to delete expired caves", "error", err, "duration", time.Since(start))
				continue
			}
			log.Debug("Retention cycle finished", "deleted", n, "duration", time.Since(start))
		}
	}
}
