package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/VoidMesh/caves/cmd/debug/models"
	"github.com/VoidMesh/caves/internal/caves"
	"github.com/VoidMesh/caves/internal/config"
	"github.com/VoidMesh/caves/internal/db"
	"github.com/VoidMesh/caves/internal/logging"
	"github.com/VoidMesh/caves/services/cave"
)

func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.Database.Path, "Path to the SQLite database")
	startView := flag.String("view", "menu", "Starting view (menu, explorer, library)")
	seed := flag.String("seed", "", "Seed for the first generated cave (random if empty)")
	logLevel := flag.String("log", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Setup logging
	switch *logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
	logging.SetLevel(logging.GetLogger(), logging.ParseLevel(*logLevel))

	// Log to a file while the TUI owns the terminal
	logOutput := io.Discard
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		logOutput = f
	}

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal("Failed to open database", "error", err, "path", *dbPath)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run database migrations", "error", err)
	}

	generator := cave.NewServiceWithDefaultLogger()
	manager := caves.NewManager(database, generator, cfg.Generation.CaveConfig(), caves.Limits{
		MaxDimension: cfg.Generation.MaxDimension,
		MaxOctaves:   cfg.Generation.MaxOctaves,
	})

	app := models.NewApp(manager, generator, *seed, *startView)

	program := tea.NewProgram(app, tea.WithAltScreen())

	log.Info("Starting VoidMesh Caves Debug Tool", "db_path", *dbPath, "start_view", *startView)

	log.SetOutput(logOutput)
	logging.GetLogger().SetOutput(logOutput)
	_, err = program.Run()
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Fatal("Error running debug tool", "error", err)
	}
}
