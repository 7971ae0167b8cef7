package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/kairos/internal/cli"
	"github.com/alexanderramin/kairos/internal/db"
	"github.com/alexanderramin/kairos/internal/logging"
	"github.com/alexanderramin/kairos/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New(os.Getenv("KAIROS_LOG_LEVEL"))

	// Determine DB path: env var or default ~/.kairos/kairos.db
	dbPath := os.Getenv("KAIROS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".kairos", "kairos.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Logger: logger,
		Repo:   repository.NewSQLiteScheduleRepo(database),
	}

	root := cli.NewRootCmd(app)
	return root.Execute()
}
