package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schedule_runs (
		id           TEXT PRIMARY KEY,
		strategy     TEXT NOT NULL
		             CHECK(strategy IN ('greedy','stochastic','lookahead','backtracking','heuristic','optimal')),
		quality      REAL NOT NULL DEFAULT 0,
		efficiency   REAL NOT NULL DEFAULT 0,
		total_penalty REAL NOT NULL DEFAULT 0,
		makespan_days INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		run_id        TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		submission_id TEXT NOT NULL,
		start_date    TEXT NOT NULL,
		end_date      TEXT NOT NULL,
		PRIMARY KEY (run_id, submission_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_run ON schedule_entries(run_id)`,

	`CREATE TABLE IF NOT EXISTS schedule_informational (
		run_id TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		note   TEXT NOT NULL,
		seq    INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_informational_run ON schedule_informational(run_id)`,
}
