package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/kairos/internal/analytics"
	"github.com/alexanderramin/kairos/internal/calendar"
	"github.com/alexanderramin/kairos/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db *sql.DB
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) Save(ctx context.Context, sched *domain.Schedule, metrics analytics.ScheduleMetrics) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	runID := sched.RunID
	if runID == "" {
		return fmt.Errorf("saving schedule: empty RunID")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_runs WHERE id = ?`, runID); err != nil {
		return fmt.Errorf("clearing prior run: %w", err)
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO schedule_runs (id, strategy, quality, efficiency, total_penalty, makespan_days, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, sched.Strategy, metrics.Quality, metrics.Efficiency, metrics.Penalty.Total(), metrics.MakespanDays, nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule run: %w", err)
	}

	for _, entry := range sched.SortedEntries() {
		_, err := tx.ExecContext(ctx, `INSERT INTO schedule_entries (run_id, submission_id, start_date, end_date) VALUES (?, ?, ?, ?)`,
			runID, entry.SubmissionID, calendar.FormatISODate(entry.Interval.StartDate), calendar.FormatISODate(entry.Interval.EndDate),
		)
		if err != nil {
			return fmt.Errorf("inserting schedule entry %q: %w", entry.SubmissionID, err)
		}
	}

	for i, note := range sched.Informational {
		if _, err := tx.ExecContext(ctx, `INSERT INTO schedule_informational (run_id, note, seq) VALUES (?, ?, ?)`, runID, note, i); err != nil {
			return fmt.Errorf("inserting informational note %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteScheduleRepo) Load(ctx context.Context, runID string) (*SavedRun, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, strategy, quality, efficiency, total_penalty, makespan_days, created_at
		FROM schedule_runs WHERE id = ?`, runID)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	sched, err := r.loadEntries(ctx, runID)
	if err != nil {
		return nil, err
	}
	run.Schedule = sched
	return run, nil
}

func (r *SQLiteScheduleRepo) List(ctx context.Context) ([]*SavedRun, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, strategy, quality, efficiency, total_penalty, makespan_days, created_at
		FROM schedule_runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing schedule runs: %w", err)
	}
	defer rows.Close()

	var out []*SavedRun
	for rows.Next() {
		run, err := scanRunFromRows(rows)
		if err != nil {
			return nil, err
		}
		sched, err := r.loadEntries(ctx, run.RunID)
		if err != nil {
			return nil, err
		}
		run.Schedule = sched
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule runs: %w", err)
	}
	return out, nil
}

func (r *SQLiteScheduleRepo) Delete(ctx context.Context, runID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_runs WHERE id = ?`, runID); err != nil {
		return fmt.Errorf("deleting schedule run %q: %w", runID, err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) loadEntries(ctx context.Context, runID string) (*domain.Schedule, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT submission_id, start_date, end_date FROM schedule_entries WHERE run_id = ?`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule entries for %q: %w", runID, err)
	}
	defer rows.Close()

	sched := domain.NewSchedule()
	sched.RunID = runID
	for rows.Next() {
		var id, startStr, endStr string
		if err := rows.Scan(&id, &startStr, &endStr); err != nil {
			return nil, fmt.Errorf("scanning schedule entry: %w", err)
		}
		start, err := calendar.ParseISODate(startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date %q: %w", startStr, err)
		}
		end, err := calendar.ParseISODate(endStr)
		if err != nil {
			return nil, fmt.Errorf("parsing end_date %q: %w", endStr, err)
		}
		sched.Set(id, domain.Interval{StartDate: start, EndDate: end})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}

	noteRows, err := r.db.QueryContext(ctx, `SELECT note FROM schedule_informational WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing informational notes for %q: %w", runID, err)
	}
	defer noteRows.Close()
	for noteRows.Next() {
		var note string
		if err := noteRows.Scan(&note); err != nil {
			return nil, fmt.Errorf("scanning informational note: %w", err)
		}
		sched.Informational = append(sched.Informational, note)
	}

	return sched, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row *sql.Row) (*SavedRun, error) {
	run, err := scanRunRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return run, err
}

func scanRunFromRows(rows *sql.Rows) (*SavedRun, error) {
	return scanRunRow(rows)
}

func scanRunRow(s rowScanner) (*SavedRun, error) {
	var run SavedRun
	var createdAt string
	if err := s.Scan(&run.RunID, &run.Strategy, &run.Quality, &run.Efficiency, &run.TotalPenalty, &run.MakespanDays, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning schedule run: %w", err)
	}
	run.GeneratedAt = createdAt
	return &run, nil
}
