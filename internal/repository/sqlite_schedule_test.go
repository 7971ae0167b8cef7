package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/kairos/internal/analytics"
	"github.com/alexanderramin/kairos/internal/db"
	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *SQLiteScheduleRepo {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewSQLiteScheduleRepo(conn)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	cfg := domain.NewConfig()
	cfg.SchedulingStartDate = monday
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper}

	sched := domain.NewSchedule()
	sched.RunID = "run-1"
	sched.Strategy = "greedy"
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 30)})
	sched.Informational = append(sched.Informational, "fell back to greedy: too_large")

	metrics := analytics.Analyze(sched, cfg)

	require.NoError(t, repo.Save(ctx, sched, metrics))

	loaded, err := repo.Load(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, "run-1", loaded.RunID)
	require.Equal(t, "greedy", loaded.Strategy)
	require.Equal(t, metrics.Quality, loaded.Quality)
	iv, ok := loaded.Schedule.Get("p1")
	require.True(t, ok)
	require.True(t, iv.StartDate.Equal(monday))
	require.Equal(t, []string{"fell back to greedy: too_large"}, loaded.Schedule.Informational)
}

func TestListAndDelete(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	cfg := domain.NewConfig()
	cfg.SchedulingStartDate = monday

	sched := domain.NewSchedule()
	sched.RunID = "run-a"
	sched.Strategy = "greedy"
	metrics := analytics.Analyze(sched, cfg)
	require.NoError(t, repo.Save(ctx, sched, metrics))

	runs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	require.NoError(t, repo.Delete(ctx, "run-a"))
	_, err = repo.Load(ctx, "run-a")
	require.ErrorIs(t, err, ErrNotFound)
}
