// Package repository persists scheduling engine runs to SQLite (spec
// §12), adapted from the teacher's own repository package: one
// interface per aggregate, one SQLite-backed implementation, scanning
// by hand rather than through an ORM.
package repository

import (
	"context"

	"github.com/alexanderramin/kairos/internal/analytics"
	"github.com/alexanderramin/kairos/internal/domain"
)

// SavedRun is a persisted schedule together with the scalar metrics
// computed for it at save time. The full penalty breakdown is not
// persisted; only its total is — callers needing the breakdown
// recompute it with scoring.ScorePenalties against the loaded Schedule.
type SavedRun struct {
	RunID        string
	Strategy     string
	GeneratedAt  string
	Schedule     *domain.Schedule
	Quality      float64
	Efficiency   float64
	TotalPenalty float64
	MakespanDays int
}

// ScheduleRepo persists engine runs: a produced Schedule plus the
// ScheduleMetrics computed for it, keyed by RunID.
type ScheduleRepo interface {
	Save(ctx context.Context, sched *domain.Schedule, metrics analytics.ScheduleMetrics) error
	Load(ctx context.Context, runID string) (*SavedRun, error)
	List(ctx context.Context) ([]*SavedRun, error)
	Delete(ctx context.Context, runID string) error
}
