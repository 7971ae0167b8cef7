package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/kairos/internal/analytics"
	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/scheduler"
	"github.com/alexanderramin/kairos/internal/validation"
)

// Error is this package's name for the engine's error type. The type
// itself lives in domain (domain.EngineError) so that internal/topo and
// internal/scheduler — which this package imports — can construct and
// return it without importing internal/engine back.
type Error = domain.EngineError

// Result is everything a single engine run produces: the placed
// Schedule, its validation outcome, and its analytics (spec §4.8/§4.9
// run end-to-end on whatever the strategy returns, valid or not — a
// Schedule with violations is still reported, never discarded).
type Result struct {
	Schedule   *domain.Schedule
	Validation validation.ValidationResult
	Metrics    analytics.ScheduleMetrics
}

// Run dispatches tag to its strategy, stamps the returned Schedule with
// a RunID and GeneratedAt, then runs validation and analytics over it
// (spec §6 "run the full pipeline: config -> scheduler -> validation ->
// scoring -> analytics"). Run itself returns an error only when no
// schedule could be produced — cyclic dependencies, an unknown tag, or
// exhausting the scheduling horizon (spec §7); a schedule with deadline/resource/dependency
// violations is not an error, it is a Result whose Validation.IsValid
// is false.
func Run(tag domain.StrategyTag, cfg *domain.Config) (*Result, *Error) {
	strat, err := scheduler.NewStrategy(tag, cfg)
	if err != nil {
		return nil, err
	}

	sched, err := strat.Schedule()
	if err != nil {
		return nil, err
	}

	sched.RunID = uuid.NewString()
	sched.GeneratedAt = time.Now().UTC()

	result := validation.ValidateSchedule(sched, cfg)
	metrics := analytics.Analyze(sched, cfg)

	return &Result{
		Schedule:   sched,
		Validation: result,
		Metrics:    metrics,
	}, nil
}
