// Package feasibility implements the "can submission S start on date D
// given partial schedule P?" predicate (spec §4.6).
package feasibility

import (
	"time"

	"github.com/alexanderramin/kairos/internal/calendar"
	"github.com/alexanderramin/kairos/internal/domain"
)

// BlockReason names which feasibility clause rejected a placement,
// mirroring the teacher's ConstraintBlocker shape
// (internal/scheduler/allocator.go) generalized from session-minute
// blockers to date-placement blockers.
type BlockReason string

const (
	ReasonBeforeStart       BlockReason = "before_scheduling_start"
	ReasonBeforeEarliest    BlockReason = "before_earliest_start"
	ReasonBeforeEngReady    BlockReason = "before_engineering_ready"
	ReasonDependencyPending BlockReason = "dependency_not_cleared"
	ReasonCapacityExceeded  BlockReason = "capacity_exceeded"
	ReasonNotWorkingDay     BlockReason = "not_a_working_day"
	ReasonBlackoutSpan      BlockReason = "spans_blackout"
	ReasonPastDeadline      BlockReason = "past_deadline"
	ReasonVenueIncompatible BlockReason = "venue_incompatible"
)

// Verdict is the predicate's result: either feasible, or blocked with a
// reason naming the failing clause.
type Verdict struct {
	Feasible bool
	Reason   BlockReason
	Detail   string
}

func ok() Verdict { return Verdict{Feasible: true} }

func blocked(reason BlockReason, detail string) Verdict {
	return Verdict{Feasible: false, Reason: reason, Detail: detail}
}

// CanPlace evaluates all eight clauses of spec §4.6 in order, short-
// circuiting on the first violated clause.
func CanPlace(s *domain.Submission, d time.Time, partial *domain.Schedule, cfg *domain.Config) Verdict {
	if d.Before(cfg.EffectiveSchedulingStartDate()) {
		return blocked(ReasonBeforeStart, "candidate date precedes scheduling_start_date")
	}
	if s.EarliestStartDate != nil && d.Before(*s.EarliestStartDate) {
		return blocked(ReasonBeforeEarliest, "candidate date precedes earliest_start_date")
	}
	if s.EngineeringReadyDate != nil && d.Before(*s.EngineeringReadyDate) {
		return blocked(ReasonBeforeEngReady, "candidate date precedes engineering_ready_date")
	}

	for _, dep := range s.DependsOn {
		iv, placed := partial.Get(dep)
		if !placed {
			continue // unscheduled deps are a validation-kernel concern, not a feasibility block
		}
		floor := iv.EndDate.AddDate(0, 0, s.LeadTimeFromParents)
		if d.Before(floor) {
			return blocked(ReasonDependencyPending, "lead time from dependency "+dep+" not yet satisfied")
		}
	}

	duration := cfg.Duration(s)
	end := d.AddDate(0, 0, duration)
	if !withinCapacity(s.ID, d, end, partial, cfg.MaxConcurrentSubmissions) {
		return blocked(ReasonCapacityExceeded, "placement would exceed max_concurrent_submissions")
	}

	if cfg.Options.EnforceBlackouts {
		if !calendar.IsWorkingDay(d, cfg.BlackoutDates, true) {
			return blocked(ReasonNotWorkingDay, "candidate start date is a weekend or blackout day")
		}
		for day := d; day.Before(end); day = day.AddDate(0, 0, 1) {
			if calendar.IsBlackout(day, cfg.BlackoutDates) {
				return blocked(ReasonBlackoutSpan, "interval spans a blackout day")
			}
		}
	}

	if deadline, hasDeadline := cfg.ResolvedDeadline(s); hasDeadline && cfg.Options.StrictDeadlines {
		if end.After(deadline) {
			return blocked(ReasonPastDeadline, "interval end would exceed the conference deadline")
		}
	}

	if conf, hasConf := cfg.ResolvedConference(s); hasConf {
		if !conf.Accepts(s.Kind) {
			return blocked(ReasonVenueIncompatible, "conference does not accept this submission kind")
		}
	}

	return ok()
}

// withinCapacity reports whether adding [start, end) for submissionID
// keeps every day's load within limit, counting the candidate's own
// span once even if submissionID already appears in partial (so
// re-evaluating a not-yet-committed candidate is idempotent).
func withinCapacity(submissionID string, start, end time.Time, partial *domain.Schedule, limit int) bool {
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		load := 0
		for id, iv := range partial.Entries {
			if id == submissionID {
				continue
			}
			if iv.Contains(day) {
				load++
			}
		}
		load++ // the candidate's own occupancy of this day
		if load > limit {
			return false
		}
	}
	return true
}
