package domain

import (
	"sort"
	"time"
)

// Interval is a half-inclusive range [StartDate, EndDate) in days, per
// the half-open concurrency-cap convention fixed in spec §9.
type Interval struct {
	StartDate time.Time
	EndDate   time.Time
}

// Days returns the interval's duration in days.
func (iv Interval) Days() int {
	return int(iv.EndDate.Sub(iv.StartDate).Hours() / 24)
}

// Contains reports whether day d falls within [StartDate, EndDate).
func (iv Interval) Contains(d time.Time) bool {
	return !d.Before(iv.StartDate) && d.Before(iv.EndDate)
}

// Overlaps reports whether two half-open intervals share any day.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.StartDate.Before(other.EndDate) && other.StartDate.Before(iv.EndDate)
}

// Schedule maps submission ID to its assigned Interval. It is built up
// incrementally by a strategy and returned whole; the engine never
// mutates a Schedule after returning it (spec §3 Lifecycle).
type Schedule struct {
	RunID       string
	GeneratedAt time.Time
	Entries     map[string]Interval

	// Strategy names which strategy produced this schedule (spec §6
	// strategy tags), for the saved-schedule store and CLI output.
	Strategy string

	// Informational holds non-fatal notices attached to the schedule —
	// e.g. a MILP solver timeout/infeasibility that triggered a Greedy
	// fallback (spec §7: "surfaces as a non-fatal informational outcome
	// on the returned Schedule"). Never a substitute for an error.
	Informational []string
}

// NewSchedule returns an empty, initialized Schedule.
func NewSchedule() *Schedule {
	return &Schedule{Entries: make(map[string]Interval)}
}

// Set records submission id's interval. Callers must not alias the
// Interval back into mutable state after calling Set.
func (s *Schedule) Set(id string, iv Interval) {
	if s.Entries == nil {
		s.Entries = make(map[string]Interval)
	}
	s.Entries[id] = iv
}

// Get returns the interval assigned to id, if any.
func (s *Schedule) Get(id string) (Interval, bool) {
	iv, ok := s.Entries[id]
	return iv, ok
}

// Has reports whether id has been placed.
func (s *Schedule) Has(id string) bool {
	_, ok := s.Entries[id]
	return ok
}

// Len returns the number of scheduled submissions.
func (s *Schedule) Len() int {
	return len(s.Entries)
}

// Bounds returns the earliest start and latest end across all entries.
// ok is false for an empty schedule.
func (s *Schedule) Bounds() (start, end time.Time, ok bool) {
	for _, iv := range s.Entries {
		if !ok || iv.StartDate.Before(start) {
			start = iv.StartDate
		}
		if !ok || iv.EndDate.After(end) {
			end = iv.EndDate
		}
		ok = true
	}
	return start, end, ok
}

// Makespan returns the number of days between the earliest start and
// the latest end (spec GLOSSARY: Makespan).
func (s *Schedule) Makespan() int {
	start, end, ok := s.Bounds()
	if !ok {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// ScheduleEntry is a flattened (id, interval) pair, convenient for
// deterministic iteration and table projection.
type ScheduleEntry struct {
	SubmissionID string
	Interval     Interval
}

// SortedEntries returns the schedule's entries ordered by start date,
// then submission ID ascending, for deterministic output.
func (s *Schedule) SortedEntries() []ScheduleEntry {
	out := make([]ScheduleEntry, 0, len(s.Entries))
	for id, iv := range s.Entries {
		out = append(out, ScheduleEntry{SubmissionID: id, Interval: iv})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Interval.StartDate.Equal(b.Interval.StartDate) {
			return a.Interval.StartDate.Before(b.Interval.StartDate)
		}
		return a.SubmissionID < b.SubmissionID
	})
	return out
}
