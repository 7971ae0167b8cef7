// Package scheduler implements the scheduler strategy family (spec
// §4.7): a common feasibility kernel (internal/feasibility), a shared
// topological order (internal/topo), and six strategies that differ
// only in how they pick the next (submission, start_date).
package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
)

// Strategy is the single entry point every scheduler exposes (spec §9:
// "a single trait/interface exposing schedule(&self) -> Result<Schedule,
// EngineError>").
type Strategy interface {
	Schedule() (*domain.Schedule, *domain.EngineError)
}

// readySubmissions returns, from a topological order, the IDs not yet
// in schedule whose in-config dependencies are all already scheduled.
func readySubmissions(order []string, cfg *domain.Config, sched *domain.Schedule) []string {
	var ready []string
	for _, id := range order {
		if sched.Has(id) {
			continue
		}
		if allDepsScheduled(cfg.Submissions[id], cfg, sched) {
			ready = append(ready, id)
		}
	}
	return ready
}

func allDepsScheduled(s *domain.Submission, cfg *domain.Config, sched *domain.Schedule) bool {
	for _, dep := range s.DependsOn {
		if _, inConfig := cfg.Submissions[dep]; !inConfig {
			continue
		}
		if !sched.Has(dep) {
			return false
		}
	}
	return true
}

// activeCount returns how many submissions have an interval spanning
// day, excluding exceptID (used while re-checking a not-yet-committed
// candidate's own prospective day).
func activeCount(sched *domain.Schedule, day time.Time, exceptID string) int {
	n := 0
	for id, iv := range sched.Entries {
		if id == exceptID {
			continue
		}
		if iv.Contains(day) {
			n++
		}
	}
	return n
}

// horizon returns the scheduling horizon deadline beyond which a strict
// strategy gives up (spec §4.7 Greedy: "the horizon
// (conference_response_time_days past the latest deadline, doubled)").
func horizon(cfg *domain.Config) time.Time {
	latest := cfg.SchedulingStartDate
	for _, c := range cfg.Conferences {
		for _, dl := range c.Deadlines {
			if dl.After(latest) {
				latest = dl
			}
		}
	}
	return latest.AddDate(0, 0, cfg.ConferenceResponseTimeDays*2)
}

// unplacedIDs returns every submission ID in cfg not present in sched,
// sorted for deterministic error messages.
func unplacedIDs(cfg *domain.Config, sched *domain.Schedule) []string {
	var out []string
	for id := range cfg.Submissions {
		if !sched.Has(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
