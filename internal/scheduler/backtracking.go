package scheduler

import (
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/feasibility"
	"github.com/alexanderramin/kairos/internal/topo"
)

// Backtracking performs a classical DFS over the topological order: it
// tries to place each submission at its earliest feasible date; when a
// later submission has no feasible date within max_backtrack_days, it
// unwinds the most recent commitment and tries the next feasible date
// there. Bounded by max_algorithm_iterations (spec §4.7).
type Backtracking struct {
	Config *domain.Config
}

// NewBacktracking constructs a Backtracking strategy over cfg.
func NewBacktracking(cfg *domain.Config) *Backtracking {
	return &Backtracking{Config: cfg}
}

func (b *Backtracking) Schedule() (*domain.Schedule, *domain.EngineError) {
	cfg := b.Config
	order, err := topo.Order(cfg)
	if err != nil {
		return nil, domain.AsEngineError(err)
	}
	n := len(order)
	if n == 0 {
		sched := domain.NewSchedule()
		sched.Strategy = "backtracking"
		return sched, nil
	}

	sched := domain.NewSchedule()
	sched.Strategy = "backtracking"

	// nextTry[i] is the next candidate start date to attempt for
	// order[i]; it advances only when index i is revisited after a
	// backtrack, so the search never repeats a date it already ruled
	// out for a given index.
	nextTry := make([]time.Time, n)
	for i := range nextTry {
		nextTry[i] = cfg.EffectiveSchedulingStartDate()
	}

	iterations := 0
	i := 0
	for i < n {
		iterations++
		if iterations > cfg.MaxAlgorithmIterations {
			return nil, domain.NewInfeasibleError(unplacedIDs(cfg, sched))
		}

		s := cfg.Submissions[order[i]]
		deadline := nextTry[i].AddDate(0, 0, cfg.MaxBacktrackDays)

		placed := false
		for d := nextTry[i]; !d.After(deadline); d = d.AddDate(0, 0, 1) {
			v := feasibility.CanPlace(s, d, sched, cfg)
			if !v.Feasible {
				continue
			}
			placeOn(sched, s, d, cfg)
			placed = true
			i++
			break
		}

		if placed {
			continue
		}

		// No feasible date within the window: unwind the most recent
		// commitment and try the day after its last attempt there.
		if i == 0 {
			return nil, domain.NewInfeasibleError(unplacedIDs(cfg, sched))
		}
		i--
		prevID := order[i]
		prevIv, _ := sched.Get(prevID)
		sched.Entries[prevID] = domain.Interval{} // placeholder cleared below
		delete(sched.Entries, prevID)
		nextTry[i] = prevIv.StartDate.AddDate(0, 0, 1)
		// Reset search cursors for everything after i so they restart
		// from the new earliest-possible date once we reach them again.
		for j := i + 1; j < n; j++ {
			nextTry[j] = cfg.EffectiveSchedulingStartDate()
		}
	}

	return sched, nil
}
