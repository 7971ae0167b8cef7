package scheduler

import (
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/feasibility"
	"github.com/alexanderramin/kairos/internal/topo"
)

// optimalMaxSubmissions bounds the problem size the branch-and-bound
// search will attempt directly; beyond it the search space is
// exponential enough that Greedy is used instead and the fallback is
// recorded as informational, never a fatal error (spec §7).
const optimalMaxSubmissions = 20

// Optimal searches for a minimum-makespan placement via time-indexed
// branch-and-bound over the topological order: at each position it
// tries candidate start dates in ascending order, bounding the search
// by the best complete makespan found so far, and backtracks when a
// partial assignment cannot beat the incumbent. No MILP/LP solver
// library is reachable from this module's dependency pack (see
// DESIGN.md); branch-and-bound over the same feasibility kernel as
// every other strategy is the standard-library substitute.
//
// The search is bounded by config.MILPTimeoutSeconds and by
// optimalMaxSubmissions; either bound crosses over to Greedy and
// attaches a note naming the reason ("time_limit" or "too_large") to
// the returned Schedule (spec §7).
type Optimal struct {
	Config *domain.Config
}

// NewOptimal constructs an Optimal strategy over cfg.
func NewOptimal(cfg *domain.Config) *Optimal {
	return &Optimal{Config: cfg}
}

func (o *Optimal) Schedule() (*domain.Schedule, *domain.EngineError) {
	cfg := o.Config
	order, err := topo.Order(cfg)
	if err != nil {
		return nil, domain.AsEngineError(err)
	}

	if len(order) > optimalMaxSubmissions {
		return fallbackToGreedy(cfg, "too_large")
	}

	deadline := time.Now().Add(time.Duration(cfg.MILPTimeoutSeconds) * time.Second)
	search := &bnbSearch{
		cfg:      cfg,
		order:    order,
		horizon:  horizon(cfg),
		deadline: deadline,
	}

	best := search.run()
	if search.timedOut {
		return fallbackToGreedy(cfg, "time_limit")
	}
	if best == nil {
		return fallbackToGreedy(cfg, "infeasible")
	}

	best.Strategy = "optimal"
	return best, nil
}

func fallbackToGreedy(cfg *domain.Config, reason string) (*domain.Schedule, *domain.EngineError) {
	sched, err := runRankedPlacement(cfg, nil)
	if err != nil {
		return nil, err
	}
	sched.Strategy = "optimal"
	sched.Informational = append(sched.Informational,
		"optimal strategy fell back to greedy: "+reason)
	return sched, nil
}

// bnbSearch holds the branch-and-bound state for a single Optimal.Schedule call.
type bnbSearch struct {
	cfg      *domain.Config
	order    []string
	horizon  time.Time
	deadline time.Time

	iterations int
	timedOut   bool

	best         *domain.Schedule
	bestMakespan int
}

func (s *bnbSearch) run() *domain.Schedule {
	working := domain.NewSchedule()
	s.descend(working, 0)
	return s.best
}

// descend assigns a start date to order[i], trying candidates in
// ascending date order from the scheduling start date to the horizon,
// pruning any branch whose partial makespan already exceeds the best
// complete makespan found so far.
func (s *bnbSearch) descend(working *domain.Schedule, i int) {
	s.iterations++
	if s.iterations > s.cfg.MaxAlgorithmIterations {
		return
	}
	if s.iterations%256 == 0 && time.Now().After(s.deadline) {
		s.timedOut = true
		return
	}

	if i == len(s.order) {
		makespan := working.Makespan()
		if s.best == nil || makespan < s.bestMakespan {
			s.best = cloneSchedule(working)
			s.bestMakespan = makespan
		}
		return
	}

	id := s.order[i]
	sub := s.cfg.Submissions[id]

	if s.best != nil && working.Makespan() > s.bestMakespan {
		return
	}

	for d := s.cfg.EffectiveSchedulingStartDate(); !d.After(s.horizon); d = d.AddDate(0, 0, 1) {
		v := feasibility.CanPlace(sub, d, working, s.cfg)
		if !v.Feasible {
			continue
		}
		placeOn(working, sub, d, s.cfg)
		s.descend(working, i+1)
		delete(working.Entries, id)
		if s.timedOut {
			return
		}
	}
}
