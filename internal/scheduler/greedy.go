package scheduler

import (
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/feasibility"
	"github.com/alexanderramin/kairos/internal/topo"
)

// Greedy walks the calendar day by day from the scheduling start date,
// each day ranking the ready (topologically unblocked) submissions by
// priority and placing as many as the concurrency cap admits, in rank
// order, skipping any candidate the feasibility predicate rejects for
// that day (spec §4.7 Greedy).
type Greedy struct {
	Config *domain.Config
}

// NewGreedy constructs a Greedy strategy over cfg.
func NewGreedy(cfg *domain.Config) *Greedy {
	return &Greedy{Config: cfg}
}

func (g *Greedy) Schedule() (*domain.Schedule, *domain.EngineError) {
	return runRankedPlacement(g.Config, nil)
}

// noiseFunc perturbs a candidate's ranking score; nil means no noise
// (deterministic Greedy). Stochastic supplies a Gaussian perturbation.
type noiseFunc func(domain.Submission, *domain.Config) float64

// runRankedPlacement is the shared day-by-day ranked placement loop
// behind both Greedy and Stochastic (spec §4.7: "Stochastic... [uses]
// Same loop as Greedy, but at each ranking step adds a Gaussian noise").
func runRankedPlacement(cfg *domain.Config, noise noiseFunc) (*domain.Schedule, *domain.EngineError) {
	order, err := topo.Order(cfg)
	if err != nil {
		return nil, domain.AsEngineError(err)
	}

	sched := domain.NewSchedule()
	sched.Strategy = "greedy"
	if noise != nil {
		sched.Strategy = "stochastic"
	}

	if cfg.Options.EarlyAbstractScheduling {
		preplaceAbstracts(cfg, order, sched)
	}

	end := horizon(cfg)
	day := cfg.EffectiveSchedulingStartDate()

	for sched.Len() < len(cfg.Submissions) && !day.After(end) {
		ready := readySubmissions(order, cfg, sched)
		candidates := BuildCandidates(ready, cfg)
		for i := range candidates {
			if noise != nil {
				candidates[i].Noise = noise(*candidates[i].Submission, cfg)
			}
		}
		CanonicalSort(candidates)

		for _, c := range candidates {
			if activeCount(sched, day, "") >= cfg.MaxConcurrentSubmissions {
				break
			}
			v := feasibility.CanPlace(c.Submission, day, sched, cfg)
			if !v.Feasible {
				continue
			}
			placeOn(sched, c.Submission, day, cfg)
		}

		day = day.AddDate(0, 0, 1)
	}

	if sched.Len() < len(cfg.Submissions) {
		return nil, domain.NewInfeasibleError(unplacedIDs(cfg, sched))
	}
	return sched, nil
}

// placeOn commits submission s to start on day, per cfg's duration
// rule (spec §4.2).
func placeOn(sched *domain.Schedule, s *domain.Submission, day time.Time, cfg *domain.Config) {
	duration := cfg.Duration(s)
	sched.Set(s.ID, domain.Interval{StartDate: day, EndDate: day.AddDate(0, 0, duration)})
}

// preplaceAbstracts implements the optional early-abstract scheduling
// affordance (spec §4.7 Greedy): each abstract is pre-placed
// abstract_advance_days before its deadline (or when dependencies
// clear, whichever is later) before the main loop runs.
func preplaceAbstracts(cfg *domain.Config, order []string, sched *domain.Schedule) {
	for _, id := range order {
		s := cfg.Submissions[id]
		if s.Kind != domain.KindAbstract {
			continue
		}
		deadline, hasDeadline := cfg.ResolvedDeadline(s)
		if !hasDeadline {
			continue
		}
		advance := deadline.AddDate(0, 0, -cfg.Options.AbstractAdvanceDays)

		depsClearAt := cfg.EffectiveSchedulingStartDate()
		for _, dep := range s.DependsOn {
			depSub, ok := cfg.Submissions[dep]
			if !ok {
				continue
			}
			depEnd := depSub.EngineeringReadyDate
			if depEnd != nil && depEnd.After(depsClearAt) {
				depsClearAt = *depEnd
			}
		}

		start := advance
		if depsClearAt.After(start) {
			start = depsClearAt
		}
		if start.Before(cfg.EffectiveSchedulingStartDate()) {
			start = cfg.EffectiveSchedulingStartDate()
		}

		v := feasibility.CanPlace(s, start, sched, cfg)
		if v.Feasible {
			placeOn(sched, s, start, cfg)
		}
	}
}
