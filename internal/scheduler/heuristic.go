package scheduler

import (
	"sort"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/feasibility"
	"github.com/alexanderramin/kairos/internal/topo"
)

// Heuristic runs the same day-by-day placement loop as Greedy, but
// re-ranks the ready set by a selectable ordering rule instead of the
// fixed priority-weight ranking (spec §4.7 Heuristic).
type Heuristic struct {
	Config *domain.Config
	Rule   domain.HeuristicRule
}

// NewHeuristic constructs a Heuristic strategy over cfg using rule.
func NewHeuristic(cfg *domain.Config, rule domain.HeuristicRule) *Heuristic {
	return &Heuristic{Config: cfg, Rule: rule}
}

func (h *Heuristic) Schedule() (*domain.Schedule, *domain.EngineError) {
	cfg := h.Config
	order, err := topo.Order(cfg)
	if err != nil {
		return nil, domain.AsEngineError(err)
	}

	sched := domain.NewSchedule()
	sched.Strategy = "heuristic"

	if cfg.Options.EarlyAbstractScheduling {
		preplaceAbstracts(cfg, order, sched)
	}

	end := horizon(cfg)
	day := cfg.EffectiveSchedulingStartDate()

	for sched.Len() < len(cfg.Submissions) && !day.After(end) {
		ready := readySubmissions(order, cfg, sched)
		candidates := BuildCandidates(ready, cfg)
		h.rank(candidates, cfg)

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

// rank reorders candidates in place according to h.Rule, falling back to
// CanonicalSort's priority ordering for RulePriorityWeighted (the
// rule that is, by construction, identical to Greedy's ranking).
func (h *Heuristic) rank(candidates []Candidate, cfg *domain.Config) {
	switch h.Rule {
	case domain.RuleEarliestDeadline:
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			switch {
			case a.Deadline == nil && b.Deadline == nil:
				return a.Submission.ID < b.Submission.ID
			case a.Deadline == nil:
				return false
			case b.Deadline == nil:
				return true
			case !a.Deadline.Equal(*b.Deadline):
				return a.Deadline.Before(*b.Deadline)
			default:
				return a.Submission.ID < b.Submission.ID
			}
		})
	case domain.RuleShortestProcessing:
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			da, db := cfg.Duration(a.Submission), cfg.Duration(b.Submission)
			if da != db {
				return da < db
			}
			return a.Submission.ID < b.Submission.ID
		})
	default: // RulePriorityWeighted, or unset
		CanonicalSort(candidates)
	}
}
