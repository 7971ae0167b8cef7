package scheduler

import (
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/feasibility"
	"github.com/alexanderramin/kairos/internal/topo"
)

// lookaheadTopK bounds how many top-ranked candidates are simulated per
// slot; simulating the entire ready set would make the lookahead no
// cheaper than exhaustive search.
const lookaheadTopK = 3

// Lookahead scores the top-K ranked candidates for each open slot by
// simulating lookahead_window_days of greedy placement from each
// hypothetical state, then commits whichever candidate yields the
// highest downstream slack — the sum of (deadline − end_date) over the
// submissions the simulation manages to place within the window — plus
// a bonus proportional to how many direct successors the placement
// unlocks (spec §4.7).
type Lookahead struct {
	Config *domain.Config
}

// NewLookahead constructs a Lookahead strategy over cfg.
func NewLookahead(cfg *domain.Config) *Lookahead {
	return &Lookahead{Config: cfg}
}

func (l *Lookahead) Schedule() (*domain.Schedule, *domain.EngineError) {
	cfg := l.Config
	order, err := topo.Order(cfg)
	if err != nil {
		return nil, domain.AsEngineError(err)
	}

	sched := domain.NewSchedule()
	sched.Strategy = "lookahead"

	end := horizon(cfg)
	day := cfg.EffectiveSchedulingStartDate()

	for sched.Len() < len(cfg.Submissions) && !day.After(end) {
		for activeCount(sched, day, "") < cfg.MaxConcurrentSubmissions {
			ready := readySubmissions(order, cfg, sched)
			candidates := BuildCandidates(ready, cfg)
			CanonicalSort(candidates)
			if len(candidates) > lookaheadTopK {
				candidates = candidates[:lookaheadTopK]
			}

			best, bestScore, found := Candidate{}, 0.0, false
			for _, c := range candidates {
				v := feasibility.CanPlace(c.Submission, day, sched, cfg)
				if !v.Feasible {
					continue
				}
				score := simulateDownstreamSlack(cfg, order, sched, c.Submission, day) +
					cfg.LookaheadBonusIncrement*float64(countSuccessors(cfg, c.Submission.ID))
				if !found || score > bestScore {
					best, bestScore, found = c, score, true
				}
			}
			if !found {
				break
			}
			placeOn(sched, best.Submission, day, cfg)
		}
		day = day.AddDate(0, 0, 1)
	}

	if sched.Len() < len(cfg.Submissions) {
		return nil, domain.NewInfeasibleError(unplacedIDs(cfg, sched))
	}
	return sched, nil
}

// countSuccessors returns the number of submissions that directly
// depend on id (spec §9 Open Question: applied unconditionally, even to
// already-placed successors — see DESIGN.md).
func countSuccessors(cfg *domain.Config, id string) int {
	n := 0
	for _, s := range cfg.Submissions {
		for _, dep := range s.DependsOn {
			if dep == id {
				n++
				break
			}
		}
	}
	return n
}

// simulateDownstreamSlack hypothetically places candidate on day, then
// runs a bounded greedy simulation over the next
// config.LookaheadWindowDays, summing (deadline − end_date) in days for
// every submission the simulation manages to place within the window.
// The simulation operates on a cloned schedule; nothing it does is
// committed to real.
func simulateDownstreamSlack(cfg *domain.Config, order []string, real *domain.Schedule, candidate *domain.Submission, day time.Time) float64 {
	sim := cloneSchedule(real)
	placeOn(sim, candidate, day, cfg)

	windowEnd := day.AddDate(0, 0, cfg.LookaheadWindowDays)
	slack := 0.0

	for d := day; d.Before(windowEnd); d = d.AddDate(0, 0, 1) {
		ready := readySubmissions(order, cfg, sim)
		cands := BuildCandidates(ready, cfg)
		CanonicalSort(cands)
		for _, c := range cands {
			if activeCount(sim, d, "") >= cfg.MaxConcurrentSubmissions {
				break
			}
			v := feasibility.CanPlace(c.Submission, d, sim, cfg)
			if !v.Feasible {
				continue
			}
			placeOn(sim, c.Submission, d, cfg)
			if dl, ok := cfg.ResolvedDeadline(c.Submission); ok {
				iv, _ := sim.Get(c.Submission.ID)
				slack += dl.Sub(iv.EndDate).Hours() / 24
			}
		}
	}
	return slack
}

func cloneSchedule(s *domain.Schedule) *domain.Schedule {
	out := domain.NewSchedule()
	for id, iv := range s.Entries {
		out.Set(id, iv)
	}
	return out
}
