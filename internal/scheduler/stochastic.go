package scheduler

import (
	"math/rand"
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
)

// Stochastic runs the same day-by-day loop as Greedy, but perturbs each
// candidate's ranking score with Gaussian noise scaled by
// randomness_factor, producing a distribution of schedules across runs
// (spec §4.7). Determinism (spec §5, §8.4) is achieved by seeding from
// Config.RandomSeed when present; otherwise a fresh OS-seeded source is
// used and two runs may differ.
type Stochastic struct {
	Config *domain.Config
	rng    *rand.Rand
}

// NewStochastic constructs a Stochastic strategy over cfg.
func NewStochastic(cfg *domain.Config) *Stochastic {
	var src rand.Source
	if cfg.RandomSeed != nil {
		src = rand.NewSource(*cfg.RandomSeed)
	} else {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Stochastic{Config: cfg, rng: rand.New(src)}
}

func (st *Stochastic) Schedule() (*domain.Schedule, *domain.EngineError) {
	noise := func(s domain.Submission, cfg *domain.Config) float64 {
		return st.rng.NormFloat64() * cfg.RandomnessFactor * 10
	}
	sched, err := runRankedPlacement(st.Config, noise)
	if sched != nil {
		sched.Strategy = "stochastic"
	}
	return sched, err
}
