package scheduler

import (
	"testing"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDeterminismConfig returns a moderately branching configuration:
// every strategy except Stochastic must produce bit-identical schedules
// across repeated runs against it (spec §5, §8.4).
func buildDeterminismConfig() *domain.Config {
	cfg := baseSchedulerConfig()
	cfg.Submissions["p1"] = paperSub("p1", "c1")
	cfg.Submissions["p2"] = paperSub("p2", "c1")
	cfg.Submissions["p3"] = paperSub("p3", "c1", "p1")
	cfg.Submissions["p4"] = paperSub("p4", "c1", "p2")
	return cfg
}

func scheduleFingerprint(s *domain.Schedule) map[string]domain.Interval {
	out := make(map[string]domain.Interval, len(s.Entries))
	for id, iv := range s.Entries {
		out[id] = iv
	}
	return out
}

func TestDeterministicStrategiesRepeatBitIdentical(t *testing.T) {
	constructors := map[string]func(cfg *domain.Config) Strategy{
		"greedy":       func(cfg *domain.Config) Strategy { return NewGreedy(cfg) },
		"lookahead":    func(cfg *domain.Config) Strategy { return NewLookahead(cfg) },
		"backtracking": func(cfg *domain.Config) Strategy { return NewBacktracking(cfg) },
		"heuristic":    func(cfg *domain.Config) Strategy { return NewHeuristic(cfg, domain.RulePriorityWeighted) },
	}

	for name, newStrategy := range constructors {
		t.Run(name, func(t *testing.T) {
			cfg1 := buildDeterminismConfig()
			cfg2 := buildDeterminismConfig()

			sched1, err1 := newStrategy(cfg1).Schedule()
			sched2, err2 := newStrategy(cfg2).Schedule()
			require.Nil(t, err1)
			require.Nil(t, err2)

			assert.Equal(t, scheduleFingerprint(sched1), scheduleFingerprint(sched2))
		})
	}
}
