package scheduler

import (
	"github.com/alexanderramin/kairos/internal/domain"
)

// NewStrategy dispatches a strategy tag to its constructor (spec §6:
// "create_scheduler(tag, config) -> Box<dyn Strategy>"). An unrecognized
// tag is a configuration error, not a runtime panic.
func NewStrategy(tag domain.StrategyTag, cfg *domain.Config) (Strategy, *domain.EngineError) {
	switch tag {
	case domain.StrategyGreedy:
		return NewGreedy(cfg), nil
	case domain.StrategyStochastic, domain.StrategyRandom:
		return NewStochastic(cfg), nil
	case domain.StrategyLookahead:
		return NewLookahead(cfg), nil
	case domain.StrategyBacktracking:
		return NewBacktracking(cfg), nil
	case domain.StrategyHeuristic:
		return NewHeuristic(cfg, domain.RulePriorityWeighted), nil
	case domain.StrategyOptimal, domain.StrategyAdvanced:
		return NewOptimal(cfg), nil
	default:
		return nil, domain.NewUnknownStrategyError(string(tag))
	}
}
