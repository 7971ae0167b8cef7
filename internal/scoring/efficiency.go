package scoring

import "github.com/alexanderramin/kairos/internal/domain"

// Efficiency score weights and targets (spec §4.4): named constants so
// swapping them never requires touching the formula itself.
const (
	efficiencyResourceWeight = 0.6
	efficiencyTimelineWeight = 0.4

	idealLoadFraction  = 0.8 // resource_efficiency targets 80% of the concurrency cap
	idealDaysPerItem   = 30  // timeline_efficiency's ideal span per scheduled submission
)

// ScoreEfficiency computes the 0-100 efficiency score: 0.6 ×
// resource_efficiency + 0.4 × timeline_efficiency (spec §4.4).
func ScoreEfficiency(sched *domain.Schedule, cfg *domain.Config) float64 {
	return efficiencyResourceWeight*resourceEfficiency(sched, cfg) +
		efficiencyTimelineWeight*timelineEfficiency(sched, cfg)
}

// resourceEfficiency rewards an average daily load near
// idealLoadFraction of max_concurrent_submissions; both under- and
// over-utilization are penalized symmetrically.
func resourceEfficiency(sched *domain.Schedule, cfg *domain.Config) float64 {
	if cfg.MaxConcurrentSubmissions <= 0 || sched.Len() == 0 {
		return 100.0
	}
	start, end, ok := sched.Bounds()
	if !ok {
		return 100.0
	}
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return 100.0
	}

	totalLoad := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		for _, iv := range sched.Entries {
			if iv.Contains(d) {
				totalLoad++
			}
		}
	}
	avgLoad := float64(totalLoad) / float64(days)
	target := idealLoadFraction * float64(cfg.MaxConcurrentSubmissions)
	if target <= 0 {
		return 100.0
	}

	deviation := (avgLoad - target) / target
	if deviation < 0 {
		deviation = -deviation
	}
	score := 100.0 * (1 - deviation)
	if score < 0 {
		score = 0
	}
	return score
}

// timelineEfficiency compares the actual makespan to the ideal of
// idealDaysPerItem days per scheduled submission; a tighter-than-ideal
// schedule scores 100, a looser one degrades proportionally.
func timelineEfficiency(sched *domain.Schedule, cfg *domain.Config) float64 {
	n := sched.Len()
	if n == 0 {
		return 100.0
	}
	ideal := float64(idealDaysPerItem * n)
	actual := float64(sched.Makespan())
	if actual <= ideal {
		return 100.0
	}
	score := 100.0 * ideal / actual
	if score < 0 {
		score = 0
	}
	return score
}
