package scoring

import "github.com/alexanderramin/kairos/internal/domain"

// Quality score weights (spec §4.4): named constants so swapping them
// never requires touching the formula itself.
const (
	qualityDeadlineWeight   = 0.4
	qualityDependencyWeight = 0.3
	qualityResourceWeight   = 0.3

	qualityResourceValidScore   = 100.0
	qualityResourceInvalidScore = 50.0
)

// ScoreQuality computes the 0-100 quality score: a weighted combination
// of deadline compliance rate, dependency satisfaction rate, and a
// binary resource-validity score (spec §4.4).
func ScoreQuality(sched *domain.Schedule, cfg *domain.Config) float64 {
	deadlineCompliance := complianceRate(sched, cfg, deadlineCompliant)
	dependencyCompliance := complianceRate(sched, cfg, dependencyCompliant)

	resourceScore := qualityResourceValidScore
	if !resourcesValid(sched, cfg) {
		resourceScore = qualityResourceInvalidScore
	}

	return qualityDeadlineWeight*deadlineCompliance +
		qualityDependencyWeight*dependencyCompliance +
		qualityResourceWeight*resourceScore
}

// complianceRate is the percentage of scheduled submissions for which
// predicate holds, out of all scheduled submissions with an applicable
// constraint. A config with nothing scheduled is vacuously 100%
// compliant.
func complianceRate(sched *domain.Schedule, cfg *domain.Config, predicate func(s *domain.Submission, iv domain.Interval, sched *domain.Schedule, cfg *domain.Config) (applicable, ok bool)) float64 {
	applicableCount, okCount := 0, 0
	for _, entry := range sched.SortedEntries() {
		s, exists := cfg.Submissions[entry.SubmissionID]
		if !exists {
			continue
		}
		applicable, ok := predicate(s, entry.Interval, sched, cfg)
		if !applicable {
			continue
		}
		applicableCount++
		if ok {
			okCount++
		}
	}
	if applicableCount == 0 {
		return 100.0
	}
	return 100.0 * float64(okCount) / float64(applicableCount)
}

func deadlineCompliant(s *domain.Submission, iv domain.Interval, sched *domain.Schedule, cfg *domain.Config) (bool, bool) {
	deadline, hasDeadline := cfg.ResolvedDeadline(s)
	if !hasDeadline {
		return false, false
	}
	return true, !iv.EndDate.After(deadline)
}

func dependencyCompliant(s *domain.Submission, iv domain.Interval, sched *domain.Schedule, cfg *domain.Config) (bool, bool) {
	if len(s.DependsOn) == 0 {
		return false, false
	}
	for _, dep := range s.DependsOn {
		depIv, scheduled := sched.Get(dep)
		if !scheduled {
			return true, false
		}
		floor := depIv.EndDate.AddDate(0, 0, s.LeadTimeFromParents)
		if iv.StartDate.Before(floor) {
			return true, false
		}
	}
	return true, true
}

func resourcesValid(sched *domain.Schedule, cfg *domain.Config) bool {
	load := make(map[string]int)
	for _, iv := range sched.Entries {
		for d := iv.StartDate; d.Before(iv.EndDate); d = d.AddDate(0, 0, 1) {
			load[d.Format("2006-01-02")]++
		}
	}
	for _, l := range load {
		if l > cfg.MaxConcurrentSubmissions {
			return false
		}
	}
	return true
}
