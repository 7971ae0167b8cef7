package validation

import (
	"fmt"

	"github.com/alexanderramin/kairos/internal/domain"
)

// ValidateSchedule runs every check against sched and cfg and returns
// their composite: violations is the union, is_valid the conjunction
// (spec §4.3 "Orchestrator").
func ValidateSchedule(sched *domain.Schedule, cfg *domain.Config) ValidationResult {
	checks := []ValidationResult{
		CheckDeadlines(sched, cfg),
		CheckDependencies(sched, cfg),
		CheckResources(sched, cfg),
		CheckVenueCompatibility(sched, cfg),
		CheckSingleConferencePolicy(sched, cfg),
		CheckBlackouts(sched, cfg),
	}

	var all []Violation
	valid := true
	for _, r := range checks {
		all = append(all, r.Violations...)
		valid = valid && r.IsValid
	}

	return ValidationResult{
		IsValid:    valid,
		Violations: all,
		Summary:    fmt.Sprintf("%d total violation(s) across %d checks", len(all), len(checks)),
		Metadata:   map[string]string{},
	}
}
