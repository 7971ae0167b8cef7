package validation

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/kairos/internal/calendar"
	"github.com/alexanderramin/kairos/internal/domain"
)

// CheckDeadlines emits a DeadlineViolation for every scheduled submission
// whose resolved conference deadline exists and was exceeded (spec §4.3).
func CheckDeadlines(sched *domain.Schedule, cfg *domain.Config) ValidationResult {
	var violations []Violation
	for _, id := range sortedIDs(cfg) {
		s := cfg.Submissions[id]
		iv, placed := sched.Get(id)
		if !placed {
			continue
		}
		deadline, hasDeadline := cfg.ResolvedDeadline(s)
		if !hasDeadline {
			continue
		}
		if !iv.EndDate.After(deadline) {
			continue
		}
		daysLate := calendar.DurationBetween(deadline, iv.EndDate)
		violations = append(violations, Violation{
			SubmissionID: id,
			Description:  fmt.Sprintf("submission %q ended %d day(s) past its deadline", id, daysLate),
			Severity:     domain.SeverityHigh,
			Kind:         "deadline",
			DeadlineViolation: &DeadlineViolation{DaysLate: daysLate},
		})
	}
	return newResult(violations, fmt.Sprintf("%d deadline violation(s)", len(violations)))
}

// CheckDependencies emits a DependencyViolation for every dependency edge
// that is unresolved, unscheduled, or violates its lead-time floor (spec
// §4.3).
func CheckDependencies(sched *domain.Schedule, cfg *domain.Config) ValidationResult {
	var violations []Violation
	for _, id := range sortedIDs(cfg) {
		s := cfg.Submissions[id]
		for _, dep := range s.DependsOn {
			depSub, inConfig := cfg.Submissions[dep]
			if !inConfig {
				violations = append(violations, Violation{
					SubmissionID: id,
					Description:  fmt.Sprintf("submission %q depends on %q, which does not exist in config", id, dep),
					Severity:     domain.SeverityHigh,
					Kind:         "dependency",
					DependencyViolation: &DependencyViolation{DependencyID: dep, Issue: IssueMissingDependency},
				})
				continue
			}

			depIv, depScheduled := sched.Get(dep)
			if !depScheduled {
				violations = append(violations, Violation{
					SubmissionID: id,
					Description:  fmt.Sprintf("submission %q depends on %q, which was never scheduled", id, dep),
					Severity:     domain.SeverityHigh,
					Kind:         "dependency",
					DependencyViolation: &DependencyViolation{DependencyID: dep, Issue: IssueInvalidDependency},
				})
				continue
			}
			_ = depSub

			iv, scheduled := sched.Get(id)
			if !scheduled {
				continue
			}
			floor := depIv.EndDate.AddDate(0, 0, s.LeadTimeFromParents)
			if iv.StartDate.Before(floor) {
				days := calendar.DurationBetween(iv.StartDate, floor)
				violations = append(violations, Violation{
					SubmissionID: id,
					Description:  fmt.Sprintf("submission %q starts %d day(s) before dependency %q's lead time clears", id, days, dep),
					Severity:     domain.SeverityHigh,
					Kind:         "dependency",
					DependencyViolation: &DependencyViolation{DependencyID: dep, Issue: IssueTimingViolation, DaysViolation: days},
				})
			}
		}
	}
	return newResult(violations, fmt.Sprintf("%d dependency violation(s)", len(violations)))
}

// CheckResources computes the daily load histogram across every
// scheduled interval and emits a ResourceViolation for each day whose
// load exceeds max_concurrent_submissions (spec §4.3). Accumulation
// rule: one violation per over-capacity day, carrying that day's full
// excess (not one violation per excess unit) — see DESIGN.md.
func CheckResources(sched *domain.Schedule, cfg *domain.Config) ValidationResult {
	load := make(map[string]int)
	dayOf := make(map[string]struct{})
	for _, iv := range sched.Entries {
		for d := iv.StartDate; d.Before(iv.EndDate); d = d.AddDate(0, 0, 1) {
			key := calendar.FormatISODate(d)
			load[key]++
			dayOf[key] = struct{}{}
		}
	}

	var days []string
	for d := range dayOf {
		days = append(days, d)
	}
	sort.Strings(days)

	var violations []Violation
	for _, d := range days {
		l := load[d]
		if l <= cfg.MaxConcurrentSubmissions {
			continue
		}
		excess := l - cfg.MaxConcurrentSubmissions
		violations = append(violations, Violation{
			Description: fmt.Sprintf("day %s carries load %d against limit %d", d, l, cfg.MaxConcurrentSubmissions),
			Severity:    domain.SeverityHigh,
			Kind:        "resource",
			ResourceViolation: &ResourceViolation{
				Date: d, Load: l, Limit: cfg.MaxConcurrentSubmissions, Excess: excess,
			},
		})
	}
	return newResult(violations, fmt.Sprintf("%d resource violation(s)", len(violations)))
}

// CheckVenueCompatibility emits a violation for every scheduled
// submission whose bound conference does not accept its kind under the
// workflow acceptance table (spec §4.3 table).
func CheckVenueCompatibility(sched *domain.Schedule, cfg *domain.Config) ValidationResult {
	var violations []Violation
	for _, id := range sortedIDs(cfg) {
		s := cfg.Submissions[id]
		if !sched.Has(id) {
			continue
		}
		conf, hasConf := cfg.ResolvedConference(s)
		if !hasConf {
			continue
		}
		if conf.Accepts(s.Kind) {
			continue
		}
		severity := domain.SeverityMedium
		if s.Engineering && conf.ConfType == domain.ConfMedical {
			severity = domain.SeverityHigh // technical audience loss
		} else if !s.Engineering && conf.ConfType == domain.ConfEngineering {
			severity = domain.SeverityHigh // audience mismatch
		}
		violations = append(violations, Violation{
			SubmissionID: id,
			Description:  fmt.Sprintf("conference %q does not accept kind %q under its workflow", conf.ID, s.Kind),
			Severity:     severity,
			Kind:         "venue",
		})
	}
	return newResult(violations, fmt.Sprintf("%d venue violation(s)", len(violations)))
}

// CheckSingleConferencePolicy emits a violation when a submission is
// scheduled more than once to the same conference, except at an
// AbstractThenPaper conference with at least one abstract and one paper
// among the submissions, which is explicitly permitted (spec §4.3;
// ground truth's _validate_single_conference_policy exempts only this
// case — no AllTypes carve-out).
func CheckSingleConferencePolicy(sched *domain.Schedule, cfg *domain.Config) ValidationResult {
	type entry struct {
		id   string
		kind domain.SubmissionKind
	}
	perConference := make(map[string][]entry)

	for _, id := range sortedIDs(cfg) {
		s := cfg.Submissions[id]
		if !sched.Has(id) || s.ConferenceID == "" {
			continue
		}
		perConference[s.ConferenceID] = append(perConference[s.ConferenceID], entry{id: id, kind: s.Kind})
	}

	var violations []Violation
	for confID, entries := range perConference {
		if len(entries) < 2 {
			continue
		}
		conf := cfg.Conferences[confID]
		workflow := conf.EffectiveWorkflow()

		if workflow == domain.WorkflowAbstractThenPaper {
			var abstractCount, paperCount int
			for _, e := range entries {
				switch e.kind {
				case domain.KindAbstract:
					abstractCount++
				case domain.KindPaper:
					paperCount++
				}
			}
			if abstractCount > 0 && paperCount > 0 {
				continue
			}
		}

		for _, e := range entries {
			violations = append(violations, Violation{
				SubmissionID: e.id,
				Description:  fmt.Sprintf("submission %q is one of %d submissions scheduled to conference %q", e.id, len(entries), confID),
				Severity:     domain.SeverityMedium,
				Kind:         "single_conference",
			})
		}
	}

	sort.Slice(violations, func(i, j int) bool { return violations[i].SubmissionID < violations[j].SubmissionID })
	return newResult(violations, fmt.Sprintf("%d single-conference violation(s)", len(violations)))
}

// CheckBlackouts emits a violation for every scheduled interval that
// starts on a non-working day, or spans an explicit blackout day, while
// enforcement is enabled — the same two conditions feasibility clause 6
// enforces (spec §4.3, §4.6); ordinary weekends inside an interval are
// not blackouts on their own.
func CheckBlackouts(sched *domain.Schedule, cfg *domain.Config) ValidationResult {
	var violations []Violation
	if !cfg.Options.EnforceBlackouts {
		return newResult(nil, "blackout enforcement disabled")
	}
	for _, id := range sortedIDs(cfg) {
		iv, placed := sched.Get(id)
		if !placed {
			continue
		}
		if !calendar.IsWorkingDay(iv.StartDate, cfg.BlackoutDates, true) {
			violations = append(violations, Violation{
				SubmissionID: id,
				Description:  fmt.Sprintf("submission %q starts on a non-working day %s", id, calendar.FormatISODate(iv.StartDate)),
				Severity:     domain.SeverityLow,
				Kind:         "blackout",
			})
			continue
		}
		for d := iv.StartDate; d.Before(iv.EndDate); d = d.AddDate(0, 0, 1) {
			if calendar.IsBlackout(d, cfg.BlackoutDates) {
				violations = append(violations, Violation{
					SubmissionID: id,
					Description:  fmt.Sprintf("submission %q spans blackout day %s", id, calendar.FormatISODate(d)),
					Severity:     domain.SeverityLow,
					Kind:         "blackout",
				})
				break
			}
		}
	}
	return newResult(violations, fmt.Sprintf("%d blackout violation(s)", len(violations)))
}

func sortedIDs(cfg *domain.Config) []string {
	ids := make([]string, 0, len(cfg.Submissions))
	for id := range cfg.Submissions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
