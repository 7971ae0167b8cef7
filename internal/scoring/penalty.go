// Package scoring implements the pure scoring functions (spec §4.4):
// penalty decomposition, quality score, and efficiency score, each a
// pure function of (Schedule, Config).
package scoring

import (
	"fmt"

	"github.com/alexanderramin/kairos/internal/calendar"
	"github.com/alexanderramin/kairos/internal/domain"
)

// ScoreReason names why a penalty component fired, generalized from the
// teacher's RecommendationReason (internal/scheduler/scorer.go) from a
// single weighted delta to a named additive penalty contribution.
type ScoreReason struct {
	Code        string
	Message     string
	WeightDelta float64
}

// PenaltyBreakdown is the additive decomposition of the total penalty
// into named, non-negative components (spec §4.4).
type PenaltyBreakdown struct {
	DeadlinePenalty           float64
	SlackMonthlySlipPenalty   float64
	SlackYearOverrunPenalty   float64
	SlackAbstractMissedPenalty float64
	DependencyTimingPenalty   float64
	DependencyMissingPenalty  float64
	ResourcePenalty           float64
	TechnicalAudienceLossPenalty float64
	AudienceMismatchPenalty   float64
	BlackoutPenalty           float64
	SoftBlockPenalty          float64
	SingleConferencePenalty   float64
	LeadTimePenalty           float64

	Reasons []ScoreReason
}

// Total sums every named component exactly — the testable property that
// the breakdown's fields sum to the total penalty (spec §8.7).
func (p PenaltyBreakdown) Total() float64 {
	return p.DeadlinePenalty +
		p.SlackMonthlySlipPenalty +
		p.SlackYearOverrunPenalty +
		p.SlackAbstractMissedPenalty +
		p.DependencyTimingPenalty +
		p.DependencyMissingPenalty +
		p.ResourcePenalty +
		p.TechnicalAudienceLossPenalty +
		p.AudienceMismatchPenalty +
		p.BlackoutPenalty +
		p.SoftBlockPenalty +
		p.SingleConferencePenalty +
		p.LeadTimePenalty
}

// ScorePenalties computes the full penalty breakdown for sched under cfg
// (spec §4.4). Pure: neither sched nor cfg is mutated.
func ScorePenalties(sched *domain.Schedule, cfg *domain.Config) PenaltyBreakdown {
	var b PenaltyBreakdown

	for _, entry := range sched.SortedEntries() {
		s, ok := cfg.Submissions[entry.SubmissionID]
		if !ok {
			continue
		}
		scoreDeadline(&b, s, entry.Interval, cfg)
		scoreSlack(&b, s, entry.Interval, cfg)
		scoreVenue(&b, s, cfg)
	}

	scoreDependencies(&b, sched, cfg)
	scoreResources(&b, sched, cfg)
	scoreBlackouts(&b, sched, cfg)

	return b
}

func scoreDeadline(b *PenaltyBreakdown, s *domain.Submission, iv domain.Interval, cfg *domain.Config) {
	deadline, hasDeadline := cfg.ResolvedDeadline(s)
	if !hasDeadline || !iv.EndDate.After(deadline) {
		return
	}
	daysLate := calendar.DurationBetween(deadline, iv.EndDate)
	rate := s.PenaltyCostPerDay
	if rate == 0 {
		rate = cfg.PenaltyCosts.DefaultPaperPenaltyPerDay
	}
	delta := float64(daysLate) * rate
	b.DeadlinePenalty += delta
	b.Reasons = append(b.Reasons, ScoreReason{
		Code:        "deadline_exceeded",
		Message:     fmt.Sprintf("%s ended %d day(s) late", s.ID, daysLate),
		WeightDelta: delta,
	})
}

// scoreSlack applies the monthly-slip and year-overrun slack-cost terms
// (spec §4.4). Ground truth (_calculate_slack_cost_penalties) only ever
// computes these for Paper submissions with an earliest_start_date set;
// every other submission is skipped entirely, never defaulted to
// scheduling_start_date. months_delay is calendar year/month
// subtraction, not a days/30 approximation. The abstract-missed term
// (A_j) is a config-configurable placeholder the ground truth declares
// but never computes (always 0), so SlackAbstractMissedPenalty stays
// unset here too.
func scoreSlack(b *PenaltyBreakdown, s *domain.Submission, iv domain.Interval, cfg *domain.Config) {
	if s.Kind != domain.KindPaper || s.EarliestStartDate == nil {
		return
	}
	earliest := *s.EarliestStartDate
	if !iv.StartDate.After(earliest) {
		return
	}
	monthsDelay := (iv.StartDate.Year()-earliest.Year())*12 + int(iv.StartDate.Month()) - int(earliest.Month())
	if monthsDelay <= 0 {
		return
	}

	delta := cfg.PenaltyCosts.SlackMonthlySlipPenalty * float64(monthsDelay)
	b.SlackMonthlySlipPenalty += delta
	b.Reasons = append(b.Reasons, ScoreReason{
		Code:        "slack_monthly_slip",
		Message:     fmt.Sprintf("%s slipped %d month(s) past its earliest start", s.ID, monthsDelay),
		WeightDelta: delta,
	})

	if monthsDelay >= 12 {
		b.SlackYearOverrunPenalty += cfg.PenaltyCosts.SlackYearOverrunPenalty
		b.Reasons = append(b.Reasons, ScoreReason{
			Code:        "slack_year_overrun",
			Message:     fmt.Sprintf("%s slipped a full year or more", s.ID),
			WeightDelta: cfg.PenaltyCosts.SlackYearOverrunPenalty,
		})
	}
}

// scoreVenue applies the conference-compatibility penalties (spec
// §4.4): engineering paper routed to an abstract-only medical venue, or
// a clinical paper to an engineering venue.
func scoreVenue(b *PenaltyBreakdown, s *domain.Submission, cfg *domain.Config) {
	conf, ok := cfg.ResolvedConference(s)
	if !ok {
		return
	}
	switch {
	case s.Engineering && conf.ConfType == domain.ConfMedical && conf.EffectiveWorkflow() == domain.WorkflowAbstractOnly:
		b.TechnicalAudienceLossPenalty += cfg.PenaltyCosts.TechnicalAudienceLossPenalty
		b.Reasons = append(b.Reasons, ScoreReason{
			Code: "technical_audience_loss", Message: fmt.Sprintf("%s: engineering paper at an abstract-only medical venue", s.ID),
			WeightDelta: cfg.PenaltyCosts.TechnicalAudienceLossPenalty,
		})
	case !s.Engineering && conf.ConfType == domain.ConfEngineering:
		b.AudienceMismatchPenalty += cfg.PenaltyCosts.AudienceMismatchPenalty
		b.Reasons = append(b.Reasons, ScoreReason{
			Code: "audience_mismatch", Message: fmt.Sprintf("%s: clinical paper at an engineering venue", s.ID),
			WeightDelta: cfg.PenaltyCosts.AudienceMismatchPenalty,
		})
	}
}

func scoreDependencies(b *PenaltyBreakdown, sched *domain.Schedule, cfg *domain.Config) {
	for _, entry := range sched.SortedEntries() {
		s, ok := cfg.Submissions[entry.SubmissionID]
		if !ok {
			continue
		}
		for _, dep := range s.DependsOn {
			_, inConfig := cfg.Submissions[dep]
			if !inConfig {
				b.DependencyMissingPenalty += cfg.PenaltyCosts.DefaultMonthlySlipPenalty
				continue
			}
			depIv, scheduled := sched.Get(dep)
			if !scheduled {
				b.DependencyMissingPenalty += cfg.PenaltyCosts.DefaultMonthlySlipPenalty
				continue
			}
			floor := depIv.EndDate.AddDate(0, 0, s.LeadTimeFromParents)
			if entry.Interval.StartDate.Before(floor) {
				days := calendar.DurationBetween(entry.Interval.StartDate, floor)
				b.DependencyTimingPenalty += float64(days) * cfg.PenaltyCosts.DefaultDependencyViolation
			}
		}
	}
}

func scoreResources(b *PenaltyBreakdown, sched *domain.Schedule, cfg *domain.Config) {
	load := make(map[string]int)
	for _, iv := range sched.Entries {
		for d := iv.StartDate; d.Before(iv.EndDate); d = d.AddDate(0, 0, 1) {
			load[calendar.FormatISODate(d)]++
		}
	}
	for _, l := range load {
		if l > cfg.MaxConcurrentSubmissions {
			b.ResourcePenalty += float64(l-cfg.MaxConcurrentSubmissions) * cfg.PenaltyCosts.ResourceViolationPenalty
		}
	}
}

// scoreBlackouts penalizes a start date that isn't a working day and any
// explicit blackout day spanned by the interval — the same two
// conditions feasibility clause 6 enforces (spec §4.6); ordinary
// weekends inside an interval are not blackouts on their own.
func scoreBlackouts(b *PenaltyBreakdown, sched *domain.Schedule, cfg *domain.Config) {
	if !cfg.Options.EnforceBlackouts {
		return
	}
	for _, iv := range sched.Entries {
		if !calendar.IsWorkingDay(iv.StartDate, cfg.BlackoutDates, true) {
			b.BlackoutPenalty += cfg.PenaltyCosts.BlackoutPenalty
		}
		for d := iv.StartDate; d.Before(iv.EndDate); d = d.AddDate(0, 0, 1) {
			if calendar.IsBlackout(d, cfg.BlackoutDates) {
				b.BlackoutPenalty += cfg.PenaltyCosts.BlackoutPenalty
			}
		}
	}
}
