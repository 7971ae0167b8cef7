// Package tables implements the four pure table projections over
// Schedule × Config (spec §4.9): schedule rows, deadline-margin rows,
// violation rows, and a metrics summary, each a row-oriented view ready
// for CSV or JSON serialization. No scoring or validation logic is
// re-implemented here — every figure is read from the analytics,
// scoring, or validation packages that already computed it.
package tables

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/kairos/internal/analytics"
	"github.com/alexanderramin/kairos/internal/calendar"
	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/validation"
)

// ScheduleRow is one row of the schedule table (spec §6 schedule.csv).
type ScheduleRow struct {
	ID         string
	Title      string
	Type       string
	StartDate  string
	EndDate    string
	Duration   int
	Conference string
	Status     string
}

// DeadlineMarginStatus is the deadline-table's status column domain.
type DeadlineMarginStatus string

const (
	StatusOnTime DeadlineMarginStatus = "OnTime"
	StatusLate   DeadlineMarginStatus = "Late"
)

// DeadlineRow is one row of the deadline-margin table (spec §4.9, §6
// deadlines.csv).
type DeadlineRow struct {
	Submission string
	Conference string
	Type       string
	Deadline   string
	EndDate    string
	Status     DeadlineMarginStatus
	MarginDays int // positive: days to spare; negative: days late
}

// ViolationRow is one row of the flat violations table (spec §6
// violations.csv).
type ViolationRow struct {
	Type        string
	Submission  string
	Description string
	Severity    string
	Impact      string
}

// MetricRow is one row of the metrics summary table (spec §6
// metrics.csv: metric, value, description). It has no status column.
type MetricRow struct {
	Metric      string
	Value       string
	Description string
}

// PenaltyRow is one row of the penalty breakdown table (spec §6
// penalties.csv).
type PenaltyRow struct {
	PenaltyType string
	Amount      float64
}

// BuildScheduleTable projects Schedule × Config into one row per
// scheduled submission, display-formatted, sorted by start date then ID
// for a stable rendering order.
func BuildScheduleTable(sched *domain.Schedule, cfg *domain.Config) []ScheduleRow {
	rows := make([]ScheduleRow, 0, sched.Len())
	for _, entry := range sched.SortedEntries() {
		s, ok := cfg.Submissions[entry.SubmissionID]
		if !ok {
			continue
		}
		conf := ""
		if c, ok := cfg.ResolvedConference(s); ok {
			conf = c.ID
		}
		rows = append(rows, ScheduleRow{
			ID:         s.ID,
			Title:      s.Title,
			Type:       string(s.Kind),
			StartDate:  calendar.FormatISODate(entry.Interval.StartDate),
			EndDate:    calendar.FormatISODate(entry.Interval.EndDate),
			Duration:   cfg.Duration(s),
			Conference: conf,
			Status:     "Scheduled",
		})
	}
	return rows
}

// BuildDeadlineTable projects Schedule × Config into a row per scheduled
// submission that has a resolved deadline, reporting the signed margin
// in days between end_date and deadline (spec §4.9).
func BuildDeadlineTable(sched *domain.Schedule, cfg *domain.Config) []DeadlineRow {
	var rows []DeadlineRow
	for _, entry := range sched.SortedEntries() {
		s, ok := cfg.Submissions[entry.SubmissionID]
		if !ok {
			continue
		}
		deadline, hasDeadline := cfg.ResolvedDeadline(s)
		if !hasDeadline {
			continue
		}
		conf := ""
		if c, ok := cfg.ResolvedConference(s); ok {
			conf = c.ID
		}

		status := StatusOnTime
		margin := calendar.DurationBetween(entry.Interval.EndDate, deadline)
		if entry.Interval.EndDate.After(deadline) {
			status = StatusLate
			margin = -calendar.DurationBetween(deadline, entry.Interval.EndDate)
		}

		rows = append(rows, DeadlineRow{
			Submission: s.ID,
			Conference: conf,
			Type:       string(s.Kind),
			Deadline:   calendar.FormatISODate(deadline),
			EndDate:    calendar.FormatISODate(entry.Interval.EndDate),
			Status:     status,
			MarginDays: margin,
		})
	}
	return rows
}

// BuildViolationsTable flattens a ValidationResult into the violations
// table (spec §4.9), sorted by kind then submission ID for stability.
func BuildViolationsTable(result validation.ValidationResult) []ViolationRow {
	rows := make([]ViolationRow, 0, len(result.Violations))
	for _, v := range result.Violations {
		rows = append(rows, ViolationRow{
			Type:        v.Kind,
			Submission:  v.SubmissionID,
			Description: v.Description,
			Severity:    string(v.Severity),
			Impact:      violationImpact(v),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Type != rows[j].Type {
			return rows[i].Type < rows[j].Type
		}
		return rows[i].Submission < rows[j].Submission
	})
	return rows
}

// violationImpact renders the violation's quantitative impact, when the
// check recorded one, as a short human-readable string.
func violationImpact(v validation.Violation) string {
	switch {
	case v.DeadlineViolation != nil:
		return fmt.Sprintf("%d day(s) late", v.DeadlineViolation.DaysLate)
	case v.DependencyViolation != nil && v.DependencyViolation.DaysViolation > 0:
		return fmt.Sprintf("%d day(s) early", v.DependencyViolation.DaysViolation)
	case v.ResourceViolation != nil:
		return fmt.Sprintf("%d over limit %d", v.ResourceViolation.Excess, v.ResourceViolation.Limit)
	default:
		return ""
	}
}

// BuildMetricsTable projects a ScheduleMetrics into a flat label/value
// table (spec §4.9, §6 metrics.csv).
func BuildMetricsTable(m analytics.ScheduleMetrics) []MetricRow {
	return []MetricRow{
		{Metric: "quality_score", Value: fmt.Sprintf("%.2f", m.Quality), Description: "weighted compliance score, 0-100"},
		{Metric: "efficiency_score", Value: fmt.Sprintf("%.2f", m.Efficiency), Description: "resource and timeline efficiency, 0-100"},
		{Metric: "total_penalty", Value: fmt.Sprintf("%.2f", m.Penalty.Total()), Description: "sum of all named penalty components"},
		{Metric: "total_submissions", Value: fmt.Sprintf("%d", m.TotalSubmissions), Description: "submissions present in config"},
		{Metric: "scheduled_count", Value: fmt.Sprintf("%d", m.ScheduledCount), Description: "submissions placed in the schedule"},
		{Metric: "completion_rate", Value: fmt.Sprintf("%.2f", m.CompletionRate), Description: "scheduled_count / total_submissions, percent"},
		{Metric: "makespan_days", Value: fmt.Sprintf("%d", m.MakespanDays), Description: "span from first start to last end, in days"},
		{Metric: "peak_load", Value: fmt.Sprintf("%d", m.LoadHistogram.PeakLoad), Description: "maximum concurrent submissions on any day"},
		{Metric: "average_load", Value: fmt.Sprintf("%.2f", m.LoadHistogram.AverageLoad), Description: "mean concurrent submissions across the schedule"},
		{Metric: "days_over_cap", Value: fmt.Sprintf("%d", m.LoadHistogram.DaysOverCap), Description: "days exceeding max_concurrent_submissions"},
	}
}

// BuildPenaltiesTable projects a PenaltyBreakdown into one row per named
// non-zero component (spec §6 penalties.csv).
func BuildPenaltiesTable(m analytics.ScheduleMetrics) []PenaltyRow {
	p := m.Penalty
	candidates := []PenaltyRow{
		{"deadline", p.DeadlinePenalty},
		{"slack_monthly_slip", p.SlackMonthlySlipPenalty},
		{"slack_year_overrun", p.SlackYearOverrunPenalty},
		{"slack_abstract_missed", p.SlackAbstractMissedPenalty},
		{"dependency_timing", p.DependencyTimingPenalty},
		{"dependency_missing", p.DependencyMissingPenalty},
		{"resource", p.ResourcePenalty},
		{"technical_audience_loss", p.TechnicalAudienceLossPenalty},
		{"audience_mismatch", p.AudienceMismatchPenalty},
		{"blackout", p.BlackoutPenalty},
		{"soft_block", p.SoftBlockPenalty},
		{"single_conference", p.SingleConferencePenalty},
		{"lead_time", p.LeadTimePenalty},
	}
	rows := make([]PenaltyRow, 0, len(candidates))
	for _, r := range candidates {
		if r.Amount != 0 {
			rows = append(rows, r)
		}
	}
	return rows
}
