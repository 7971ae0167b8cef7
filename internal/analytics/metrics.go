// Package analytics composes the scoring package's outputs into a
// single per-schedule metrics record (spec §4.8). It is pure
// composition: no scoring function is re-implemented here.
package analytics

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/kairos/internal/calendar"
	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/scoring"
)

// LoadHistogramSummary condenses the daily concurrency histogram to the
// three figures the metrics/table layer actually reports.
type LoadHistogramSummary struct {
	PeakLoad    int
	AverageLoad float64
	DaysOverCap int
}

// PeriodCount is one bucket of a monthly/quarterly/yearly distribution.
type PeriodCount struct {
	Period string // "2026-01", "2026-Q1", or "2026"
	Count  int
}

// ScheduleMetrics is the single record analyze() produces (spec §3,
// §4.8): scoring outputs plus additive schedule-level statistics.
type ScheduleMetrics struct {
	Penalty    scoring.PenaltyBreakdown
	Quality    float64
	Efficiency float64

	TotalSubmissions int
	ScheduledCount   int
	CompletionRate   float64
	MakespanDays     int

	LoadHistogram LoadHistogramSummary

	PerTypeCounts      map[domain.SubmissionKind]int
	PerTypePercentages map[domain.SubmissionKind]float64

	MonthlyDistribution   []PeriodCount
	QuarterlyDistribution []PeriodCount
	YearlyDistribution    []PeriodCount

	MissingSubmissions []string
}

// Analyze computes the full ScheduleMetrics record by calling, in
// order, the penalty scorer, quality scorer, and efficiency scorer,
// then deriving additive stats over the same (Schedule, Config) pair
// (spec §4.8). Calling Analyze twice on the same inputs yields
// element-wise-equal records (spec §8.5 idempotence).
func Analyze(sched *domain.Schedule, cfg *domain.Config) ScheduleMetrics {
	m := ScheduleMetrics{
		Penalty:    scoring.ScorePenalties(sched, cfg),
		Quality:    scoring.ScoreQuality(sched, cfg),
		Efficiency: scoring.ScoreEfficiency(sched, cfg),

		TotalSubmissions: len(cfg.Submissions),
		ScheduledCount:   sched.Len(),
		MakespanDays:     sched.Makespan(),
	}

	if m.TotalSubmissions > 0 {
		m.CompletionRate = 100.0 * float64(m.ScheduledCount) / float64(m.TotalSubmissions)
	}

	m.LoadHistogram = loadHistogramSummary(sched, cfg)
	m.PerTypeCounts, m.PerTypePercentages = perTypeBreakdown(sched, cfg)
	m.MonthlyDistribution, m.QuarterlyDistribution, m.YearlyDistribution = periodDistributions(sched)
	m.MissingSubmissions = missingSubmissions(sched, cfg)

	return m
}

func loadHistogramSummary(sched *domain.Schedule, cfg *domain.Config) LoadHistogramSummary {
	start, end, ok := sched.Bounds()
	if !ok {
		return LoadHistogramSummary{}
	}

	peak, over, totalLoad, days := 0, 0, 0, 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		load := 0
		for _, iv := range sched.Entries {
			if iv.Contains(d) {
				load++
			}
		}
		if load > peak {
			peak = load
		}
		if load > cfg.MaxConcurrentSubmissions {
			over++
		}
		totalLoad += load
		days++
	}

	avg := 0.0
	if days > 0 {
		avg = float64(totalLoad) / float64(days)
	}
	return LoadHistogramSummary{PeakLoad: peak, AverageLoad: avg, DaysOverCap: over}
}

func perTypeBreakdown(sched *domain.Schedule, cfg *domain.Config) (map[domain.SubmissionKind]int, map[domain.SubmissionKind]float64) {
	counts := map[domain.SubmissionKind]int{}
	for id := range sched.Entries {
		s, ok := cfg.Submissions[id]
		if !ok {
			continue
		}
		counts[s.Kind]++
	}
	pct := map[domain.SubmissionKind]float64{}
	if sched.Len() > 0 {
		for kind, n := range counts {
			pct[kind] = 100.0 * float64(n) / float64(sched.Len())
		}
	}
	return counts, pct
}

func periodDistributions(sched *domain.Schedule) (monthly, quarterly, yearly []PeriodCount) {
	monthlyCounts := map[string]int{}
	quarterlyCounts := map[string]int{}
	yearlyCounts := map[string]int{}

	for _, entry := range sched.SortedEntries() {
		y, mo, _ := entry.Interval.StartDate.Date()
		monthlyCounts[calendar.FormatISODate(entry.Interval.StartDate)[:7]]++
		quarterlyCounts[quarterKey(y, int(mo))]++
		yearlyCounts[yearKey(y)]++
	}

	return toSortedPeriods(monthlyCounts), toSortedPeriods(quarterlyCounts), toSortedPeriods(yearlyCounts)
}

func quarterKey(year, month int) string {
	q := (month-1)/3 + 1
	return fmt.Sprintf("%04d-Q%d", year, q)
}

func yearKey(year int) string {
	return fmt.Sprintf("%04d", year)
}

func toSortedPeriods(counts map[string]int) []PeriodCount {
	out := make([]PeriodCount, 0, len(counts))
	for period, count := range counts {
		out = append(out, PeriodCount{Period: period, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

func missingSubmissions(sched *domain.Schedule, cfg *domain.Config) []string {
	var out []string
	for id := range cfg.Submissions {
		if !sched.Has(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
