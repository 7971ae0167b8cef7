package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func baseConfig() *domain.Config {
	cfg := domain.NewConfig()
	cfg.SchedulingStartDate = monday
	cfg.Conferences["c1"] = &domain.Conference{
		ID: "c1",
		Deadlines: map[domain.SubmissionKind]time.Time{
			domain.KindPaper: monday.AddDate(0, 0, 200),
		},
	}
	return cfg
}

func TestAnalyzeBasicCounts(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}
	cfg.Submissions["p2"] = &domain.Submission{ID: "p2", Kind: domain.KindPaper}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 90)})

	m := Analyze(sched, cfg)
	assert.Equal(t, 2, m.TotalSubmissions)
	assert.Equal(t, 1, m.ScheduledCount)
	assert.Equal(t, 50.0, m.CompletionRate)
	assert.Equal(t, []string{"p2"}, m.MissingSubmissions)
}

func TestAnalyzeIsIdempotentElementWise(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 90)})

	m1 := Analyze(sched, cfg)
	m2 := Analyze(sched, cfg)

	require.Equal(t, m1.Quality, m2.Quality)
	require.Equal(t, m1.Efficiency, m2.Efficiency)
	assert.Equal(t, m1.Penalty.Total(), m2.Penalty.Total())
	assert.Equal(t, m1.MakespanDays, m2.MakespanDays)
}

func TestAnalyzePerTypeBreakdown(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}
	cfg.Submissions["a1"] = &domain.Submission{ID: "a1", Kind: domain.KindAbstract}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 90)})
	sched.Set("a1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 14)})

	m := Analyze(sched, cfg)
	assert.Equal(t, 1, m.PerTypeCounts[domain.KindPaper])
	assert.Equal(t, 1, m.PerTypeCounts[domain.KindAbstract])
	assert.Equal(t, 50.0, m.PerTypePercentages[domain.KindPaper])
}
