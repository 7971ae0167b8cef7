package scoring

import (
	"testing"
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/stretchr/testify/assert"
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

func TestPenaltyBreakdownSumsToTotal(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday.AddDate(0, 0, 150), EndDate: monday.AddDate(0, 0, 250)})

	b := ScorePenalties(sched, cfg)
	sum := b.DeadlinePenalty + b.SlackMonthlySlipPenalty + b.SlackYearOverrunPenalty +
		b.SlackAbstractMissedPenalty + b.DependencyTimingPenalty + b.DependencyMissingPenalty +
		b.ResourcePenalty + b.TechnicalAudienceLossPenalty + b.AudienceMismatchPenalty +
		b.BlackoutPenalty + b.SoftBlockPenalty + b.SingleConferencePenalty + b.LeadTimePenalty

	assert.Equal(t, sum, b.Total())
	assert.Greater(t, b.Total(), 0.0)
}

func TestZeroPenaltyForAmpleCleanSchedule(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 90)})

	b := ScorePenalties(sched, cfg)
	assert.Equal(t, 0.0, b.Total())
}

func TestQualityScorePerfectForCleanSchedule(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 90)})

	assert.Equal(t, 100.0, ScoreQuality(sched, cfg))
}

func TestQualityScoreDropsOnDeadlineMiss(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday.AddDate(0, 0, 150), EndDate: monday.AddDate(0, 0, 250)})

	assert.Less(t, ScoreQuality(sched, cfg), 100.0)
}

func TestEfficiencyScoreWithinBounds(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 90)})

	score := ScoreEfficiency(sched, cfg)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}
