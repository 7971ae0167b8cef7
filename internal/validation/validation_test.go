package validation

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

func TestCheckDeadlinesFlagsLateSubmission(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday.AddDate(0, 0, 150), EndDate: monday.AddDate(0, 0, 250)})

	result := CheckDeadlines(sched, cfg)
	require.False(t, result.IsValid)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, 50, result.Violations[0].DeadlineViolation.DaysLate)
}

func TestCheckDependenciesMissingAndTiming(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["a"] = &domain.Submission{ID: "a", Kind: domain.KindPaper, ConferenceID: "c1"}
	cfg.Submissions["b"] = &domain.Submission{ID: "b", Kind: domain.KindPaper, ConferenceID: "c1", DependsOn: []string{"a", "ghost"}}

	sched := domain.NewSchedule()
	sched.Set("a", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 30)})
	sched.Set("b", domain.Interval{StartDate: monday.AddDate(0, 0, 10), EndDate: monday.AddDate(0, 0, 40)})

	result := CheckDependencies(sched, cfg)
	require.False(t, result.IsValid)

	var sawMissing, sawTiming bool
	for _, v := range result.Violations {
		if v.DependencyViolation.Issue == IssueMissingDependency {
			sawMissing = true
		}
		if v.DependencyViolation.Issue == IssueTimingViolation {
			sawTiming = true
		}
	}
	assert.True(t, sawMissing)
	assert.True(t, sawTiming)
}

func TestCheckResourcesExcessOneViolationPerDay(t *testing.T) {
	cfg := baseConfig()
	cfg.MaxConcurrentSubmissions = 2
	for _, id := range []string{"a", "b", "c", "d"} {
		cfg.Submissions[id] = &domain.Submission{ID: id, Kind: domain.KindPaper}
	}

	sched := domain.NewSchedule()
	for _, id := range []string{"a", "b", "c", "d"} {
		sched.Set(id, domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 1)})
	}

	result := CheckResources(sched, cfg)
	require.False(t, result.IsValid)
	require.Len(t, result.Violations, 1, "one day over capacity should yield one violation record")
	assert.Equal(t, 2, result.Violations[0].ResourceViolation.Excess)
}

func TestCheckVenueCompatibilityRejectsUnacceptedKind(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["poster1"] = &domain.Submission{ID: "poster1", Kind: domain.KindPoster, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("poster1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 30)})

	result := CheckVenueCompatibility(sched, cfg)
	require.False(t, result.IsValid)
	assert.Equal(t, "venue", result.Violations[0].Kind)
}

func TestCheckSingleConferencePolicyAllowsAbstractThenPaper(t *testing.T) {
	cfg := baseConfig()
	cfg.Conferences["c1"].Deadlines[domain.KindAbstract] = monday.AddDate(0, 0, 100)
	cfg.Submissions["abs"] = &domain.Submission{ID: "abs", Kind: domain.KindAbstract, ConferenceID: "c1"}
	cfg.Submissions["paper"] = &domain.Submission{ID: "paper", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("abs", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 14)})
	sched.Set("paper", domain.Interval{StartDate: monday.AddDate(0, 0, 14), EndDate: monday.AddDate(0, 0, 104)})

	result := CheckSingleConferencePolicy(sched, cfg)
	assert.True(t, result.IsValid)
}

func TestCheckBlackoutsFlagsWeekendStart(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	saturday := monday.AddDate(0, 0, 5)
	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: saturday, EndDate: saturday.AddDate(0, 0, 3)})

	result := CheckBlackouts(sched, cfg)
	require.False(t, result.IsValid)
}

func TestValidateScheduleUnionsAllChecks(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 90)})

	result := ValidateSchedule(sched, cfg)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Violations)
}
