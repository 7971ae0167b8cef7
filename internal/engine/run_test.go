package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/kairos/internal/domain"
)

var monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func baseEngineConfig() *domain.Config {
	cfg := domain.NewConfig()
	cfg.SchedulingStartDate = monday
	cfg.Conferences["c1"] = &domain.Conference{
		ID:   "c1",
		Name: "Test Conference",
		Deadlines: map[domain.SubmissionKind]time.Time{
			domain.KindPaper: monday.AddDate(0, 0, 200),
		},
	}
	cfg.Submissions["p1"] = &domain.Submission{
		ID:           "p1",
		Kind:         domain.KindPaper,
		ConferenceID: "c1",
	}
	return cfg
}

func TestRunStampsRunIDAndGeneratedAt(t *testing.T) {
	cfg := baseEngineConfig()
	result, err := Run(domain.StrategyGreedy, cfg)
	require.Nil(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.Schedule.RunID)
	assert.False(t, result.Schedule.GeneratedAt.IsZero())
	assert.Equal(t, "greedy", result.Schedule.Strategy)
}

func TestRunProducesValidationAndMetrics(t *testing.T) {
	cfg := baseEngineConfig()
	result, err := Run(domain.StrategyGreedy, cfg)
	require.Nil(t, err)

	assert.True(t, result.Validation.IsValid)
	assert.Equal(t, 1, result.Metrics.ScheduledCount)
	assert.Equal(t, 1, result.Metrics.TotalSubmissions)
}

func TestRunRejectsCircularDependency(t *testing.T) {
	cfg := baseEngineConfig()
	cfg.Submissions["p1"].DependsOn = []string{"p2"}
	cfg.Submissions["p2"] = &domain.Submission{ID: "p2", Kind: domain.KindPaper, ConferenceID: "c1", DependsOn: []string{"p1"}}

	result, err := Run(domain.StrategyGreedy, cfg)
	require.Nil(t, result)
	require.NotNil(t, err)
	assert.Equal(t, domain.ErrCircular, err.Code)
}

func TestRunRejectsUnknownStrategy(t *testing.T) {
	cfg := baseEngineConfig()
	result, err := Run(domain.StrategyTag("bogus"), cfg)
	require.Nil(t, result)
	require.NotNil(t, err)
	assert.Equal(t, domain.ErrUnknownStrategy, err.Code)
}
