package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is a fixed Monday used across scheduler tests so placements
// land deterministically on a working day.
var monday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

func baseSchedulerConfig() *domain.Config {
	cfg := domain.NewConfig()
	cfg.SchedulingStartDate = monday
	cfg.Conferences["c1"] = &domain.Conference{
		ID:   "c1",
		Name: "Test Conference",
		Deadlines: map[domain.SubmissionKind]time.Time{
			domain.KindPaper: monday.AddDate(0, 0, 200),
		},
	}
	return cfg
}

func paperSub(id, confID string, deps ...string) *domain.Submission {
	return &domain.Submission{
		ID:           id,
		Kind:         domain.KindPaper,
		ConferenceID: confID,
		DependsOn:    deps,
	}
}

func TestGreedySinglePaperAmpleDeadline(t *testing.T) {
	cfg := baseSchedulerConfig()
	cfg.Submissions["p1"] = paperSub("p1", "c1")

	sched, err := NewGreedy(cfg).Schedule()
	require.Nil(t, err)
	require.True(t, sched.Has("p1"))
	iv, _ := sched.Get("p1")
	assert.True(t, iv.StartDate.Equal(monday))
}

func TestGreedyTwoIndependentsCapOne(t *testing.T) {
	cfg := baseSchedulerConfig()
	cfg.MaxConcurrentSubmissions = 1
	cfg.Submissions["p1"] = paperSub("p1", "c1")
	cfg.Submissions["p2"] = paperSub("p2", "c1")

	sched, err := NewGreedy(cfg).Schedule()
	require.Nil(t, err)
	iv1, _ := sched.Get("p1")
	iv2, _ := sched.Get("p2")
	assert.False(t, iv1.Overlaps(iv2), "capacity of 1 must serialize the two submissions")
}

func TestGreedyChainDependency(t *testing.T) {
	cfg := baseSchedulerConfig()
	cfg.Submissions["p1"] = paperSub("p1", "c1")
	cfg.Submissions["p2"] = paperSub("p2", "c1", "p1")

	sched, err := NewGreedy(cfg).Schedule()
	require.Nil(t, err)
	iv1, _ := sched.Get("p1")
	iv2, _ := sched.Get("p2")
	assert.False(t, iv2.StartDate.Before(iv1.EndDate), "dependent must start no earlier than its dependency ends")
}

func TestStochasticSameSeedDeterministic(t *testing.T) {
	seed := int64(42)

	cfg1 := baseSchedulerConfig()
	cfg1.RandomSeed = &seed
	cfg1.Submissions["p1"] = paperSub("p1", "c1")
	cfg1.Submissions["p2"] = paperSub("p2", "c1")

	cfg2 := baseSchedulerConfig()
	cfg2.RandomSeed = &seed
	cfg2.Submissions["p1"] = paperSub("p1", "c1")
	cfg2.Submissions["p2"] = paperSub("p2", "c1")

	sched1, err1 := NewStochastic(cfg1).Schedule()
	sched2, err2 := NewStochastic(cfg2).Schedule()
	require.Nil(t, err1)
	require.Nil(t, err2)

	iv1a, _ := sched1.Get("p1")
	iv1b, _ := sched2.Get("p1")
	assert.True(t, iv1a.StartDate.Equal(iv1b.StartDate), "same seed must reproduce the same placement")
}

func TestLookaheadChainDependency(t *testing.T) {
	cfg := baseSchedulerConfig()
	cfg.Submissions["p1"] = paperSub("p1", "c1")
	cfg.Submissions["p2"] = paperSub("p2", "c1", "p1")

	sched, err := NewLookahead(cfg).Schedule()
	require.Nil(t, err)
	iv1, _ := sched.Get("p1")
	iv2, _ := sched.Get("p2")
	assert.False(t, iv2.StartDate.Before(iv1.EndDate))
}

func TestBacktrackingSinglePaperAmpleDeadline(t *testing.T) {
	cfg := baseSchedulerConfig()
	cfg.Submissions["p1"] = paperSub("p1", "c1")

	sched, err := NewBacktracking(cfg).Schedule()
	require.Nil(t, err)
	require.True(t, sched.Has("p1"))
}

func TestBacktrackingCapacitySerializes(t *testing.T) {
	cfg := baseSchedulerConfig()
	cfg.MaxConcurrentSubmissions = 1
	cfg.Submissions["p1"] = paperSub("p1", "c1")
	cfg.Submissions["p2"] = paperSub("p2", "c1")

	sched, err := NewBacktracking(cfg).Schedule()
	require.Nil(t, err)
	iv1, _ := sched.Get("p1")
	iv2, _ := sched.Get("p2")
	assert.False(t, iv1.Overlaps(iv2))
}

func TestImpossibleDeadlineIsInfeasible(t *testing.T) {
	cfg := baseSchedulerConfig()
	cfg.Conferences["c1"].Deadlines[domain.KindPaper] = monday.AddDate(0, 0, 1)
	cfg.Submissions["p1"] = paperSub("p1", "c1")

	_, err := NewGreedy(cfg).Schedule()
	require.NotNil(t, err)
	assert.Equal(t, "INFEASIBLE", string(err.Code))
}
