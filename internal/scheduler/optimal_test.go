package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalSinglePaperAmpleDeadline(t *testing.T) {
	cfg := baseSchedulerConfig()
	cfg.Submissions["p1"] = paperSub("p1", "c1")

	sched, err := NewOptimal(cfg).Schedule()
	require.Nil(t, err)
	require.True(t, sched.Has("p1"))
	assert.Equal(t, "optimal", sched.Strategy)
}

func TestOptimalFallsBackWhenTooLarge(t *testing.T) {
	cfg := baseSchedulerConfig()
	// Room for every submission at once, so the Greedy fallback itself
	// succeeds and the fallback note is observable.
	cfg.MaxConcurrentSubmissions = optimalMaxSubmissions + 1
	for i := 0; i < optimalMaxSubmissions+1; i++ {
		id := string(rune('a' + i))
		cfg.Submissions[id] = paperSub(id, "c1")
	}

	sched, err := NewOptimal(cfg).Schedule()
	require.Nil(t, err)
	require.NotEmpty(t, sched.Informational)
	assert.Contains(t, sched.Informational[0], "too_large")
}

func TestOptimalChainDependency(t *testing.T) {
	cfg := baseSchedulerConfig()
	cfg.Submissions["p1"] = paperSub("p1", "c1")
	cfg.Submissions["p2"] = paperSub("p2", "c1", "p1")

	sched, err := NewOptimal(cfg).Schedule()
	require.Nil(t, err)
	iv1, _ := sched.Get("p1")
	iv2, _ := sched.Get("p2")
	assert.False(t, iv2.StartDate.Before(iv1.EndDate))
}
