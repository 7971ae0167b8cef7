package tables

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/kairos/internal/analytics"
	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/validation"
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
			domain.KindPaper: monday.AddDate(0, 0, 60),
		},
	}
	return cfg
}

func TestBuildScheduleTable(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Title: "A Paper", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 30)})

	rows := BuildScheduleTable(sched, cfg)
	require.Len(t, rows, 1)
	assert.Equal(t, "p1", rows[0].ID)
	assert.Equal(t, "c1", rows[0].Conference)
	assert.Equal(t, "Scheduled", rows[0].Status)
}

func TestBuildDeadlineTableFlagsLate(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday.AddDate(0, 0, 50), EndDate: monday.AddDate(0, 0, 80)})

	rows := BuildDeadlineTable(sched, cfg)
	require.Len(t, rows, 1)
	assert.Equal(t, StatusLate, rows[0].Status)
	assert.Less(t, rows[0].MarginDays, 0)
}

func TestBuildViolationsTableSortsByKindThenSubmission(t *testing.T) {
	result := validation.ValidationResult{
		Violations: []validation.Violation{
			{SubmissionID: "z", Kind: "resource", Description: "over cap"},
			{SubmissionID: "a", Kind: "deadline", Description: "late"},
		},
	}
	rows := BuildViolationsTable(result)
	require.Len(t, rows, 2)
	assert.Equal(t, "deadline", rows[0].Type)
	assert.Equal(t, "resource", rows[1].Type)
}

func TestBuildMetricsAndPenaltiesTable(t *testing.T) {
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 30)})

	m := analytics.Analyze(sched, cfg)
	metricRows := BuildMetricsTable(m)
	assert.NotEmpty(t, metricRows)

	penaltyRows := BuildPenaltiesTable(m)
	assert.Empty(t, penaltyRows) // clean schedule: no non-zero penalty component
}

func TestWriteCSVFilesProducesAllFiveFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := baseConfig()
	cfg.Submissions["p1"] = &domain.Submission{ID: "p1", Title: "A Paper", Kind: domain.KindPaper, ConferenceID: "c1"}

	sched := domain.NewSchedule()
	sched.Set("p1", domain.Interval{StartDate: monday, EndDate: monday.AddDate(0, 0, 30)})

	m := analytics.Analyze(sched, cfg)
	result := validation.ValidateSchedule(sched, cfg)

	err := WriteCSVFiles(dir,
		BuildScheduleTable(sched, cfg),
		BuildMetricsTable(m),
		BuildDeadlineTable(sched, cfg),
		BuildViolationsTable(result),
		BuildPenaltiesTable(m),
	)
	require.NoError(t, err)

	for _, name := range []string{"schedule.csv", "metrics.csv", "deadlines.csv", "violations.csv", "penalties.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}
