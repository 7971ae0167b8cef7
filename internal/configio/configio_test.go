package configio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidFixtureSet(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.json", `{
		"min_abstract_lead_time_days": 7,
		"min_paper_lead_time_days": 14,
		"max_concurrent_submissions": 3,
		"scheduling_start_date": "2026-01-05",
		"data_files": ["submissions.json"]
	}`)
	writeFile(t, dir, "conferences.json", `[
		{"id": "c1", "name": "Conf One", "type": "engineering", "deadlines": {"paper": "2026-12-01"}}
	]`)
	writeFile(t, dir, "submissions.json", `{
		"submissions": [
			{"id": "p1", "kind": "paper", "conference_id": "c1"},
			{"id": "p2", "kind": "paper", "depends_on": ["p1"]}
		]
	}`)

	cfg, err := Load(dir, configPath)
	require.NoError(t, err)
	assert.Len(t, cfg.Submissions, 2)
	assert.Len(t, cfg.Conferences, 1)
	assert.Equal(t, 3, cfg.MaxConcurrentSubmissions)
	assert.Equal(t, []string{"p1"}, cfg.Submissions["p2"].DependsOn)
}

func TestLoadRejectsUnresolvedConference(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.json", `{
		"min_abstract_lead_time_days": 7,
		"min_paper_lead_time_days": 14,
		"max_concurrent_submissions": 3,
		"scheduling_start_date": "2026-01-05",
		"data_files": ["submissions.json"]
	}`)
	writeFile(t, dir, "conferences.json", `[]`)
	writeFile(t, dir, "submissions.json", `{
		"submissions": [{"id": "p1", "kind": "paper", "conference_id": "ghost"}]
	}`)

	_, err := Load(dir, configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unresolved conference")
}

func TestDetectCyclesRejectsCircularDependency(t *testing.T) {
	docs := []SubmissionDocument{
		{ID: "a", Kind: "paper", DependsOn: []string{"b"}},
		{ID: "b", Kind: "paper", DependsOn: []string{"a"}},
	}
	errs := ValidateSubmissionDocuments(docs, nil)
	require.NotEmpty(t, errs)
	found := false
	for _, e := range errs {
		if strings.Contains(e.Error(), "circular dependency") {
			found = true
		}
	}
	assert.True(t, found, "expected a circular dependency error, got %v", errs)
}
