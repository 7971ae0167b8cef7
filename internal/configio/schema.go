// Package configio ingests the engine's Config from JSON documents
// (spec §6): config.json, conferences.json, and one or more submission
// lists. Adapted from the teacher's importer package: a plain JSON
// schema decoded field-by-field, validated by accumulating every error
// before conversion rather than failing on the first one.
package configio

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigDocument mirrors config.json (spec §6's required keys plus the
// optional knobs named in spec §3 Config).
type ConfigDocument struct {
	MinAbstractLeadTimeDays    *int     `json:"min_abstract_lead_time_days"`
	MinPaperLeadTimeDays       *int     `json:"min_paper_lead_time_days"`
	MaxConcurrentSubmissions   *int     `json:"max_concurrent_submissions"`
	DefaultPaperLeadTimeMonths *int     `json:"default_paper_lead_time_months,omitempty"`
	WorkItemDurationDays       *int     `json:"work_item_duration_days,omitempty"`
	ConferenceResponseTimeDays *int     `json:"conference_response_time_days,omitempty"`
	MaxBacktrackDays           *int     `json:"max_backtrack_days,omitempty"`
	RandomnessFactor           *float64 `json:"randomness_factor,omitempty"`
	LookaheadBonusIncrement    *float64 `json:"lookahead_bonus_increment,omitempty"`
	LookaheadWindowDays        *int     `json:"lookahead_window_days,omitempty"`
	MaxAlgorithmIterations     *int     `json:"max_algorithm_iterations,omitempty"`
	MILPTimeoutSeconds         *int     `json:"milp_timeout_seconds,omitempty"`
	RandomSeed                 *int64   `json:"random_seed,omitempty"`

	SchedulingStartDate string   `json:"scheduling_start_date"`
	BlackoutDates        []string `json:"blackout_dates,omitempty"`
	DataFiles            []string `json:"data_files"`

	Options      *OptionsDocument      `json:"options,omitempty"`
	PenaltyCosts *PenaltyCostsDocument `json:"penalty_costs,omitempty"`
	Priorities   *PrioritiesDocument   `json:"priority_weights,omitempty"`
}

// OptionsDocument mirrors Config.Options (spec §3 SchedulingOptions).
type OptionsDocument struct {
	EnforceBlackouts        *bool `json:"enforce_blackouts,omitempty"`
	EarlyAbstractScheduling *bool `json:"early_abstract_scheduling,omitempty"`
	AbstractAdvanceDays     *int  `json:"abstract_advance_days,omitempty"`
	StrictDeadlines         *bool `json:"strict_deadlines,omitempty"`
}

// PenaltyCostsDocument mirrors Config.PenaltyCosts; every field is
// optional and falls back to domain.DefaultPenaltyCosts.
type PenaltyCostsDocument struct {
	DefaultPaperPenaltyPerDay  *float64 `json:"default_paper_penalty_per_day,omitempty"`
	DefaultDependencyViolation *float64 `json:"default_dependency_violation,omitempty"`
	DefaultMonthlySlipPenalty *float64 `json:"default_monthly_slip_penalty,omitempty"`
	ResourceViolationPenalty   *float64 `json:"resource_violation_penalty,omitempty"`
	TechnicalAudienceLossPenalty *float64 `json:"technical_audience_loss_penalty,omitempty"`
	AudienceMismatchPenalty    *float64 `json:"audience_mismatch_penalty,omitempty"`
	BlackoutPenalty            *float64 `json:"blackout_penalty,omitempty"`
	SoftBlockPenalty           *float64 `json:"soft_block_penalty,omitempty"`
	SingleConferencePenalty    *float64 `json:"single_conference_penalty,omitempty"`
	LeadTimePenalty            *float64 `json:"lead_time_penalty,omitempty"`
	SlackMonthlySlipPenalty    *float64 `json:"slack_monthly_slip_penalty,omitempty"`
	SlackYearOverrunPenalty    *float64 `json:"slack_year_overrun_penalty,omitempty"`
	SlackAbstractMissedPenalty *float64 `json:"slack_abstract_missed_penalty,omitempty"`
}

// PrioritiesDocument mirrors Config.PriorityWeights.
type PrioritiesDocument struct {
	EngineeringPaper *float64 `json:"engineering_paper,omitempty"`
	WorkItem         *float64 `json:"work_item,omitempty"`
	Paper            *float64 `json:"paper,omitempty"`
	Poster           *float64 `json:"poster,omitempty"`
	Abstract         *float64 `json:"abstract,omitempty"`
}

// ConferenceDocument is one entry of conferences.json.
type ConferenceDocument struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Recurrence string            `json:"recurrence,omitempty"`
	Workflow   string            `json:"workflow,omitempty"`
	Deadlines  map[string]string `json:"deadlines"`
}

// SubmissionDocument is one entry of a submission-list data file.
type SubmissionDocument struct {
	ID                   string   `json:"id"`
	Kind                 string   `json:"kind"`
	Title                string   `json:"title,omitempty"`
	Author               string   `json:"author,omitempty"`
	ConferenceID         string   `json:"conference_id,omitempty"`
	DependsOn            []string `json:"depends_on,omitempty"`
	LeadTimeFromParents  int      `json:"lead_time_from_parents_days,omitempty"`
	DraftWindowMonths    int      `json:"draft_window_months,omitempty"`
	EarliestStartDate    *string  `json:"earliest_start_date,omitempty"`
	PreferredConferences []string `json:"preferred_conferences,omitempty"`
	PreferredKinds       []string `json:"preferred_kinds,omitempty"`
	PreferredWorkflow    string   `json:"preferred_workflow,omitempty"`
	SubmissionWorkflow   string   `json:"submission_workflow,omitempty"`
	Engineering          bool     `json:"engineering,omitempty"`
	EngineeringReadyDate *string  `json:"engineering_ready_date,omitempty"`
	FreeSlackMonths      int      `json:"free_slack_months,omitempty"`
	PenaltyCostPerDay    float64  `json:"penalty_cost_per_day,omitempty"`
	PenaltyCostPerMonth  float64  `json:"penalty_cost_per_month,omitempty"`
}

// SubmissionListDocument is the top-level shape of a data file named in
// config.json's data_files list.
type SubmissionListDocument struct {
	Submissions []SubmissionDocument `json:"submissions"`
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// LoadConfigDocument reads and parses config.json.
func LoadConfigDocument(path string) (*ConfigDocument, error) {
	var doc ConfigDocument
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadConferenceDocuments reads and parses conferences.json, a bare
// JSON array of ConferenceDocument.
func LoadConferenceDocuments(path string) ([]ConferenceDocument, error) {
	var docs []ConferenceDocument
	if err := readJSON(path, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// LoadSubmissionDocuments reads and parses one submission-list data
// file.
func LoadSubmissionDocuments(path string) ([]SubmissionDocument, error) {
	var doc SubmissionListDocument
	if err := readJSON(path, &doc); err != nil {
		return nil, err
	}
	return doc.Submissions, nil
}
