package domain

import "time"

// PenaltyCosts holds the named penalty constants used by the scoring
// package (spec §4.4). All are per-unit rates except the one-shot terms.
type PenaltyCosts struct {
	DefaultPaperPenaltyPerDay     float64
	DefaultDependencyViolation    float64
	DefaultMonthlySlipPenalty     float64
	ResourceViolationPenalty      float64
	TechnicalAudienceLossPenalty  float64
	AudienceMismatchPenalty       float64
	BlackoutPenalty               float64
	SoftBlockPenalty              float64
	SingleConferencePenalty       float64
	LeadTimePenalty               float64
	SlackMonthlySlipPenalty       float64 // P_j
	SlackYearOverrunPenalty       float64 // Y_j, applied once when months_delay >= 12
	SlackAbstractMissedPenalty    float64 // A_j
}

// DefaultPenaltyCosts returns the engine's baseline penalty constants.
func DefaultPenaltyCosts() PenaltyCosts {
	return PenaltyCosts{
		DefaultPaperPenaltyPerDay:    10.0,
		DefaultDependencyViolation:   15.0,
		DefaultMonthlySlipPenalty:    50.0,
		ResourceViolationPenalty:     25.0,
		TechnicalAudienceLossPenalty: 100.0,
		AudienceMismatchPenalty:      100.0,
		BlackoutPenalty:              20.0,
		SoftBlockPenalty:             5.0,
		SingleConferencePenalty:      30.0,
		LeadTimePenalty:              10.0,
		SlackMonthlySlipPenalty:      20.0,
		SlackYearOverrunPenalty:      200.0,
		SlackAbstractMissedPenalty:   40.0,
	}
}

// PriorityWeights ranks submission kinds for the Greedy/Heuristic
// ranking step (spec §4.7): "engineering paper > mod > paper > poster >
// abstract". Higher value sorts first.
type PriorityWeights struct {
	EngineeringPaper float64
	WorkItem         float64 // "mod": an internal work item with no conference
	Paper            float64
	Poster           float64
	Abstract         float64
}

// DefaultPriorityWeights returns the engine's baseline ranking weights.
func DefaultPriorityWeights() PriorityWeights {
	return PriorityWeights{
		EngineeringPaper: 100,
		WorkItem:         80,
		Paper:            60,
		Poster:           40,
		Abstract:         20,
	}
}

// SchedulingOptions are boolean policy toggles (spec §3 Config).
type SchedulingOptions struct {
	EnforceBlackouts      bool
	EarlyAbstractScheduling bool
	AbstractAdvanceDays   int
	StrictDeadlines       bool // hard deadline floor for strict strategies (spec §4.6 feasibility clause 7)
}

// Config is the immutable container the engine consumes: submissions,
// conferences, policy knobs, optional cost/weight overrides, blackout
// dates, and an explicit scheduling start date (spec §3).
type Config struct {
	Submissions map[string]*Submission
	Conferences map[string]*Conference

	MinAbstractLeadTimeDays  int
	MinPaperLeadTimeDays     int
	MaxConcurrentSubmissions int
	DefaultPaperLeadTimeMonths int
	WorkItemDurationDays     int
	ConferenceResponseTimeDays int
	MaxBacktrackDays         int
	RandomnessFactor         float64
	LookaheadBonusIncrement  float64
	LookaheadWindowDays      int
	MaxAlgorithmIterations   int
	MILPTimeoutSeconds       int
	RandomSeed               *int64

	PenaltyCosts     PenaltyCosts
	PriorityWeights  PriorityWeights
	Options          SchedulingOptions

	BlackoutDates []time.Time

	SchedulingStartDate time.Time
}

// NewConfig returns a Config with spec-documented defaults applied,
// scheduling start date set to today (UTC, midnight).
func NewConfig() *Config {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return &Config{
		Submissions:                make(map[string]*Submission),
		Conferences:                make(map[string]*Conference),
		MinAbstractLeadTimeDays:    7,
		MinPaperLeadTimeDays:       14,
		MaxConcurrentSubmissions:   3,
		DefaultPaperLeadTimeMonths: 3,
		WorkItemDurationDays:       14,
		ConferenceResponseTimeDays: 30,
		MaxBacktrackDays:           90,
		RandomnessFactor:           0.1,
		LookaheadBonusIncrement:    5.0,
		LookaheadWindowDays:        30,
		MaxAlgorithmIterations:     100000,
		MILPTimeoutSeconds:         60,
		PenaltyCosts:               DefaultPenaltyCosts(),
		PriorityWeights:            DefaultPriorityWeights(),
		Options:                    SchedulingOptions{EnforceBlackouts: true, StrictDeadlines: true},
		SchedulingStartDate:        today,
	}
}

// EffectiveSchedulingStartDate is the floor every placement must respect
// (spec §4.6 clause 1).
func (c *Config) EffectiveSchedulingStartDate() time.Time {
	return c.SchedulingStartDate
}

// posterDurationFloorDays is the default minimum poster duration (spec §4.2).
const posterDurationFloorDays = 30

// daysPerMonth is the engine-wide, deliberately non-calendar-accurate
// month-to-day conversion factor (spec §4.2/§9).
const daysPerMonth = 30

// Duration returns a submission's scheduled duration in days, per the
// rules in spec §4.2.
func (c *Config) Duration(s *Submission) int {
	switch {
	case s.Kind == KindAbstract:
		if c.WorkItemDurationDays > 0 {
			return c.WorkItemDurationDays
		}
		return 14
	case s.DraftWindowMonths > 0:
		return s.DraftWindowMonths * daysPerMonth
	case s.Kind == KindPoster:
		return posterDurationFloorDays
	default: // Paper
		floor := c.DefaultPaperLeadTimeMonths * daysPerMonth
		if c.MinPaperLeadTimeDays > floor {
			return c.MinPaperLeadTimeDays
		}
		return floor
	}
}

// ResolvedConference returns the conference a submission is bound to,
// if any.
func (c *Config) ResolvedConference(s *Submission) (*Conference, bool) {
	if s.ConferenceID == "" {
		return nil, false
	}
	conf, ok := c.Conferences[s.ConferenceID]
	return conf, ok
}

// ResolvedDeadline returns the deadline applying to a submission's kind
// at its bound conference, if both exist.
func (c *Config) ResolvedDeadline(s *Submission) (time.Time, bool) {
	conf, ok := c.ResolvedConference(s)
	if !ok {
		return time.Time{}, false
	}
	return conf.Deadline(s.Kind)
}
