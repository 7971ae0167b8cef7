package configio

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
)

const isoLayout = "2006-01-02"

// Load reads config.json, conferences.json, and every submission list
// named in config.json's data_files (resolved relative to baseDir),
// validates them (accumulating every error), and converts them into a
// domain.Config. On any validation error, no Config is returned — the
// engine never runs a partial load (spec §7).
func Load(baseDir, configPath string) (*domain.Config, error) {
	configDoc, err := LoadConfigDocument(configPath)
	if err != nil {
		return nil, err
	}
	if errs := ValidateConfigDocument(configDoc); len(errs) > 0 {
		return nil, joinErrors("config.json", errs)
	}

	confDocs, err := LoadConferenceDocuments(filepath.Join(baseDir, "conferences.json"))
	if err != nil {
		return nil, err
	}
	if errs := ValidateConferenceDocuments(confDocs); len(errs) > 0 {
		return nil, joinErrors("conferences.json", errs)
	}

	knownConferences := make(map[string]bool, len(confDocs))
	for _, c := range confDocs {
		knownConferences[c.ID] = true
	}

	var subDocs []SubmissionDocument
	for _, df := range configDoc.DataFiles {
		docs, err := LoadSubmissionDocuments(filepath.Join(baseDir, df))
		if err != nil {
			return nil, err
		}
		subDocs = append(subDocs, docs...)
	}
	if errs := ValidateSubmissionDocuments(subDocs, knownConferences); len(errs) > 0 {
		return nil, joinErrors("submission data files", errs)
	}

	cfg := domain.NewConfig()

	start, err := time.Parse(isoLayout, configDoc.SchedulingStartDate)
	if err != nil {
		return nil, fmt.Errorf("parsing scheduling_start_date: %w", err)
	}
	cfg.SchedulingStartDate = start

	applyIntOverride(&cfg.MinAbstractLeadTimeDays, configDoc.MinAbstractLeadTimeDays)
	applyIntOverride(&cfg.MinPaperLeadTimeDays, configDoc.MinPaperLeadTimeDays)
	applyIntOverride(&cfg.MaxConcurrentSubmissions, configDoc.MaxConcurrentSubmissions)
	applyIntOverride(&cfg.DefaultPaperLeadTimeMonths, configDoc.DefaultPaperLeadTimeMonths)
	applyIntOverride(&cfg.WorkItemDurationDays, configDoc.WorkItemDurationDays)
	applyIntOverride(&cfg.ConferenceResponseTimeDays, configDoc.ConferenceResponseTimeDays)
	applyIntOverride(&cfg.MaxBacktrackDays, configDoc.MaxBacktrackDays)
	applyFloatOverride(&cfg.RandomnessFactor, configDoc.RandomnessFactor)
	applyFloatOverride(&cfg.LookaheadBonusIncrement, configDoc.LookaheadBonusIncrement)
	applyIntOverride(&cfg.LookaheadWindowDays, configDoc.LookaheadWindowDays)
	applyIntOverride(&cfg.MaxAlgorithmIterations, configDoc.MaxAlgorithmIterations)
	applyIntOverride(&cfg.MILPTimeoutSeconds, configDoc.MILPTimeoutSeconds)
	if configDoc.RandomSeed != nil {
		cfg.RandomSeed = configDoc.RandomSeed
	}

	for _, d := range configDoc.BlackoutDates {
		t, _ := time.Parse(isoLayout, d) // validated above
		cfg.BlackoutDates = append(cfg.BlackoutDates, t)
	}

	applyOptions(&cfg.Options, configDoc.Options)
	applyPenaltyCosts(&cfg.PenaltyCosts, configDoc.PenaltyCosts)
	applyPriorities(&cfg.PriorityWeights, configDoc.Priorities)

	for _, c := range confDocs {
		conf := &domain.Conference{
			ID:                 c.ID,
			Name:               c.Name,
			ConfType:           domain.ConferenceType(c.Type),
			Recurrence:         c.Recurrence,
			SubmissionWorkflow: domain.SubmissionWorkflow(c.Workflow),
			Deadlines:          make(map[domain.SubmissionKind]time.Time, len(c.Deadlines)),
		}
		for kind, deadline := range c.Deadlines {
			t, _ := time.Parse(isoLayout, deadline) // validated above
			conf.Deadlines[domain.SubmissionKind(kind)] = t
		}
		cfg.Conferences[c.ID] = conf
	}

	for _, s := range subDocs {
		sub := &domain.Submission{
			ID:                  s.ID,
			Kind:                domain.SubmissionKind(s.Kind),
			Title:               s.Title,
			Author:              s.Author,
			ConferenceID:        s.ConferenceID,
			DependsOn:           s.DependsOn,
			LeadTimeFromParents: s.LeadTimeFromParents,
			DraftWindowMonths:   s.DraftWindowMonths,
			PreferredConferences: s.PreferredConferences,
			PreferredWorkflow:    domain.SubmissionWorkflow(s.PreferredWorkflow),
			SubmissionWorkflow:   domain.SubmissionWorkflow(s.SubmissionWorkflow),
			Engineering:          s.Engineering,
			FreeSlackMonths:      s.FreeSlackMonths,
			PenaltyCostPerDay:    s.PenaltyCostPerDay,
			PenaltyCostPerMonth:  s.PenaltyCostPerMonth,
		}
		for _, k := range s.PreferredKinds {
			sub.PreferredKinds = append(sub.PreferredKinds, domain.SubmissionKind(k))
		}
		if s.EarliestStartDate != nil {
			t, _ := time.Parse(isoLayout, *s.EarliestStartDate)
			sub.EarliestStartDate = &t
		}
		if s.EngineeringReadyDate != nil {
			t, _ := time.Parse(isoLayout, *s.EngineeringReadyDate)
			sub.EngineeringReadyDate = &t
		}
		cfg.Submissions[s.ID] = sub
	}

	return cfg, nil
}

func applyIntOverride(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyFloatOverride(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func applyOptions(dst *domain.SchedulingOptions, src *OptionsDocument) {
	if src == nil {
		return
	}
	if src.EnforceBlackouts != nil {
		dst.EnforceBlackouts = *src.EnforceBlackouts
	}
	if src.EarlyAbstractScheduling != nil {
		dst.EarlyAbstractScheduling = *src.EarlyAbstractScheduling
	}
	if src.AbstractAdvanceDays != nil {
		dst.AbstractAdvanceDays = *src.AbstractAdvanceDays
	}
	if src.StrictDeadlines != nil {
		dst.StrictDeadlines = *src.StrictDeadlines
	}
}

func applyPenaltyCosts(dst *domain.PenaltyCosts, src *PenaltyCostsDocument) {
	if src == nil {
		return
	}
	applyFloatOverride(&dst.DefaultPaperPenaltyPerDay, src.DefaultPaperPenaltyPerDay)
	applyFloatOverride(&dst.DefaultDependencyViolation, src.DefaultDependencyViolation)
	applyFloatOverride(&dst.DefaultMonthlySlipPenalty, src.DefaultMonthlySlipPenalty)
	applyFloatOverride(&dst.ResourceViolationPenalty, src.ResourceViolationPenalty)
	applyFloatOverride(&dst.TechnicalAudienceLossPenalty, src.TechnicalAudienceLossPenalty)
	applyFloatOverride(&dst.AudienceMismatchPenalty, src.AudienceMismatchPenalty)
	applyFloatOverride(&dst.BlackoutPenalty, src.BlackoutPenalty)
	applyFloatOverride(&dst.SoftBlockPenalty, src.SoftBlockPenalty)
	applyFloatOverride(&dst.SingleConferencePenalty, src.SingleConferencePenalty)
	applyFloatOverride(&dst.LeadTimePenalty, src.LeadTimePenalty)
	applyFloatOverride(&dst.SlackMonthlySlipPenalty, src.SlackMonthlySlipPenalty)
	applyFloatOverride(&dst.SlackYearOverrunPenalty, src.SlackYearOverrunPenalty)
	applyFloatOverride(&dst.SlackAbstractMissedPenalty, src.SlackAbstractMissedPenalty)
}

func applyPriorities(dst *domain.PriorityWeights, src *PrioritiesDocument) {
	if src == nil {
		return
	}
	applyFloatOverride(&dst.EngineeringPaper, src.EngineeringPaper)
	applyFloatOverride(&dst.WorkItem, src.WorkItem)
	applyFloatOverride(&dst.Paper, src.Paper)
	applyFloatOverride(&dst.Poster, src.Poster)
	applyFloatOverride(&dst.Abstract, src.Abstract)
}

func joinErrors(source string, errs []error) error {
	msg := fmt.Sprintf("%s: %d error(s)", source, len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
