package domain

import "time"

// Submission is the atomic unit of work: a paper, abstract, poster, or
// internal engineering work item with no conference attached.
type Submission struct {
	ID     string
	Kind   SubmissionKind
	Title  string
	Author string // free-form priority-grouping tag

	ConferenceID string // empty for internal work items

	DependsOn            []string
	LeadTimeFromParents   int // days

	DraftWindowMonths int

	EarliestStartDate *time.Time // "no earlier than" date; feasibility placement treats it as a hard floor

	PreferredConferences []string
	PreferredKinds       []SubmissionKind

	PreferredWorkflow  SubmissionWorkflow
	SubmissionWorkflow SubmissionWorkflow

	Engineering          bool
	EngineeringReadyDate *time.Time // hard floor when present

	FreeSlackMonths    int
	PenaltyCostPerDay  float64
	PenaltyCostPerMonth float64
}

// Conference is an external submission venue with named kinds and
// per-kind deadlines.
type Conference struct {
	ID         string
	Name       string
	ConfType   ConferenceType
	Recurrence string

	Deadlines map[SubmissionKind]time.Time

	// SubmissionWorkflow may be empty, in which case it is inferred from
	// the set of Deadlines keys (see EffectiveWorkflow).
	SubmissionWorkflow SubmissionWorkflow
}

// EffectiveWorkflow returns the conference's workflow, inferring it from
// the set of present deadline keys when SubmissionWorkflow is unset, per
// spec §4.3 ("read backwards" from the acceptance table).
func (c *Conference) EffectiveWorkflow() SubmissionWorkflow {
	if c.SubmissionWorkflow != "" {
		return c.SubmissionWorkflow
	}
	_, hasAbstract := c.Deadlines[KindAbstract]
	_, hasPaper := c.Deadlines[KindPaper]
	_, hasPoster := c.Deadlines[KindPoster]

	switch {
	case hasAbstract && hasPaper && hasPoster:
		return WorkflowAllTypes
	case hasAbstract && hasPaper:
		return WorkflowAbstractThenPaper
	case hasPoster && !hasAbstract && !hasPaper:
		return WorkflowPosterOnly
	case hasAbstract && !hasPaper:
		return WorkflowAbstractOnly
	case hasPaper && !hasAbstract:
		return WorkflowPaperOnly
	default:
		return WorkflowAllTypes
	}
}

// effectiveSubmissionTypes is the set of kinds the workflow table (spec
// §4.3) allows for a given workflow.
func effectiveSubmissionTypes(w SubmissionWorkflow) map[SubmissionKind]bool {
	switch w {
	case WorkflowAbstractOnly:
		return map[SubmissionKind]bool{KindAbstract: true}
	case WorkflowPaperOnly:
		return map[SubmissionKind]bool{KindPaper: true}
	case WorkflowPosterOnly:
		return map[SubmissionKind]bool{KindPoster: true}
	case WorkflowAbstractThenPaper, WorkflowAbstractOrPaper:
		return map[SubmissionKind]bool{KindAbstract: true, KindPaper: true}
	case WorkflowAllTypes:
		return map[SubmissionKind]bool{KindAbstract: true, KindPaper: true, KindPoster: true}
	default:
		return map[SubmissionKind]bool{}
	}
}

// Accepts reports whether the conference accepts the given kind under
// its effective workflow.
func (c *Conference) Accepts(kind SubmissionKind) bool {
	return effectiveSubmissionTypes(c.EffectiveWorkflow())[kind]
}

// Deadline returns the deadline for kind, if any.
func (c *Conference) Deadline(kind SubmissionKind) (time.Time, bool) {
	d, ok := c.Deadlines[kind]
	return d, ok
}

// RequiresAbstractFirst reports whether kind==paper at this conference
// requires a scheduled abstract to the same conference beforehand.
func (c *Conference) RequiresAbstractFirst() bool {
	return c.EffectiveWorkflow() == WorkflowAbstractThenPaper
}
