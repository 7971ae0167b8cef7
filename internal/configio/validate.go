package configio

import (
	"fmt"
	"time"
)

var validKinds = map[string]bool{"paper": true, "abstract": true, "poster": true}
var validConfTypes = map[string]bool{"medical": true, "engineering": true}
var validWorkflows = map[string]bool{
	"abstract_only": true, "paper_only": true, "poster_only": true,
	"abstract_then_paper": true, "abstract_or_paper": true, "all_types": true,
}

// ValidateConfigDocument checks config.json for errors before
// conversion, accumulating every error found rather than stopping at
// the first (spec §7 configuration errors).
func ValidateConfigDocument(doc *ConfigDocument) []error {
	var errs []error

	if doc.MinAbstractLeadTimeDays == nil {
		errs = append(errs, fmt.Errorf("min_abstract_lead_time_days is required"))
	}
	if doc.MinPaperLeadTimeDays == nil {
		errs = append(errs, fmt.Errorf("min_paper_lead_time_days is required"))
	}
	if doc.MaxConcurrentSubmissions == nil {
		errs = append(errs, fmt.Errorf("max_concurrent_submissions is required"))
	} else if *doc.MaxConcurrentSubmissions <= 0 {
		errs = append(errs, fmt.Errorf("max_concurrent_submissions must be positive"))
	}
	if len(doc.DataFiles) == 0 {
		errs = append(errs, fmt.Errorf("data_files is required and must be non-empty"))
	}

	if doc.SchedulingStartDate == "" {
		errs = append(errs, fmt.Errorf("scheduling_start_date is required"))
	} else if _, err := time.Parse("2006-01-02", doc.SchedulingStartDate); err != nil {
		errs = append(errs, fmt.Errorf("scheduling_start_date: invalid date %q (expected YYYY-MM-DD)", doc.SchedulingStartDate))
	}

	for i, d := range doc.BlackoutDates {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			errs = append(errs, fmt.Errorf("blackout_dates[%d]: invalid date %q", i, d))
		}
	}

	return errs
}

// ValidateConferenceDocuments checks conferences.json for errors.
func ValidateConferenceDocuments(docs []ConferenceDocument) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, c := range docs {
		prefix := fmt.Sprintf("conferences[%d]", i)
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[c.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate conference id %q", prefix, c.ID))
		} else {
			seen[c.ID] = true
		}

		if c.Type != "" && !validConfTypes[c.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, c.Type))
		}
		if c.Workflow != "" && !validWorkflows[c.Workflow] {
			errs = append(errs, fmt.Errorf("%s.workflow: invalid value %q", prefix, c.Workflow))
		}
		for kind, deadline := range c.Deadlines {
			if !validKinds[kind] {
				errs = append(errs, fmt.Errorf("%s.deadlines: invalid kind key %q", prefix, kind))
				continue
			}
			if _, err := time.Parse("2006-01-02", deadline); err != nil {
				errs = append(errs, fmt.Errorf("%s.deadlines[%s]: invalid date %q", prefix, kind, deadline))
			}
		}
	}
	return errs
}

// ValidateSubmissionDocuments checks a submission list for errors
// against the set of known conference IDs, accumulating cross-file
// dependency and conference-reference checks.
func ValidateSubmissionDocuments(docs []SubmissionDocument, knownConferences map[string]bool) []error {
	var errs []error
	ids := make(map[string]bool)

	for i, s := range docs {
		prefix := fmt.Sprintf("submissions[%d]", i)
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[s.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate submission id %q", prefix, s.ID))
		} else {
			ids[s.ID] = true
		}

		if s.Kind == "" {
			errs = append(errs, fmt.Errorf("%s.kind is required", prefix))
		} else if !validKinds[s.Kind] {
			errs = append(errs, fmt.Errorf("%s.kind: invalid value %q", prefix, s.Kind))
		}

		if s.ConferenceID != "" && !knownConferences[s.ConferenceID] {
			errs = append(errs, fmt.Errorf("%s.conference_id: unresolved conference %q", prefix, s.ConferenceID))
		}

		if s.EarliestStartDate != nil {
			if _, err := time.Parse("2006-01-02", *s.EarliestStartDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.earliest_start_date: invalid date %q", prefix, *s.EarliestStartDate))
			}
		}
		if s.EngineeringReadyDate != nil {
			if _, err := time.Parse("2006-01-02", *s.EngineeringReadyDate); err != nil {
				errs = append(errs, fmt.Errorf("%s.engineering_ready_date: invalid date %q", prefix, *s.EngineeringReadyDate))
			}
		}
	}

	for i, s := range docs {
		prefix := fmt.Sprintf("submissions[%d]", i)
		for _, dep := range s.DependsOn {
			if dep == s.ID {
				errs = append(errs, fmt.Errorf("%s: self-dependency (depends_on contains its own id %q)", prefix, dep))
				continue
			}
			if !ids[dep] {
				errs = append(errs, fmt.Errorf("%s.depends_on: unresolved dependency %q", prefix, dep))
			}
		}
	}

	errs = append(errs, detectCycles(docs)...)

	return errs
}

// detectCycles runs DFS coloring over the depends_on graph, reporting
// every cycle found (spec §8 property 8: cycle rejection), grounded on
// the teacher's own detectCycles (internal/importer/validate.go).
func detectCycles(docs []SubmissionDocument) []error {
	graph := make(map[string][]string, len(docs))
	for _, s := range docs {
		graph[s.ID] = append(graph[s.ID], s.DependsOn...)
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(docs))
	var errs []error

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		for _, neighbor := range graph[node] {
			if color[neighbor] == gray {
				errs = append(errs, fmt.Errorf("circular dependency detected involving %q and %q", node, neighbor))
				return true
			}
			if color[neighbor] == white {
				if visit(neighbor) {
					return true
				}
			}
		}
		color[node] = black
		return false
	}

	for _, s := range docs {
		if color[s.ID] == white {
			visit(s.ID)
		}
	}
	return errs
}
