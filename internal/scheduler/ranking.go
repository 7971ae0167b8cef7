package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/kairos/internal/domain"
)

// priorityWeight returns the type-weight priority a submission ranks by
// (spec §4.7 Greedy: "engineering paper > mod > paper > poster >
// abstract"), generalized from the teacher's RiskPriority
// (internal/scheduler/sorter.go) ranking-int idiom.
func priorityWeight(s *domain.Submission, w domain.PriorityWeights) float64 {
	switch {
	case s.Kind == domain.KindPaper && s.Engineering:
		return w.EngineeringPaper
	case s.ConferenceID == "":
		return w.WorkItem
	case s.Kind == domain.KindPaper:
		return w.Paper
	case s.Kind == domain.KindPoster:
		return w.Poster
	default:
		return w.Abstract
	}
}

// Candidate is a submission ready to be ranked for placement: its
// topological predecessors are all scheduled (or have no in-config
// dependency), and it has not yet been placed.
type Candidate struct {
	Submission *domain.Submission
	Priority   float64
	Deadline   *time.Time
	Noise      float64 // Stochastic strategies add Gaussian noise here
}

// CanonicalSort orders candidates deterministically: priority weight
// descending, then nearest upcoming deadline, then submission ID
// ascending — the same shape as the teacher's CanonicalSort
// (internal/scheduler/sorter.go), generalized from
// risk→due-date→score→name→id to priority→deadline→id since this
// domain has no per-project risk dimension.
func CanonicalSort(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]

		scoreA, scoreB := a.Priority+a.Noise, b.Priority+b.Noise
		if scoreA != scoreB {
			return scoreA > scoreB
		}

		if (a.Deadline == nil) != (b.Deadline == nil) {
			return a.Deadline != nil
		}
		if a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline) {
			return a.Deadline.Before(*b.Deadline)
		}

		return a.Submission.ID < b.Submission.ID
	})
}

// BuildCandidates resolves the ranking Priority/Deadline fields for
// every submission in ids against cfg.
func BuildCandidates(ids []string, cfg *domain.Config) []Candidate {
	out := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		s := cfg.Submissions[id]
		c := Candidate{
			Submission: s,
			Priority:   priorityWeight(s, cfg.PriorityWeights),
		}
		if dl, ok := cfg.ResolvedDeadline(s); ok {
			d := dl
			c.Deadline = &d
		}
		out = append(out, c)
	}
	return out
}
