// Package topo linearizes the submission dependency DAG (spec §4.5).
package topo

import (
	"sort"

	"github.com/alexanderramin/kairos/internal/domain"
)

// Order runs Kahn's algorithm over cfg.Submissions using only DependsOn
// edges that resolve to in-config submissions; unresolved edges are
// ignored here and surfaced later as validation violations (spec §4.5).
// Ties are broken by submission ID ascending for deterministic output
// (spec §5 ordering guarantees).
func Order(cfg *domain.Config) ([]string, error) {
	inDegree := make(map[string]int, len(cfg.Submissions))
	forward := make(map[string][]string, len(cfg.Submissions)) // dep -> dependents
	for id := range cfg.Submissions {
		inDegree[id] = 0
	}
	for id, s := range cfg.Submissions {
		for _, dep := range s.DependsOn {
			if _, ok := cfg.Submissions[dep]; !ok {
				continue // unresolved; validation kernel reports it
			}
			forward[dep] = append(forward[dep], id)
			inDegree[id]++
		}
	}

	var ready []string
	for id, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(cfg.Submissions))
	for len(ready) > 0 {
		sort.Strings(ready)
		next := ready[0]
		ready = ready[1:]
		order = append(order, next)

		var freed []string
		for _, dependent := range forward[next] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				freed = append(freed, dependent)
			}
		}
		sort.Strings(freed)
		ready = append(ready, freed...)
	}

	if len(order) != len(cfg.Submissions) {
		a, b := findCycleEdge(cfg, order)
		return nil, domain.NewCircularError(a, b)
	}
	return order, nil
}

// findCycleEdge returns a representative (dependent, dependency) pair
// that participates in a cycle, for a useful diagnostic message. placed
// is the set of submission IDs Kahn's algorithm successfully ordered
// before stalling.
func findCycleEdge(cfg *domain.Config, placed []string) (string, string) {
	done := make(map[string]bool, len(placed))
	for _, id := range placed {
		done[id] = true
	}
	var ids []string
	for id := range cfg.Submissions {
		if !done[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		for _, dep := range cfg.Submissions[id].DependsOn {
			if !done[dep] {
				if _, ok := cfg.Submissions[dep]; ok {
					return id, dep
				}
			}
		}
	}
	if len(ids) >= 2 {
		return ids[0], ids[1]
	}
	if len(ids) == 1 {
		return ids[0], ids[0]
	}
	return "", ""
}
