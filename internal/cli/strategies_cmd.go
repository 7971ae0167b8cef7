package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// strategyDescriptions documents the six scheduler strategies (spec
// §4.7) plus their two aliases, for `kairos strategies`.
var strategyDescriptions = []struct {
	Tag, Description string
}{
	{"greedy", "day-by-day ranked placement by priority weight"},
	{"stochastic", "greedy with Gaussian-perturbed ranking (alias: random)"},
	{"lookahead", "greedy that simulates top candidates over a look-ahead window"},
	{"backtracking", "DFS placement that unwinds on infeasible commitments"},
	{"heuristic", "greedy with a selectable ranking rule"},
	{"optimal", "branch-and-bound minimum-makespan search (alias: advanced)"},
}

func newStrategiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available scheduler strategy tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range strategyDescriptions {
				fmt.Fprintf(out, "%-14s %s\n", s.Tag, s.Description)
			}
			return nil
		},
	}
}
