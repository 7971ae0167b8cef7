package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/kairos/internal/analytics"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Re-run analytics over a saved schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return err
			}

			saved, err := app.Repo.Load(context.Background(), runID)
			if err != nil {
				return fmt.Errorf("loading run %s: %w", runID, err)
			}

			metrics := analytics.Analyze(saved.Schedule, cfg)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s (%s), generated %s\n", saved.RunID, saved.Strategy, saved.GeneratedAt)
			fmt.Fprintf(out, "scheduled %d/%d (%.1f%%), makespan %d days\n",
				metrics.ScheduledCount, metrics.TotalSubmissions, metrics.CompletionRate, metrics.MakespanDays)
			fmt.Fprintf(out, "quality=%.1f efficiency=%.1f penalty=%.1f\n",
				metrics.Quality, metrics.Efficiency, metrics.Penalty.Total())
			fmt.Fprintf(out, "peak load=%d average load=%.2f days over cap=%d\n",
				metrics.LoadHistogram.PeakLoad, metrics.LoadHistogram.AverageLoad, metrics.LoadHistogram.DaysOverCap)
			for kind, count := range metrics.PerTypeCounts {
				fmt.Fprintf(out, "  %s: %d (%.1f%%)\n", kind, count, metrics.PerTypePercentages[kind])
			}
			if len(metrics.MissingSubmissions) > 0 {
				fmt.Fprintf(out, "missing: %v\n", metrics.MissingSubmissions)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run-id", "", "saved run ID to analyze")
	_ = cmd.MarkFlagRequired("run-id")

	return cmd
}
