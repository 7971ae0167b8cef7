package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/kairos/internal/configio"
	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/engine"
)

func newScheduleCmd(app *App) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run a scheduler strategy and save the resulting schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return err
			}

			result, engErr := engine.Run(domain.StrategyTag(strategy), cfg)
			if engErr != nil {
				return engErr
			}

			if err := app.Repo.Save(context.Background(), result.Schedule, result.Metrics); err != nil {
				return fmt.Errorf("saving schedule: %w", err)
			}

			app.Logger.Info().
				Str("run_id", result.Schedule.RunID).
				Str("strategy", result.Schedule.Strategy).
				Int("scheduled", result.Metrics.ScheduledCount).
				Int("total", result.Metrics.TotalSubmissions).
				Bool("valid", result.Validation.IsValid).
				Msg("schedule run complete")

			fmt.Fprintf(cmd.OutOrStdout(), "run %s (%s): %d/%d scheduled, quality=%.1f efficiency=%.1f penalty=%.1f\n",
				result.Schedule.RunID, result.Schedule.Strategy,
				result.Metrics.ScheduledCount, result.Metrics.TotalSubmissions,
				result.Metrics.Quality, result.Metrics.Efficiency, result.Metrics.Penalty.Total())
			if !result.Validation.IsValid {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result.Validation.Summary)
			}
			for _, note := range result.Schedule.Informational {
				fmt.Fprintf(cmd.OutOrStdout(), "note: %s\n", note)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(domain.StrategyGreedy), "scheduler strategy tag (greedy|stochastic|lookahead|backtracking|heuristic|optimal)")

	return cmd
}

// loadConfig resolves app.ConfigPath into a domain.Config, treating its
// parent directory as the base for conferences.json and data_files.
func loadConfig(app *App) (*domain.Config, error) {
	baseDir := filepath.Dir(app.ConfigPath)
	cfg, err := configio.Load(baseDir, app.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
