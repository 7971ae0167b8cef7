package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/kairos/internal/analytics"
	"github.com/alexanderramin/kairos/internal/validation"

	"github.com/alexanderramin/kairos/internal/tables"
)

func newExportCmd(app *App) *cobra.Command {
	var runID, outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a saved schedule's tables as CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return err
			}

			saved, err := app.Repo.Load(context.Background(), runID)
			if err != nil {
				return fmt.Errorf("loading run %s: %w", runID, err)
			}

			result := validation.ValidateSchedule(saved.Schedule, cfg)
			metrics := analytics.Analyze(saved.Schedule, cfg)

			scheduleRows := tables.BuildScheduleTable(saved.Schedule, cfg)
			deadlineRows := tables.BuildDeadlineTable(saved.Schedule, cfg)
			violationRows := tables.BuildViolationsTable(result)
			metricRows := tables.BuildMetricsTable(metrics)
			penaltyRows := tables.BuildPenaltiesTable(metrics)

			if err := tables.WriteCSVFiles(outDir, scheduleRows, metricRows, deadlineRows, violationRows, penaltyRows); err != nil {
				return fmt.Errorf("writing CSV files: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported run %s to %s\n", saved.RunID, outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run-id", "", "saved run ID to export")
	cmd.Flags().StringVar(&outDir, "out", "./export", "output directory for CSV files")
	_ = cmd.MarkFlagRequired("run-id")

	return cmd
}
