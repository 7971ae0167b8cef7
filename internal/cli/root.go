package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "kairos" command and registers every
// subcommand against app (spec §11: schedule, validate, analyze,
// export, strategies).
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "kairos",
		Short: "Publication scheduling engine",
		Long: `Publication scheduling engine.

Loads a set of submissions and conferences from JSON config, runs a
scheduler strategy, and reports the resulting schedule, its validation
outcome, and its analytics.`,
	}

	root.PersistentFlags().StringVar(&app.ConfigPath, "config", "config.json", "path to config.json")

	root.AddCommand(
		newScheduleCmd(app),
		newValidateCmd(app),
		newAnalyzeCmd(app),
		newExportCmd(app),
		newStrategiesCmd(app),
	)

	return root
}
