package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/kairos/internal/domain"
	"github.com/alexanderramin/kairos/internal/engine"
)

func newValidateCmd(app *App) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run a strategy and report its validation violations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app)
			if err != nil {
				return err
			}

			result, engErr := engine.Run(domain.StrategyTag(strategy), cfg)
			if engErr != nil {
				return engErr
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Validation.Summary)
			for _, v := range result.Validation.Violations {
				fmt.Fprintf(out, "  [%s] %s: %s\n", v.Severity, v.Kind, v.Description)
			}
			if result.Validation.IsValid {
				fmt.Fprintln(out, "schedule is valid")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(domain.StrategyGreedy), "scheduler strategy tag")

	return cmd
}
