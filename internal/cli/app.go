// Package cli implements the kairos scheduling engine's command-line
// surface: non-interactive cobra subcommands (spec §11), replacing
// the teacher's interactive shell — the dashboard/shell layer is out of
// scope, but invoking the engine and inspecting its output is not.
package cli

import (
	"github.com/rs/zerolog"

	"github.com/alexanderramin/kairos/internal/repository"
)

// App holds the collaborators every subcommand needs: a logger and the
// saved-schedule store. Grounded on the teacher's own cli.App (internal/
// cli/root.go), which likewise threads a single struct of services
// through NewRootCmd and every newXCmd constructor.
type App struct {
	Logger zerolog.Logger
	Repo   repository.ScheduleRepo

	// ConfigPath is the path to config.json; its directory is the base
	// for resolving conferences.json and the data_files it names.
	ConfigPath string
}
