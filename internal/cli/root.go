package cli

import (
	"github.com/Prokope45/Praestara/internal/api"
	"github.com/Prokope45/Praestara/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Checkins   service.CheckinService
	Onboarding service.OnboardingService
	Handler    *api.Handler

	// Owner identifies whose records the CLI reads and writes.
	Owner string

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "praestara" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "praestara",
		Short: "Values-anchored daily check-in companion",
	}

	root.AddCommand(
		newOnboardCmd(app),
		newCheckinCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
	)

	return root
}
