package cli

import (
	"context"

	"github.com/alexanderramin/skillprompt/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Pipeline  service.PipelineService
	Selection service.SelectionService
	Stats     service.StatsService
	Catalog   service.CatalogService

	// Serve runs the MCP tool server over stdio until ctx is done.
	Serve func(ctx context.Context) error

	// IsInteractive reports whether stdin is a terminal. When false, commands
	// that take free text read it from stdin if no arguments are given.
	IsInteractive func() bool

	KeywordsLimit int
}

func (a *App) interactive() bool {
	return a.IsInteractive == nil || a.IsInteractive()
}

// NewRootCmd creates the top-level "skillprompt" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "skillprompt",
		Short:         "Image prompt builder backed by a reusable element library",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newIntentCmd(app),
		newQueryCmd(app),
		newQueryFieldCmd(app),
		newCheckCmd(app),
		newComposeCmd(app),
		newStatsCmd(app),
		newSelectCmd(app),
		newCatalogCmd(app),
		newServeCmd(app),
	)

	return root
}
