package cli

import (
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [DOMAIN]",
		Short: "Show element counts per domain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domainID := ""
			if len(args) == 1 {
				domainID = args[0]
			}
			stats, err := app.Stats.LibraryStats(cmd.Context(), domainID)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, stats)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}

	addJSONFlag(cmd.Flags(), &asJSON, "stats")

	return cmd
}
