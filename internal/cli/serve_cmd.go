package cli

import (
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Serve == nil {
				return fmt.Errorf("tool server is not configured")
			}
			if app.interactive() {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Waiting for an MCP client on stdin (Ctrl+C to stop)..."))
			}
			return app.Serve(cmd.Context())
		},
	}
}
