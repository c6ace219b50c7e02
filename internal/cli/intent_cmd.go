package cli

import (
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/cli/formatter"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/spf13/cobra"
)

func newIntentCmd(app *App) *cobra.Command {
	var (
		hint   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "intent [TEXT...]",
		Short: "Parse a free-text request into a structured intent",
		Example: `  skillprompt intent 古装美女，水墨风格
  echo "luxury product shot" | skillprompt intent --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := requestText(cmd, app, args)
			if err != nil {
				return err
			}
			in := app.Pipeline.ParseIntent(cmd.Context(), text, domain.Domain(hint))
			if asJSON {
				return printJSON(cmd, in)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatIntent(in))
			return nil
		},
	}

	addDomainHintFlag(cmd.Flags(), &hint)
	addJSONFlag(cmd.Flags(), &asJSON, "the intent")

	return cmd
}
