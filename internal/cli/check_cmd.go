package cli

import (
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/cli/formatter"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var (
		elementsFlag string
		intentFlag   string
		request      string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check chosen elements against an intent for conflicts",
		Long: `Check chosen elements against an intent for conflicts.

--elements and --intent take inline JSON, @FILE, or - for stdin.
--request parses the intent from free text instead of --intent.`,
		Example: `  skillprompt check --elements @chosen.json --request 古装美女
  skillprompt check --elements '[{"category":"eye_types","name":"blue_eyes"}]' --intent '{"subject":{"ethnicity":"East_Asian"}}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if elementsFlag == "" {
				return fmt.Errorf("--elements is required")
			}
			if intentFlag != "" && request != "" {
				return fmt.Errorf("use either --intent or --request, not both")
			}

			elements, err := parseElementsFlag(cmd, elementsFlag)
			if err != nil {
				return err
			}

			in := &domain.Intent{}
			switch {
			case intentFlag != "":
				raw, err := jsonArg(cmd, intentFlag)
				if err != nil {
					return err
				}
				if in, err = domain.ParseIntent(raw); err != nil {
					return fmt.Errorf("JSON parse error: %w", err)
				}
			case request != "":
				parsed := app.Pipeline.ParseIntent(cmd.Context(), request, domain.DomainAuto)
				in = &parsed
			}

			report := app.Pipeline.CheckConsistency(cmd.Context(), elements, in)
			if asJSON {
				return printJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(report))
			return nil
		},
	}

	cmd.Flags().StringVarP(&elementsFlag, "elements", "e", "", "selected elements JSON array")
	cmd.Flags().StringVarP(&intentFlag, "intent", "i", "", "intent JSON object")
	cmd.Flags().StringVarP(&request, "request", "r", "", "free-text request to parse as the intent")
	addJSONFlag(cmd.Flags(), &asJSON, "the report")

	return cmd
}
