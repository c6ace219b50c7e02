package cli

import (
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/cli/formatter"
	"github.com/alexanderramin/skillprompt/internal/compose"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/service"
	"github.com/spf13/cobra"
)

// selectOutput is the --json shape of the select command.
type selectOutput struct {
	Intent   domain.Intent            `json:"intent"`
	Elements []domain.SelectedElement `json:"elements"`
	Report   domain.Report            `json:"report"`
	Prompt   string                   `json:"prompt"`
}

func newSelectCmd(app *App) *cobra.Command {
	var (
		hint   string
		mode   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "select [TEXT...]",
		Short: "Run the whole pipeline: parse, pick the best element per field, check and compose",
		Example: `  skillprompt select 古装美女，水墨风格
  skillprompt select --mode detailed "cinematic asian woman, zhang yimou"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := requestText(cmd, app, args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			in := app.Pipeline.ParseIntent(ctx, text, domain.Domain(hint))
			results, err := app.Selection.SelectForIntent(ctx, in)
			if err != nil {
				return err
			}
			elements := service.SelectedElements(results)
			report := app.Pipeline.CheckConsistency(ctx, elements, &in)
			prompt := app.Pipeline.ComposePrompt(ctx, service.ComposeRequest{
				Elements: elements,
				Options: compose.Options{
					Mode:          domain.ParseComposeMode(mode),
					KeywordsLimit: app.KeywordsLimit,
				},
			})

			if asJSON {
				return printJSON(cmd, selectOutput{Intent: in, Elements: elements, Report: report, Prompt: prompt})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatIntent(in))
			if len(results) > 0 {
				fmt.Fprintln(out, formatter.FormatSelection(selectionRows(results)))
			} else {
				fmt.Fprintln(out, formatter.Dim("No catalog fields are planned for this domain."))
			}
			fmt.Fprintln(out, formatter.FormatReport(report))
			fmt.Fprintln(out, formatter.FormatPrompt(prompt, len(elements)))
			return nil
		},
	}

	addDomainHintFlag(cmd.Flags(), &hint)
	addModeFlag(cmd.Flags(), &mode)
	addJSONFlag(cmd.Flags(), &asJSON, "intent, elements, report and prompt")

	return cmd
}

func selectionRows(results []service.SlotResult) []formatter.SelectionRow {
	rows := make([]formatter.SelectionRow, 0, len(results))
	for _, r := range results {
		row := formatter.SelectionRow{Field: r.Slot.Field, Category: r.Slot.Category}
		if r.Candidate != nil {
			row.Name = r.Candidate.Name
			row.Template = r.Candidate.Template
		}
		rows = append(rows, row)
	}
	return rows
}
