package cli

import (
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/cli/formatter"
	"github.com/alexanderramin/skillprompt/internal/compose"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/service"
	"github.com/spf13/cobra"
)

func newComposeCmd(app *App) *cobra.Command {
	var (
		elementsFlag  string
		mode          string
		subject       string
		keywordsLimit int
		raw           bool
	)

	cmd := &cobra.Command{
		Use:     "compose",
		Short:   "Compose chosen elements into a final prompt",
		Example: `  skillprompt compose --elements @chosen.json --mode detailed --subject "A young woman"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if elementsFlag == "" {
				return fmt.Errorf("--elements is required")
			}
			elements, err := parseElementsFlag(cmd, elementsFlag)
			if err != nil {
				return err
			}

			limit := keywordsLimit
			if !cmd.Flags().Changed("keywords-limit") {
				limit = app.KeywordsLimit
			}

			prompt := app.Pipeline.ComposePrompt(cmd.Context(), service.ComposeRequest{
				Elements: elements,
				Options: compose.Options{
					Mode:          domain.ParseComposeMode(mode),
					KeywordsLimit: limit,
					SubjectDesc:   subject,
				},
			})

			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), prompt)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPrompt(prompt, len(elements)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&elementsFlag, "elements", "e", "", "selected elements JSON array (inline, @FILE or -)")
	addModeFlag(cmd.Flags(), &mode)
	cmd.Flags().StringVar(&subject, "subject", "", "subject description that replaces the subject section")
	cmd.Flags().IntVar(&keywordsLimit, "keywords-limit", compose.DefaultKeywordsLimit, "keywords kept per element template")
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the prompt text")

	return cmd
}
