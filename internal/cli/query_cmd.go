package cli

import (
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/cli/formatter"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/retrieval"
	"github.com/alexanderramin/skillprompt/internal/service"
	"github.com/spf13/cobra"
)

func newQueryCmd(app *App) *cobra.Command {
	var (
		keywords string
		limit    int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "query DOMAIN CATEGORY",
		Short:   "List catalog elements for a domain and category, ranked by keywords",
		Example: `  skillprompt query portrait makeup_styles --keywords traditional,chinese --limit 5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := app.Pipeline.QueryElements(cmd.Context(), service.QueryRequest{
				Domain:   domain.Domain(args[0]),
				Category: args[1],
				Keywords: retrieval.SplitKeywords(keywords),
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, candidates)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCandidates(args[0]+"/"+args[1], candidates))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	addSearchFlags(cmd.Flags(), &keywords, &limit)
	addJSONFlag(cmd.Flags(), &asJSON, "candidates")

	return cmd
}

func newQueryFieldCmd(app *App) *cobra.Command {
	var (
		keywords string
		domainID string
		limit    int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "query-field FIELD",
		Short:   "List catalog elements for a framework field such as styling.makeup",
		Example: `  skillprompt query-field lighting.lighting_type --keywords soft`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates, err := app.Pipeline.QueryByField(cmd.Context(), service.FieldQueryRequest{
				Field:    args[0],
				Keywords: retrieval.SplitKeywords(keywords),
				Domain:   domain.Domain(domainID),
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, candidates)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCandidates(args[0], candidates))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	addSearchFlags(cmd.Flags(), &keywords, &limit)
	cmd.Flags().StringVar(&domainID, "domain", string(domain.DomainPortrait), "catalog domain")
	addJSONFlag(cmd.Flags(), &asJSON, "candidates")

	return cmd
}
