package cli

import (
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Maintain the element catalog",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogShowCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import domains and elements from a JSON seed file",
		Long: `Import domains and elements from a JSON seed file.

The file holds {"domains": [...], "elements": [...]}. Elements without an
element_id get a stable id derived from domain, category and name, so
re-importing a file updates rows in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Catalog.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d domains and %d elements from %s\n",
				formatter.StyleGreen.Render("✔"), result.DomainCount, result.ElementCount, args[0])
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Show elements whose name or category matches NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := app.Catalog.Show(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, e := range elements {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatElementShow(e))
			}
			return nil
		},
	}
}
