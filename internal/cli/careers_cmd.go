package cli

import (
	"github.com/alexanderramin/astroverse/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCareersCmd(app *App) *cobra.Command {
	var output formatter.Format
	var filter string

	cmd := &cobra.Command{
		Use:     "careers",
		Aliases: []string{"ls"},
		Short:   "List career categories and careers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatter.WriteCatalog(cmd.OutOrStdout(), app.catalog().Filter(filter), output)
		},
	}

	addOutputFlag(cmd.Flags(), &output)
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only list careers matching this text")
	return cmd
}
