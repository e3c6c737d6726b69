package cli

import (
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the interview plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatCatalog(app.Catalog))
			return nil
		},
	}
}
