package cli

import (
	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to everything CLI commands need.
type App struct {
	Qualify service.QualificationService
	Catalog *catalog.Catalog

	// IsInteractive reports whether stdin is a terminal, which gates the
	// wizard and chat entrypoints.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "intake" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "intake",
		Short: "Multi-step qualification interview",
	}

	root.AddCommand(
		newStartCmd(app),
		newChatCmd(app),
		newAnswerCmd(app),
		newShowCmd(app),
		newListCmd(app),
		newCompleteCmd(app),
		newCatalogCmd(app),
	)

	return root
}

func interactive(app *App) bool {
	return app.IsInteractive != nil && app.IsInteractive()
}
