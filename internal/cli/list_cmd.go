package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/qualify"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List interview sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Qualify.ListSessions(context.Background(), all)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSessionList(sessions, func(s *domain.Session) int {
				if s.Completed() {
					return 100
				}
				return qualify.Progress(app.Catalog, s.CurrentStep, s.Data)
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed sessions")

	return cmd
}
