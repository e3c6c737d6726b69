package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/spf13/cobra"
)

func newCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete SESSION_ID",
		Short: "Verify a session finished and print its final packet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Qualify.Complete(context.Background(), args[0])
			if err != nil {
				if errors.Is(err, service.ErrSessionActive) {
					return fmt.Errorf("session %s is still active; answer its remaining questions first", args[0])
				}
				return err
			}

			fmt.Print(formatter.FormatSession(session, app.Catalog.TotalSteps(), 100))
			fmt.Println()
			return nil
		},
	}
}
