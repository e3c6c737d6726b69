package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/qualify"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var withTranscript bool

	cmd := &cobra.Command{
		Use:   "show SESSION_ID",
		Short: "Show a session's state and captured fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			session, err := app.Qualify.GetSession(ctx, args[0])
			if err != nil {
				return err
			}

			progress := 100
			if !session.Completed() {
				progress = qualify.Progress(app.Catalog, session.CurrentStep, session.Data)
			}
			fmt.Print(formatter.FormatSession(session, app.Catalog.TotalSteps(), progress))
			fmt.Println()

			if withTranscript {
				turns, err := app.Qualify.Transcript(ctx, session.ID)
				if err != nil {
					return err
				}
				fmt.Println(formatter.Header("Transcript"))
				fmt.Println()
				fmt.Print(formatter.FormatTranscript(turns))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTranscript, "transcript", false, "Include the full exchange history")

	return cmd
}
