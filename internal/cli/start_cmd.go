package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var sessionID, contextHint string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new interview session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// On a terminal with no --context, offer the wizard; skipping
			// the hint is fine.
			if contextHint == "" && interactive(app) {
				if form := wizardContextHint(&contextHint); form != nil {
					if err := form.Run(); err != nil {
						return err
					}
				}
			}

			resp, err := app.Qualify.Start(ctx, contract.StartRequest{
				SessionID:   sessionID,
				ContextHint: contextHint,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Started session %s (step %d of %d)\n\n",
				formatter.Bold(resp.SessionID), resp.CurrentStep, resp.TotalSteps)
			fmt.Println(resp.Prompt)
			fmt.Println()
			fmt.Println(formatter.Dim(fmt.Sprintf("Reply with: intake answer %s \"...\"", resp.SessionID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session-id", "", "Use a caller-chosen session ID")
	cmd.Flags().StringVar(&contextHint, "context", "", "Free-form context shown to the extractor (e.g. lead source)")

	return cmd
}
