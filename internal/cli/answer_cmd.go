package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/spf13/cobra"
)

func newAnswerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "answer SESSION_ID TEXT...",
		Short: "Submit one answer to an active session",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := args[0]
			utterance := strings.Join(args[1:], " ")

			stopSpinner := formatter.StartSpinner("Thinking...")
			resp, err := app.Qualify.ProcessResponse(context.Background(), contract.TurnRequest{
				SessionID: sessionID,
				Utterance: utterance,
			})
			stopSpinner()
			if err != nil {
				return err
			}

			printTurn(resp)
			return nil
		},
	}
}

// printTurn renders one turn response: progress line, then the next prompt.
func printTurn(resp *contract.TurnResponse) {
	step := resp.CurrentStep
	if step > resp.TotalSteps {
		step = resp.TotalSteps
	}
	fmt.Printf("Step %d of %d  %s\n\n",
		step, resp.TotalSteps,
		formatter.RenderProgress(float64(resp.Progress)/100, 20))

	if resp.IsComplete {
		fmt.Println(resp.Prompt)
		fmt.Println()
		fmt.Println(formatter.Header("Captured"))
		fmt.Println()
		fmt.Print(formatter.FormatFields(resp.FinalData))
		return
	}

	if resp.IsOptional {
		fmt.Println(formatter.Dim("(optional, feel free to skip)"))
	}
	fmt.Println(resp.Prompt)
}
