package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/intake/internal/cli/formatter"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var contextHint string

	cmd := &cobra.Command{
		Use:   "chat [SESSION_ID]",
		Short: "Run the interview as an interactive chat",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive(app) {
				return fmt.Errorf("chat needs a terminal; use 'intake answer' for scripted input")
			}

			ctx := context.Background()
			var sessionID, firstPrompt string

			resumeID := ""
			if len(args) == 1 {
				resumeID = args[0]
			} else if picked, err := pickActiveSession(ctx, app); err != nil {
				return err
			} else {
				resumeID = picked
			}

			if resumeID != "" {
				session, err := app.Qualify.GetSession(ctx, resumeID)
				if err != nil {
					return err
				}
				if session.Completed() {
					return fmt.Errorf("session %s is already completed", session.ID)
				}
				sessionID = session.ID
				if step, ok := app.Catalog.StepAt(session.CurrentStep); ok {
					firstPrompt = step.Prompt
				}
			} else {
				resp, err := app.Qualify.Start(ctx, contract.StartRequest{ContextHint: contextHint})
				if err != nil {
					return err
				}
				sessionID = resp.SessionID
				firstPrompt = resp.Prompt
			}

			model := newChatModel(app, sessionID, firstPrompt)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&contextHint, "context", "", "Context hint for a new session")

	return cmd
}

// pickActiveSession offers the resume wizard when active sessions exist.
// An empty result means "start a new one."
func pickActiveSession(ctx context.Context, app *App) (string, error) {
	sessions, err := app.Qualify.ListSessions(ctx, false)
	if err != nil || len(sessions) == 0 {
		return "", err
	}

	const fresh = ""
	ids := []string{fresh}
	labels := map[string]string{fresh: "Start a new session"}
	for _, s := range sessions {
		short := s.ID
		if len(short) > 8 {
			short = short[:8]
		}
		ids = append(ids, s.ID)
		labels[s.ID] = fmt.Sprintf("%s (step %d, %d fields)", short, s.CurrentStep, len(s.Data))
	}

	var picked string
	form := wizardSelectSession(labels, ids, &picked)
	if form == nil {
		return "", nil
	}
	if err := form.Run(); err != nil {
		return "", err
	}
	return picked, nil
}

// turnResultMsg carries the outcome of one submitted answer back into the
// update loop.
type turnResultMsg struct {
	resp *contract.TurnResponse
	err  error
}

type chatModel struct {
	app       *App
	sessionID string

	input   textinput.Model
	spin    spinner.Model
	waiting bool
	done    bool

	messages []string
	progress int
}

func newChatModel(app *App, sessionID, firstPrompt string) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 1000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	m := &chatModel{
		app:       app,
		sessionID: sessionID,
		input:     ti,
		spin:      sp,
	}

	m.messages = append(m.messages,
		formatter.Dim("Session "+sessionID),
		formatter.Bold(firstPrompt),
	)

	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.done {
				return m, tea.Quit
			}
			if m.waiting {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if text == "" {
				return m, nil
			}
			m.messages = append(m.messages, formatter.Dim("You: ")+text)
			m.waiting = true
			return m, tea.Batch(m.spin.Tick, m.submitTurn(text))
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case turnResultMsg:
		m.waiting = false
		if msg.err != nil {
			m.messages = append(m.messages, formatter.StyleRed.Render("Error: "+msg.err.Error()))
			return m, nil
		}
		return m.applyTurn(msg.resp)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) submitTurn(text string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.app.Qualify.ProcessResponse(context.Background(), contract.TurnRequest{
			SessionID: m.sessionID,
			Utterance: text,
		})
		return turnResultMsg{resp: resp, err: err}
	}
}

func (m *chatModel) applyTurn(resp *contract.TurnResponse) (tea.Model, tea.Cmd) {
	m.progress = resp.Progress

	if resp.IsComplete {
		m.done = true
		m.messages = append(m.messages,
			formatter.Bold(resp.Prompt),
			"",
			formatter.Header("Captured"),
			strings.TrimRight(formatter.FormatFields(resp.FinalData), "\n"),
			"",
			formatter.Dim("Press enter to exit."),
		)
		return m, nil
	}

	prompt := resp.Prompt
	if resp.IsOptional {
		prompt += formatter.Dim("  (optional)")
	}
	m.messages = append(m.messages, formatter.Bold(prompt))
	return m, nil
}

func (m *chatModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.RenderProgress(float64(m.progress)/100, 20))
	b.WriteString("\n\n")

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(m.spin.View())
		b.WriteString(formatter.Dim("Thinking..."))
		b.WriteString("\n")
		return b.String()
	}

	if !m.done {
		b.WriteString(formatter.StylePurple.Render("you") + formatter.Dim("> "))
		b.WriteString(m.input.View())
	}

	return b.String()
}
