package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/alexanderramin/intake/internal/teatest"
	"github.com/alexanderramin/intake/internal/testutil"
)

// newChatApp wires a real service stack over in-memory SQLite with a
// scripted extractor, which is enough to drive the chat model end to end.
func newChatApp(t *testing.T, script []domain.FieldMap) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	cat := testutil.TwoStepCatalog()

	svc := service.NewQualificationService(
		cat,
		repository.NewSQLiteSessionRepo(database),
		repository.NewSQLiteTurnRepo(database),
		&testutil.ScriptedExtractor{Script: script},
		&testutil.StaticFollowUps{},
	)

	return &App{
		Qualify:       svc,
		Catalog:       cat,
		IsInteractive: func() bool { return true },
	}
}

func startChat(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	resp, err := app.Qualify.Start(context.Background(), contract.StartRequest{})
	require.NoError(t, err)

	d := teatest.New(t, newChatModel(app, resp.SessionID, resp.Prompt))
	d.DrainInit()
	return d
}

func TestChat_ShowsSeedPrompt(t *testing.T) {
	d := startChat(t, newChatApp(t, nil))

	assert.Contains(t, d.View(), "First question?")
	assert.Contains(t, d.View(), "you")
}

func TestChat_FollowUpAfterPartialAnswer(t *testing.T) {
	app := newChatApp(t, []domain.FieldMap{{"alpha": "a"}})
	d := startChat(t, app)

	d.Type("just alpha")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "You: just alpha")
	assert.Contains(t, view, "beta") // fallback follow-up names the missing field
	assert.False(t, d.Quitting)
}

func TestChat_CompletionShowsCapturedFields(t *testing.T) {
	app := newChatApp(t, []domain.FieldMap{
		{"alpha": "a", "beta": "b", "gamma": "g"},
		{"delta": "d"},
	})
	d := startChat(t, app)

	d.Type("step one answer")
	d.PressEnter()
	d.Type("step two answer")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "All done, thanks!")
	assert.Contains(t, view, "CAPTURED")
	assert.Contains(t, view, "delta")

	// Enter on the final screen exits.
	d.PressEnter()
	assert.True(t, d.Quitting)
}

func TestChat_EmptyInputIgnored(t *testing.T) {
	d := startChat(t, newChatApp(t, nil))

	before := d.View()
	d.PressEnter()
	assert.Equal(t, before, d.View())
}

func TestChat_EscQuits(t *testing.T) {
	d := startChat(t, newChatApp(t, nil))

	d.PressEsc()
	assert.True(t, d.Quitting)
}
