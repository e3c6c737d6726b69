package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/testutil"
)

func seedSessionForTurns(t *testing.T, repo *SQLiteSessionRepo, id string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), newSession(id)))
}

func TestTurnRepo_AppendAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	turns := NewSQLiteTurnRepo(database)
	ctx := context.Background()

	seedSessionForTurns(t, sessions, "sess-1")

	for i := 1; i <= 3; i++ {
		err := turns.Append(ctx, &domain.Turn{
			ID:        fmt.Sprintf("turn-%d", i),
			SessionID: "sess-1",
			Seq:       i,
			Utterance: fmt.Sprintf("answer %d", i),
			Prompt:    fmt.Sprintf("question %d", i),
			Kind:      domain.PromptFollowUp,
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	got, err := turns.ListBySession(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, turn := range got {
		assert.Equal(t, i+1, turn.Seq)
		assert.Equal(t, domain.PromptFollowUp, turn.Kind)
	}
}

func TestTurnRepo_ListScopedToSession(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	turns := NewSQLiteTurnRepo(database)
	ctx := context.Background()

	seedSessionForTurns(t, sessions, "a")
	seedSessionForTurns(t, sessions, "b")

	require.NoError(t, turns.Append(ctx, &domain.Turn{
		ID: "t1", SessionID: "a", Seq: 1, Prompt: "q", Kind: domain.PromptSeed, CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, turns.Append(ctx, &domain.Turn{
		ID: "t2", SessionID: "b", Seq: 1, Prompt: "q", Kind: domain.PromptSeed, CreatedAt: time.Now().UTC(),
	}))

	got, err := turns.ListBySession(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0].ID)
}

func TestTurnRepo_Count(t *testing.T) {
	database := testutil.NewTestDB(t)
	sessions := NewSQLiteSessionRepo(database)
	turns := NewSQLiteTurnRepo(database)
	ctx := context.Background()

	seedSessionForTurns(t, sessions, "sess-1")

	n, err := turns.CountBySession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, turns.Append(ctx, &domain.Turn{
		ID: "t1", SessionID: "sess-1", Seq: 1, Prompt: "q", Kind: domain.PromptSeed, CreatedAt: time.Now().UTC(),
	}))

	n, err = turns.CountBySession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
