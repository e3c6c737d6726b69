package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
)

// SQLiteTurnRepo implements TurnRepo using a SQLite database.
type SQLiteTurnRepo struct {
	db *sql.DB
}

// NewSQLiteTurnRepo creates a new SQLiteTurnRepo.
func NewSQLiteTurnRepo(db *sql.DB) *SQLiteTurnRepo {
	return &SQLiteTurnRepo{db: db}
}

func (r *SQLiteTurnRepo) Append(ctx context.Context, t *domain.Turn) error {
	query := `INSERT INTO session_turns (id, session_id, seq, utterance, prompt, kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.SessionID,
		t.Seq,
		t.Utterance,
		t.Prompt,
		string(t.Kind),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session turn: %w", err)
	}
	return nil
}

func (r *SQLiteTurnRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.Turn, error) {
	query := `SELECT id, session_id, seq, utterance, prompt, kind, created_at
		FROM session_turns WHERE session_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing session turns: %w", err)
	}
	defer rows.Close()

	var turns []*domain.Turn
	for rows.Next() {
		var t domain.Turn
		var kind, createdAt string
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Seq, &t.Utterance, &t.Prompt, &kind, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning turn row: %w", err)
		}
		t.Kind = domain.PromptKind(kind)
		t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing turn created_at: %w", err)
		}
		turns = append(turns, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating turns: %w", err)
	}
	return turns, nil
}

func (r *SQLiteTurnRepo) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM session_turns WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting session turns: %w", err)
	}
	return n, nil
}
