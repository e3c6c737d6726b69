package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent, so the
// full list is replayed on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS qualification_sessions (
		id             TEXT PRIMARY KEY,
		current_step   INTEGER NOT NULL DEFAULT 1,
		structured     TEXT NOT NULL DEFAULT '{}',
		optional_asked INTEGER NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'active'
		               CHECK(status IN ('active','completed')),
		context_hint   TEXT NOT NULL DEFAULT '',
		rev            INTEGER NOT NULL DEFAULT 0,
		completed_at   TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS session_turns (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES qualification_sessions(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		utterance  TEXT NOT NULL DEFAULT '',
		prompt     TEXT NOT NULL,
		kind       TEXT NOT NULL
		           CHECK(kind IN ('seed','followup','optional','closing')),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_turns_session ON session_turns(session_id, seq)`,

	`CREATE INDEX IF NOT EXISTS idx_qualification_sessions_status ON qualification_sessions(status)`,
}
