package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	data, err := marshalFields(s.Data)
	if err != nil {
		return err
	}

	query := `INSERT INTO qualification_sessions
		(id, current_step, structured, optional_asked, status, context_hint, rev, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.CurrentStep,
		data,
		boolToInt(s.OptionalAsked),
		string(s.Status),
		s.ContextHint,
		s.Rev,
		nullableTimeToString(s.CompletedAt, time.RFC3339),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting qualification session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, current_step, structured, optional_asked, status, context_hint, rev, completed_at, created_at, updated_at
		FROM qualification_sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

// Save persists a mutated session. The UPDATE is guarded by the revision the
// caller read, which serializes concurrent turns per session: the loser of a
// race gets ErrConflict instead of silently clobbering state.
func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.Session) error {
	data, err := marshalFields(s.Data)
	if err != nil {
		return err
	}

	query := `UPDATE qualification_sessions
		SET current_step = ?, structured = ?, optional_asked = ?, status = ?,
		    rev = rev + 1, completed_at = ?, updated_at = ?
		WHERE id = ? AND rev = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.CurrentStep,
		data,
		boolToInt(s.OptionalAsked),
		string(s.Status),
		nullableTimeToString(s.CompletedAt, time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		s.ID,
		s.Rev,
	)
	if err != nil {
		return fmt.Errorf("updating qualification session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		// Either the session is gone or another turn bumped the revision.
		if _, getErr := r.GetByID(ctx, s.ID); getErr != nil {
			return getErr
		}
		return ErrConflict
	}

	s.Rev++
	return nil
}

func (r *SQLiteSessionRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Session, error) {
	query := `SELECT id, current_step, structured, optional_asked, status, context_hint, rev, completed_at, created_at, updated_at
		FROM qualification_sessions`
	if !includeCompleted {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing qualification sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := r.scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var structured, status, createdAt, updatedAt string
	var completedAt sql.NullString
	var optionalAsked int

	err := row.Scan(
		&s.ID, &s.CurrentStep, &structured, &optionalAsked, &status,
		&s.ContextHint, &s.Rev, &completedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("qualification session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning qualification session: %w", err)
	}

	return r.populateSession(&s, structured, status, optionalAsked, completedAt, createdAt, updatedAt)
}

func (r *SQLiteSessionRepo) scanSessionRow(rows *sql.Rows) (*domain.Session, error) {
	var s domain.Session
	var structured, status, createdAt, updatedAt string
	var completedAt sql.NullString
	var optionalAsked int

	err := rows.Scan(
		&s.ID, &s.CurrentStep, &structured, &optionalAsked, &status,
		&s.ContextHint, &s.Rev, &completedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning session row: %w", err)
	}

	return r.populateSession(&s, structured, status, optionalAsked, completedAt, createdAt, updatedAt)
}

func (r *SQLiteSessionRepo) populateSession(s *domain.Session, structured, status string, optionalAsked int, completedAt sql.NullString, createdAt, updatedAt string) (*domain.Session, error) {
	if err := json.Unmarshal([]byte(structured), &s.Data); err != nil {
		return nil, fmt.Errorf("parsing structured data: %w", err)
	}
	if s.Data == nil {
		s.Data = domain.FieldMap{}
	}
	s.OptionalAsked = intToBool(optionalAsked)
	s.Status = domain.SessionStatus(status)
	s.CompletedAt = parseNullableTime(completedAt, time.RFC3339)

	var err error
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return s, nil
}

func marshalFields(m domain.FieldMap) (string, error) {
	if m == nil {
		m = domain.FieldMap{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshaling structured data: %w", err)
	}
	return string(data), nil
}
