package repository

import (
	"context"

	"github.com/alexanderramin/intake/internal/domain"
)

// SessionRepo stores qualification sessions. Save is an atomic
// read-modify-write: it only applies when the caller holds the current
// revision, so two concurrent turns for the same session cannot both win.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	List(ctx context.Context, includeCompleted bool) ([]*domain.Session, error)
}

// TurnRepo stores the append-only interview transcript.
type TurnRepo interface {
	Append(ctx context.Context, t *domain.Turn) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Turn, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
}
