package service

import (
	"context"

	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
)

// QualificationService drives the interview: it owns the turn loop that
// joins extraction, the merge policy, the completion resolver, and the
// progress estimator, and persists the result of every turn.
type QualificationService interface {
	// Start creates a session and returns the first step's seed prompt.
	Start(ctx context.Context, req contract.StartRequest) (*contract.StartResponse, error)

	// ProcessResponse runs one turn. On a completed session it echoes the
	// final packet instead of failing, mirroring Complete's idempotency.
	ProcessResponse(ctx context.Context, req contract.TurnRequest) (*contract.TurnResponse, error)

	// Complete verifies the terminal persistence write. Idempotent: calling
	// it again after completion never alters CompletedAt.
	Complete(ctx context.Context, sessionID string) (*domain.Session, error)

	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	ListSessions(ctx context.Context, includeCompleted bool) ([]*domain.Session, error)
	Transcript(ctx context.Context, sessionID string) ([]*domain.Turn, error)
}
