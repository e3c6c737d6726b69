package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/intelligence"
	"github.com/alexanderramin/intake/internal/qualify"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/google/uuid"
)

type qualificationService struct {
	cat       *catalog.Catalog
	sessions  repository.SessionRepo
	turns     repository.TurnRepo
	extractor intelligence.Extractor
	followups intelligence.FollowUpGenerator
}

// NewQualificationService wires the interview engine. The catalog must
// already be validated; a broken catalog is a startup error, never a
// per-request one.
func NewQualificationService(
	cat *catalog.Catalog,
	sessions repository.SessionRepo,
	turns repository.TurnRepo,
	extractor intelligence.Extractor,
	followups intelligence.FollowUpGenerator,
) QualificationService {
	return &qualificationService{
		cat:       cat,
		sessions:  sessions,
		turns:     turns,
		extractor: extractor,
		followups: followups,
	}
}

func (s *qualificationService) Start(ctx context.Context, req contract.StartRequest) (*contract.StartResponse, error) {
	id := req.SessionID
	if id == "" {
		id = uuid.New().String()
	}

	firstStep, ok := s.cat.StepAt(1)
	if !ok {
		return nil, fmt.Errorf("catalog has no steps")
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:          id,
		CurrentStep: 1,
		Data:        domain.FieldMap{},
		Status:      domain.SessionActive,
		ContextHint: req.ContextHint,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	if err := s.recordTurn(ctx, session.ID, "", firstStep.Prompt, domain.PromptSeed); err != nil {
		return nil, err
	}

	return &contract.StartResponse{
		SessionID:   id,
		CurrentStep: 1,
		TotalSteps:  s.cat.TotalSteps(),
		Prompt:      firstStep.Prompt,
	}, nil
}

func (s *qualificationService) ProcessResponse(ctx context.Context, req contract.TurnRequest) (*contract.TurnResponse, error) {
	session, err := s.sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	if session.Completed() {
		return s.finalPacket(session), nil
	}

	step, ok := s.cat.StepAt(session.CurrentStep)
	if !ok {
		// Active session past the last step should not exist; repair by
		// finishing it.
		return s.finish(ctx, session, req.Utterance)
	}

	// Extraction first: the resolver decides on the merged data. A failed
	// extraction is an empty one; the interview continues either way.
	extracted, err := s.extractor.Extract(ctx, intelligence.ExtractRequest{
		Utterance:    req.Utterance,
		TargetFields: step.TargetFields,
		Existing:     session.Data,
		ContextHint:  session.ContextHint,
	})
	if err != nil {
		extracted = domain.FieldMap{}
	}
	session.Data = qualify.Merge(session.Data, extracted)

	decision := qualify.Decide(s.cat, session.CurrentStep, session.Data, session.OptionalAsked)

	switch decision.Kind {
	case qualify.AskRequired:
		prompt := s.followups.GenerateFollowUp(ctx, intelligence.FollowUpRequest{
			MissingFields:  decision.MissingRequired,
			PriorUtterance: req.Utterance,
			StepTitle:      step.Title,
			StepPrompt:     step.Prompt,
			IsOptional:     false,
		})
		if err := s.persistTurn(ctx, session, req.Utterance, prompt, domain.PromptFollowUp); err != nil {
			return nil, err
		}
		return &contract.TurnResponse{
			SessionID:   session.ID,
			CurrentStep: session.CurrentStep,
			TotalSteps:  s.cat.TotalSteps(),
			Prompt:      prompt,
			IsFollowUp:  true,
			Progress:    qualify.Progress(s.cat, session.CurrentStep, session.Data),
		}, nil

	case qualify.AskOptional:
		prompt := s.followups.GenerateFollowUp(ctx, intelligence.FollowUpRequest{
			MissingFields:  decision.OptionalTargets,
			PriorUtterance: req.Utterance,
			StepTitle:      step.Title,
			StepPrompt:     step.Prompt,
			IsOptional:     true,
		})
		session.OptionalAsked = true
		if err := s.persistTurn(ctx, session, req.Utterance, prompt, domain.PromptOptional); err != nil {
			return nil, err
		}
		return &contract.TurnResponse{
			SessionID:       session.ID,
			CurrentStep:     session.CurrentStep,
			TotalSteps:      s.cat.TotalSteps(),
			Prompt:          prompt,
			IsFollowUp:      true,
			IsOptional:      true,
			SectionComplete: true,
			Progress:        qualify.Progress(s.cat, session.CurrentStep, session.Data),
		}, nil

	case qualify.Advance:
		nextStep, ok := s.cat.StepAt(decision.Step)
		if !ok {
			return nil, fmt.Errorf("catalog step %d out of range", decision.Step)
		}
		session.CurrentStep = decision.Step
		session.OptionalAsked = false
		if err := s.persistTurn(ctx, session, req.Utterance, nextStep.Prompt, domain.PromptSeed); err != nil {
			return nil, err
		}
		return &contract.TurnResponse{
			SessionID:       session.ID,
			CurrentStep:     session.CurrentStep,
			TotalSteps:      s.cat.TotalSteps(),
			Prompt:          nextStep.Prompt,
			SectionComplete: true,
			Progress:        qualify.Progress(s.cat, session.CurrentStep, session.Data),
		}, nil

	default: // qualify.Finish
		return s.finish(ctx, session, req.Utterance)
	}
}

// finish moves the session to its terminal state and writes it out. This is
// the one place that sets CompletedAt.
func (s *qualificationService) finish(ctx context.Context, session *domain.Session, utterance string) (*contract.TurnResponse, error) {
	session.CurrentStep = s.cat.TotalSteps() + 1
	session.OptionalAsked = false
	session.Status = domain.SessionCompleted
	now := time.Now().UTC()
	session.CompletedAt = &now

	if err := s.persistTurn(ctx, session, utterance, s.cat.ClosingPrompt, domain.PromptClosing); err != nil {
		return nil, err
	}
	return s.finalPacket(session), nil
}

// finalPacket is the response for a finished interview. It is stable across
// repeated calls so that late turns on a completed session are harmless.
func (s *qualificationService) finalPacket(session *domain.Session) *contract.TurnResponse {
	return &contract.TurnResponse{
		SessionID:       session.ID,
		CurrentStep:     session.CurrentStep,
		TotalSteps:      s.cat.TotalSteps(),
		Prompt:          s.cat.ClosingPrompt,
		SectionComplete: true,
		Progress:        100,
		IsComplete:      true,
		FinalData:       session.Data.Clone(),
	}
}

func (s *qualificationService) Complete(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !session.Completed() {
		return nil, ErrSessionActive
	}
	return session, nil
}

func (s *qualificationService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, sessionID)
}

func (s *qualificationService) ListSessions(ctx context.Context, includeCompleted bool) ([]*domain.Session, error) {
	return s.sessions.List(ctx, includeCompleted)
}

func (s *qualificationService) Transcript(ctx context.Context, sessionID string) ([]*domain.Turn, error) {
	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return s.turns.ListBySession(ctx, sessionID)
}

// persistTurn saves the mutated session, then records the exchange. The
// session save carries the optimistic-concurrency check, so a racing turn
// for the same session fails before any transcript write.
func (s *qualificationService) persistTurn(ctx context.Context, session *domain.Session, utterance, prompt string, kind domain.PromptKind) error {
	if err := s.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return s.recordTurn(ctx, session.ID, utterance, prompt, kind)
}

func (s *qualificationService) recordTurn(ctx context.Context, sessionID, utterance, prompt string, kind domain.PromptKind) error {
	seq, err := s.turns.CountBySession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("counting turns: %w", err)
	}
	turn := &domain.Turn{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Seq:       seq + 1,
		Utterance: utterance,
		Prompt:    prompt,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.turns.Append(ctx, turn); err != nil {
		return fmt.Errorf("recording turn: %w", err)
	}
	return nil
}
