// Package intelligence adapts the language model to the two narrow
// capabilities the interview engine consumes: conservative field extraction
// and follow-up question generation. Both degrade deterministically when the
// model misbehaves, so a turn always completes.
package intelligence

import (
	"context"

	"github.com/alexanderramin/intake/internal/domain"
)

// ExtractRequest asks for structured fields from one respondent utterance.
type ExtractRequest struct {
	Utterance    string
	TargetFields []string
	Existing     domain.FieldMap
	ContextHint  string
}

// Extractor pulls explicitly-stated facts out of free-form text. A field the
// respondent did not clearly state must be omitted, never guessed: callers
// treat an absent field as genuinely unknown. On model failure the extractor
// returns an empty map and no error — a failed call is "no information
// gained this turn," not a broken session.
type Extractor interface {
	Extract(ctx context.Context, req ExtractRequest) (domain.FieldMap, error)
}

// FollowUpRequest asks for a conversational question targeting missing fields.
type FollowUpRequest struct {
	MissingFields  []string
	PriorUtterance string
	StepTitle      string
	StepPrompt     string
	IsOptional     bool
}

// FollowUpGenerator phrases the next question. Implementations must never
// fail: when the model is unusable they fall back to a deterministic
// template so the resolver always has a prompt to show.
type FollowUpGenerator interface {
	GenerateFollowUp(ctx context.Context, req FollowUpRequest) string
}
