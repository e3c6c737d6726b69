// Package contract holds the transport-agnostic request and response shapes
// exposed by the qualification core to its callers.
package contract

import "github.com/alexanderramin/intake/internal/domain"

// StartRequest opens a new interview session. SessionID may be empty, in
// which case the service assigns one.
type StartRequest struct {
	SessionID   string
	ContextHint string
}

// StartResponse carries the first prompt of a new session.
type StartResponse struct {
	SessionID   string
	CurrentStep int
	TotalSteps  int
	Prompt      string
}

// TurnRequest submits one respondent utterance to an existing session.
type TurnRequest struct {
	SessionID string
	Utterance string
}

// TurnResponse is the packet returned for every processed utterance: the
// next prompt to show plus enough state for a caller to render progress.
type TurnResponse struct {
	SessionID   string
	CurrentStep int
	TotalSteps  int
	Prompt      string

	// IsFollowUp is true when the prompt clarifies the current step rather
	// than opening the next one. IsOptional marks the skippable variant.
	IsFollowUp bool
	IsOptional bool

	// SectionComplete reports that the current step's required fields are
	// satisfied. It can be true while an optional follow-up is pending: the
	// ask is a bonus prompt, not a gate, and callers may legally move on.
	SectionComplete bool

	Progress int

	// IsComplete is true once the whole interview has finished; FinalData
	// then carries every captured field.
	IsComplete bool
	FinalData  domain.FieldMap
}
