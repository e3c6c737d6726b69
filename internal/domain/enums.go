package domain

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// PromptKind classifies the question shown to the respondent on a turn.
type PromptKind string

const (
	PromptSeed     PromptKind = "seed"     // a step's opening question
	PromptFollowUp PromptKind = "followup" // clarification for missing required fields
	PromptOptional PromptKind = "optional" // skippable ask for high-value optional fields
	PromptClosing  PromptKind = "closing"  // shown once when the interview finishes
)
