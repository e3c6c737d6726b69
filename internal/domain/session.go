package domain

import "time"

// Session is one run of the qualification interview. CurrentStep is 1-based
// and never decreases; once it passes the last catalog step the session is
// completed and immutable.
type Session struct {
	ID            string
	CurrentStep   int
	Data          FieldMap
	OptionalAsked bool
	Status        SessionStatus
	ContextHint   string
	Rev           int
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Completed reports whether the session has reached its terminal status.
func (s *Session) Completed() bool {
	return s.Status == SessionCompleted
}

// Turn is one recorded exchange: the respondent's utterance and the prompt
// issued in reply. Turns are append-only history; the interview engine never
// reads them back.
type Turn struct {
	ID        string
	SessionID string
	Seq       int
	Utterance string
	Prompt    string
	Kind      PromptKind
	CreatedAt time.Time
}
