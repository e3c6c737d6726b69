package qualify

import (
	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/domain"
)

// DecisionKind is the action the resolver chose for a turn.
type DecisionKind string

const (
	// AskRequired: required fields are still missing; clarify before moving on.
	AskRequired DecisionKind = "ask_required"
	// AskOptional: the step is complete, but a skippable ask for high-value
	// optional fields is worth one prompt.
	AskOptional DecisionKind = "ask_optional"
	// Advance: move to the next step and issue its seed prompt.
	Advance DecisionKind = "advance"
	// Finish: the last step is complete; the interview is over.
	Finish DecisionKind = "finish"
)

// Decision is the resolver's verdict for one turn.
type Decision struct {
	Kind DecisionKind

	// Step the next prompt belongs to: the current step for asks, the
	// following step for Advance, N+1 for Finish.
	Step int

	// MissingRequired is set for AskRequired; OptionalTargets for AskOptional.
	MissingRequired []string
	OptionalTargets []string

	// SectionComplete means every required field of the current step is
	// satisfied, so advancing is already legal. True for AskOptional even
	// though a prompt is still issued: the optional ask is a bonus, not a gate.
	SectionComplete bool
}

// Decide inspects the merged session data against the current step and picks
// the next action. Evaluated once per utterance while the session is active.
//
// Every branch either asks a bounded follow-up or advances, so the interview
// can never stall: required asks end as soon as the fields arrive, and the
// optional ask fires at most once per step.
func Decide(cat *catalog.Catalog, currentStep int, data domain.FieldMap, optionalAsked bool) Decision {
	step, ok := cat.StepAt(currentStep)
	if !ok {
		// Past the last step; nothing left to ask.
		return Decision{Kind: Finish, Step: currentStep, SectionComplete: true}
	}

	missingRequired := missingFrom(step.RequiredFields, data)
	if len(missingRequired) > 0 {
		return Decision{
			Kind:            AskRequired,
			Step:            currentStep,
			MissingRequired: missingRequired,
		}
	}

	if !optionalAsked {
		missingOptional := missingFrom(step.OptionalFields(), data)
		targets := intersect(step.HighValueOptional, missingOptional)
		if len(targets) > 0 {
			return Decision{
				Kind:            AskOptional,
				Step:            currentStep,
				OptionalTargets: targets,
				SectionComplete: true,
			}
		}
	}

	next := currentStep + 1
	if next > cat.TotalSteps() {
		return Decision{Kind: Finish, Step: next, SectionComplete: true}
	}
	return Decision{Kind: Advance, Step: next, SectionComplete: true}
}

// missingFrom returns the fields of want absent from data, preserving order.
func missingFrom(want []string, data domain.FieldMap) []string {
	var out []string
	for _, f := range want {
		if !data.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// intersect returns the elements of a that also appear in b, in a's order.
func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, f := range b {
		inB[f] = true
	}
	var out []string
	for _, f := range a {
		if inB[f] {
			out = append(out, f)
		}
	}
	return out
}
