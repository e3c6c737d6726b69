package intelligence

import (
	"fmt"
	"strings"
)

// FallbackFollowUp builds a templated question from the first missing
// field's humanized name. It cannot fail, which is the whole point: the
// resolver always has a next prompt to show the respondent.
func FallbackFollowUp(req FollowUpRequest) string {
	if len(req.MissingFields) == 0 {
		// Degenerate input; re-ask the step's own question.
		if req.StepPrompt != "" {
			return req.StepPrompt
		}
		return "Could you tell me a bit more about that?"
	}

	topic := HumanizeField(req.MissingFields[0])
	if req.IsOptional {
		return fmt.Sprintf("If you're open to sharing, could you tell me about your %s? Feel free to skip this one.", topic)
	}
	return fmt.Sprintf("Thanks! Could you tell me a bit more about your %s?", topic)
}

// HumanizeField turns a snake_case field name into words for display and
// prompt text: "budget_range" becomes "budget range".
func HumanizeField(field string) string {
	return strings.TrimSpace(strings.ReplaceAll(field, "_", " "))
}
