package catalog

const defaultClosingPrompt = "That's everything I needed — thank you! We'll review your answers and follow up with next steps shortly."

// Default returns the built-in business-intake catalog. Used when no catalog
// file is configured.
func Default() *Catalog {
	return &Catalog{
		Name:          "business-intake",
		ClosingPrompt: defaultClosingPrompt,
		Steps: []Step{
			{
				Step:   1,
				Name:   "discovery",
				Title:  "Problem & Role",
				Prompt: "To get started, tell me a bit about what brings you here — what problem are you hoping to solve, and what's your role in the organization?",
				TargetFields: []string{
					"problem_type", "job_function", "urgency",
				},
				RequiredFields:    []string{"problem_type", "job_function"},
				HighValueOptional: []string{"urgency"},
			},
			{
				Step:   2,
				Name:   "company",
				Title:  "Company Context",
				Prompt: "Thanks! Now a little about your company — what industry are you in, and roughly how many people work there?",
				TargetFields: []string{
					"industry", "company_size", "team_size",
				},
				RequiredFields:    []string{"industry", "company_size"},
				HighValueOptional: []string{"team_size"},
			},
			{
				Step:   3,
				Name:   "budget",
				Title:  "Budget & Timeline",
				Prompt: "Let's talk logistics. Do you have a budget range in mind for this, and when would you like to have a solution in place?",
				TargetFields: []string{
					"budget_range", "timeline", "existing_tools",
				},
				RequiredFields:    []string{"budget_range", "timeline"},
				HighValueOptional: []string{"existing_tools"},
			},
			{
				Step:   4,
				Name:   "decision",
				Title:  "Decision Process",
				Prompt: "Last topic — how do decisions like this usually get made at your company, and what's your part in that process?",
				TargetFields: []string{
					"decision_role", "start_date", "success_metric",
				},
				RequiredFields:    []string{"decision_role"},
				HighValueOptional: []string{"start_date", "success_metric"},
			},
		},
	}
}
