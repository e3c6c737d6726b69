package testutil

import "github.com/alexanderramin/intake/internal/catalog"

// TwoStepCatalog is a minimal valid catalog for tests that don't care about
// the full business-intake plan.
func TwoStepCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Name:          "test-two-step",
		ClosingPrompt: "All done, thanks!",
		Steps: []catalog.Step{
			{
				Step:              1,
				Name:              "first",
				Title:             "First",
				Prompt:            "First question?",
				TargetFields:      []string{"alpha", "beta", "gamma"},
				RequiredFields:    []string{"alpha", "beta"},
				HighValueOptional: []string{"gamma"},
			},
			{
				Step:           2,
				Name:           "second",
				Title:          "Second",
				Prompt:         "Second question?",
				TargetFields:   []string{"delta"},
				RequiredFields: []string{"delta"},
			},
		},
	}
}
