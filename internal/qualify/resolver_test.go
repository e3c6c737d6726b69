package qualify

import (
	"testing"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := &catalog.Catalog{
		Name:          "resolver-test",
		ClosingPrompt: "bye",
		Steps: []catalog.Step{
			{
				Step:              1,
				Name:              "discovery",
				Title:             "Discovery",
				Prompt:            "What's the problem?",
				TargetFields:      []string{"problem_type", "job_function", "urgency"},
				RequiredFields:    []string{"problem_type", "job_function"},
				HighValueOptional: []string{"urgency"},
			},
			{
				Step:           2,
				Name:           "company",
				Title:          "Company",
				Prompt:         "Tell me about the company?",
				TargetFields:   []string{"industry"},
				RequiredFields: []string{"industry"},
			},
		},
	}
	require.NoError(t, cat.Validate())
	return cat
}

func TestDecide_MissingRequired_AsksFollowUp(t *testing.T) {
	cat := testCatalog(t)
	data := domain.FieldMap{"problem_type": "customer_support"}

	d := Decide(cat, 1, data, false)

	assert.Equal(t, AskRequired, d.Kind)
	assert.Equal(t, 1, d.Step)
	assert.Equal(t, []string{"job_function"}, d.MissingRequired)
	assert.False(t, d.SectionComplete)
}

func TestDecide_NothingExtracted_AsksForAllRequired(t *testing.T) {
	cat := testCatalog(t)

	d := Decide(cat, 1, domain.FieldMap{}, false)

	assert.Equal(t, AskRequired, d.Kind)
	assert.Equal(t, []string{"problem_type", "job_function"}, d.MissingRequired)
}

// Required fields satisfied but a whitelisted optional is still open: one
// skippable ask, flagged section-complete because advancing is already legal.
func TestDecide_RequiredMet_AsksOptionalOnce(t *testing.T) {
	cat := testCatalog(t)
	data := domain.FieldMap{"problem_type": "customer_support", "job_function": "vp"}

	d := Decide(cat, 1, data, false)

	assert.Equal(t, AskOptional, d.Kind)
	assert.Equal(t, 1, d.Step)
	assert.Equal(t, []string{"urgency"}, d.OptionalTargets)
	assert.True(t, d.SectionComplete)
}

// The optional ask never re-blocks: with optionalAsked set, the same state
// advances instead.
func TestDecide_OptionalAlreadyAsked_Advances(t *testing.T) {
	cat := testCatalog(t)
	data := domain.FieldMap{"problem_type": "customer_support", "job_function": "vp"}

	d := Decide(cat, 1, data, true)

	assert.Equal(t, Advance, d.Kind)
	assert.Equal(t, 2, d.Step)
	assert.True(t, d.SectionComplete)
}

func TestDecide_OptionalAnswered_AdvancesWithoutAsking(t *testing.T) {
	cat := testCatalog(t)
	data := domain.FieldMap{
		"problem_type": "customer_support",
		"job_function": "vp",
		"urgency":      "high",
	}

	d := Decide(cat, 1, data, false)

	assert.Equal(t, Advance, d.Kind)
	assert.Equal(t, 2, d.Step)
}

func TestDecide_LastStepComplete_Finishes(t *testing.T) {
	cat := testCatalog(t)
	data := domain.FieldMap{"industry": "saas"}

	d := Decide(cat, 2, data, false)

	assert.Equal(t, Finish, d.Kind)
	assert.Equal(t, 3, d.Step)
	assert.True(t, d.SectionComplete)
}

func TestDecide_StepWithNoWhitelist_NeverAsksOptional(t *testing.T) {
	cat := testCatalog(t)
	// Step 2 has no optional fields at all, so a complete step goes straight
	// to finish even with optionalAsked false.
	d := Decide(cat, 2, domain.FieldMap{"industry": "saas"}, false)
	assert.Equal(t, Finish, d.Kind)
}

func TestDecide_PastLastStep_Finishes(t *testing.T) {
	cat := testCatalog(t)
	d := Decide(cat, 3, domain.FieldMap{}, false)
	assert.Equal(t, Finish, d.Kind)
}

// Whitelist intersection: only missing whitelisted fields are targeted, and
// a non-whitelisted missing optional never triggers an ask on its own.
func TestDecide_OptionalTargetsAreWhitelistIntersection(t *testing.T) {
	cat := &catalog.Catalog{
		Name: "whitelist-test",
		Steps: []catalog.Step{
			{
				Step:              1,
				Name:              "only",
				Title:             "Only",
				Prompt:            "?",
				TargetFields:      []string{"req", "hv1", "hv2", "low"},
				RequiredFields:    []string{"req"},
				HighValueOptional: []string{"hv1", "hv2"},
			},
		},
	}
	require.NoError(t, cat.Validate())

	// hv1 already captured: only hv2 remains worth asking.
	d := Decide(cat, 1, domain.FieldMap{"req": "x", "hv1": "y"}, false)
	require.Equal(t, AskOptional, d.Kind)
	assert.Equal(t, []string{"hv2"}, d.OptionalTargets)

	// Both high-value fields captured: "low" alone doesn't hold the step.
	d = Decide(cat, 1, domain.FieldMap{"req": "x", "hv1": "y", "hv2": "z"}, false)
	assert.Equal(t, Finish, d.Kind)
}
