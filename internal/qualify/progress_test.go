package qualify

import (
	"testing"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProgress_FourStepCatalog(t *testing.T) {
	cat := catalog.Default() // 4 steps, step 1 requires problem_type + job_function

	tests := []struct {
		name string
		step int
		data domain.FieldMap
		want int
	}{
		{"fresh session", 1, domain.FieldMap{}, 0},
		{"half of step one", 1, domain.FieldMap{"problem_type": "x"}, 13},
		{"step one done", 1, domain.FieldMap{"problem_type": "x", "job_function": "y"}, 25},
		{"start of step two", 2, domain.FieldMap{}, 25},
		{"start of step four", 4, domain.FieldMap{}, 75},
		{"step four done", 4, domain.FieldMap{"decision_role": "owner"}, 100},
		{"past the end", 5, domain.FieldMap{}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(cat, tt.step, tt.data))
		})
	}
}

// A step with no required fields contributes its full share on arrival.
func TestProgress_StepWithoutRequiredFields(t *testing.T) {
	cat := &catalog.Catalog{
		Steps: []catalog.Step{
			{Step: 1, Name: "a", Prompt: "?", TargetFields: []string{"x"}},
			{Step: 2, Name: "b", Prompt: "?", TargetFields: []string{"y"}, RequiredFields: []string{"y"}},
		},
	}

	assert.Equal(t, 50, Progress(cat, 1, domain.FieldMap{}))
}

func TestProgress_NeverExceeds100(t *testing.T) {
	cat := &catalog.Catalog{
		Steps: []catalog.Step{
			{Step: 1, Name: "a", Prompt: "?", TargetFields: []string{"x"}, RequiredFields: []string{"x"}},
			{Step: 2, Name: "b", Prompt: "?", TargetFields: []string{"y"}, RequiredFields: []string{"y"}},
			{Step: 3, Name: "c", Prompt: "?", TargetFields: []string{"z"}, RequiredFields: []string{"z"}},
		},
	}

	// Last step fully filled: base 67 + section 33 = 100, clamped if rounding
	// pushes past it.
	got := Progress(cat, 3, domain.FieldMap{"z": "done"})
	assert.LessOrEqual(t, got, 100)
	assert.GreaterOrEqual(t, got, 99)
}
