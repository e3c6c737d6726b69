package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFields_FiltersAndTrims(t *testing.T) {
	raw := map[string]any{
		"problem_type": "  customer_support ",
		"job_function": "",
		"team_size":    float64(12),
		"head_count":   42, // not an allowed field
		"urgency":      nil,
		"notes":        []any{"a", "b"}, // non-scalar, dropped
	}

	got := NormalizeFields(raw, []string{"problem_type", "job_function", "team_size", "urgency"})

	assert.Equal(t, FieldMap{
		"problem_type": "customer_support",
		"team_size":    float64(12),
	}, got)
}

func TestNormalizeFields_IntValuesBecomeFloat(t *testing.T) {
	got := NormalizeFields(map[string]any{"team_size": 7}, []string{"team_size"})
	assert.Equal(t, float64(7), got["team_size"])
}

func TestFieldMap_CloneIsIndependent(t *testing.T) {
	orig := FieldMap{"a": "x"}
	clone := orig.Clone()
	clone["a"] = "y"
	clone["b"] = "z"

	assert.Equal(t, "x", orig["a"])
	assert.False(t, orig.Has("b"))
}
