package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type extractedFields struct {
	ProblemType string `json:"problem_type"`
	Urgency     string `json:"urgency"`
}

func TestExtractJSON_CleanObject(t *testing.T) {
	raw := `{"problem_type": "customer_support", "urgency": "high"}`

	got, err := ExtractJSON[extractedFields](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "customer_support", got.ProblemType)
	assert.Equal(t, "high", got.Urgency)
}

func TestExtractJSON_MarkdownFence(t *testing.T) {
	raw := "```json\n{\"problem_type\": \"billing\"}\n```"

	got, err := ExtractJSON[extractedFields](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "billing", got.ProblemType)
}

func TestExtractJSON_BareFence(t *testing.T) {
	raw := "```\n{\"urgency\": \"low\"}\n```"

	got, err := ExtractJSON[extractedFields](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "low", got.Urgency)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Sure! Here is the extracted data:

{"problem_type": "onboarding"}

Let me know if you need anything else.`

	got, err := ExtractJSON[extractedFields](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "onboarding", got.ProblemType)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	raw := `{"outer": {"inner": "value"}, "flag": true}`

	got, err := ExtractJSON[map[string]any](raw, nil)

	require.NoError(t, err)
	inner, ok := got["outer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "value", inner["inner"])
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"note": "use {curly} braces", "problem_type": "other"}`

	got, err := ExtractJSON[map[string]any](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "use {curly} braces", got["note"])
}

func TestExtractJSON_CommentsStripped(t *testing.T) {
	raw := `{
		// model added this despite instructions
		"problem_type": "reporting", /* and this */
		"urgency": "medium"
	}`

	got, err := ExtractJSON[extractedFields](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "reporting", got.ProblemType)
	assert.Equal(t, "medium", got.Urgency)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[extractedFields]("I could not find any structured data.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_MalformedJSON(t *testing.T) {
	_, err := ExtractJSON[extractedFields](`{"problem_type": }`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(f extractedFields) error {
		if f.ProblemType == "" {
			return errors.New("problem_type is empty")
		}
		return nil
	}

	_, err := ExtractJSON[extractedFields](`{"urgency": "high"}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	got, err := ExtractJSON[extractedFields](`{"problem_type": "x"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "x", got.ProblemType)
}
