package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/llm"
)

// fakeOllama spins up a server that answers /api/generate with the given
// model text.
func fakeOllama(t *testing.T, modelText string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"model":    "llama3.2",
			"response": modelText,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func clientFor(endpoint string) llm.Client {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = endpoint
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func TestExtract_KeepsOnlyTargetFields(t *testing.T) {
	srv := fakeOllama(t, `{"problem_type": "customer_support", "urgency": "high", "favorite_color": "blue"}`)
	svc := NewExtractionService(clientFor(srv.URL))

	got, err := svc.Extract(context.Background(), ExtractRequest{
		Utterance:    "We're drowning in support tickets, it's urgent",
		TargetFields: []string{"problem_type", "urgency"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.FieldMap{
		"problem_type": "customer_support",
		"urgency":      "high",
	}, got)
	assert.NotContains(t, got, "favorite_color")
}

func TestExtract_GarbageOutputYieldsEmptyMap(t *testing.T) {
	srv := fakeOllama(t, "I'm sorry, I can't produce JSON today.")
	svc := NewExtractionService(clientFor(srv.URL))

	got, err := svc.Extract(context.Background(), ExtractRequest{
		Utterance:    "hello",
		TargetFields: []string{"problem_type"},
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtract_FencedOutputStillParses(t *testing.T) {
	srv := fakeOllama(t, "```json\n{\"industry\": \"saas\"}\n```")
	svc := NewExtractionService(clientFor(srv.URL))

	got, err := svc.Extract(context.Background(), ExtractRequest{
		Utterance:    "we sell software subscriptions",
		TargetFields: []string{"industry"},
	})

	require.NoError(t, err)
	assert.Equal(t, "saas", got["industry"])
}

func TestExtract_TimeoutYieldsEmptyMapNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Tasks = map[llm.TaskType]llm.TaskConfig{
		llm.TaskExtract: {Temperature: 0, MaxTokens: 512, TimeoutMs: 50},
	}
	svc := NewExtractionService(llm.NewOllamaClient(cfg, llm.NoopObserver{}))

	got, err := svc.Extract(context.Background(), ExtractRequest{
		Utterance:    "hello",
		TargetFields: []string{"problem_type"},
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtract_ServerDownYieldsEmptyMapNotError(t *testing.T) {
	svc := NewExtractionService(clientFor("http://127.0.0.1:1"))

	got, err := svc.Extract(context.Background(), ExtractRequest{
		Utterance:    "hello",
		TargetFields: []string{"problem_type"},
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDisabledExtractor_AlwaysEmpty(t *testing.T) {
	svc := NewDisabledExtractor()

	got, err := svc.Extract(context.Background(), ExtractRequest{
		Utterance:    "my budget is 50k and I decide myself",
		TargetFields: []string{"budget_range", "decision_role"},
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}
