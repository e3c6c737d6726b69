package intelligence

import (
	"context"
	"strings"
	"testing"
	"time"

	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/intake/internal/llm"
)

func TestGenerateFollowUp_UsesModelQuestion(t *testing.T) {
	srv := fakeOllama(t, `"What part of your job does this problem slow down the most?"`)
	svc := NewFollowUpService(clientFor(srv.URL))

	got := svc.GenerateFollowUp(context.Background(), FollowUpRequest{
		MissingFields:  []string{"job_function"},
		PriorUtterance: "we keep losing track of tickets",
	})

	assert.Equal(t, "What part of your job does this problem slow down the most?", got)
}

func TestGenerateFollowUp_RejectsNonQuestion(t *testing.T) {
	srv := fakeOllama(t, "Please tell me your job function.")
	svc := NewFollowUpService(clientFor(srv.URL))

	got := svc.GenerateFollowUp(context.Background(), FollowUpRequest{
		MissingFields: []string{"job_function"},
	})

	assert.Equal(t, FallbackFollowUp(FollowUpRequest{MissingFields: []string{"job_function"}}), got)
}

func TestGenerateFollowUp_RejectsRambling(t *testing.T) {
	srv := fakeOllama(t, strings.Repeat("why? ", 200))
	svc := NewFollowUpService(clientFor(srv.URL))

	got := svc.GenerateFollowUp(context.Background(), FollowUpRequest{
		MissingFields: []string{"budget_range"},
	})

	assert.Contains(t, got, "budget range")
	assert.LessOrEqual(t, len(got), maxFollowUpLen)
}

func TestGenerateFollowUp_TimeoutFallsBack(t *testing.T) {
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
		llm.TaskFollowUp: {Temperature: 0.7, MaxTokens: 256, TimeoutMs: 50},
	}
	svc := NewFollowUpService(llm.NewOllamaClient(cfg, llm.NoopObserver{}))

	got := svc.GenerateFollowUp(context.Background(), FollowUpRequest{
		MissingFields: []string{"timeline"},
	})

	assert.Contains(t, got, "timeline")
	assert.True(t, strings.HasSuffix(got, "?"))
}

func TestGenerateFollowUp_ServerDownFallsBack(t *testing.T) {
	svc := NewFollowUpService(clientFor("http://127.0.0.1:1"))

	got := svc.GenerateFollowUp(context.Background(), FollowUpRequest{
		MissingFields: []string{"company_size"},
		IsOptional:    false,
	})

	assert.Contains(t, got, "company size")
}

func TestTemplateFollowUpService_NeverCallsModel(t *testing.T) {
	svc := NewTemplateFollowUpService()

	got := svc.GenerateFollowUp(context.Background(), FollowUpRequest{
		MissingFields: []string{"decision_role"},
		IsOptional:    true,
	})

	assert.Contains(t, got, "decision role")
	assert.Contains(t, got, "skip")
}
