package intelligence

import (
	"context"
	"strings"

	"github.com/alexanderramin/intake/internal/llm"
)

// maxFollowUpLen guards against the model rambling. Anything longer than
// this is not a single conversational question.
const maxFollowUpLen = 400

type followUpService struct {
	client llm.Client
}

// NewFollowUpService creates a FollowUpGenerator backed by a language model
// client, with the deterministic template as its safety net.
func NewFollowUpService(client llm.Client) FollowUpGenerator {
	return &followUpService{client: client}
}

func (s *followUpService) GenerateFollowUp(ctx context.Context, req FollowUpRequest) string {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskFollowUp,
		SystemPrompt: buildFollowUpSystemPrompt(req.IsOptional),
		UserPrompt:   buildFollowUpUserPrompt(req),
	})
	if err != nil {
		return FallbackFollowUp(req)
	}

	question := strings.TrimSpace(resp.Text)
	question = strings.Trim(question, `"`)
	if question == "" || len(question) > maxFollowUpLen || !strings.Contains(question, "?") {
		return FallbackFollowUp(req)
	}
	return question
}

// NewTemplateFollowUpService returns a FollowUpGenerator that only uses the
// deterministic template. Used when the language model is disabled.
func NewTemplateFollowUpService() FollowUpGenerator {
	return templateFollowUp{}
}

type templateFollowUp struct{}

func (templateFollowUp) GenerateFollowUp(ctx context.Context, req FollowUpRequest) string {
	return FallbackFollowUp(req)
}
