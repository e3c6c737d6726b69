package intelligence

import (
	"context"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/llm"
)

type extractionService struct {
	client llm.Client
}

// NewExtractionService creates an Extractor backed by a language model
// client. Model failures of any kind — timeout, unreachable server,
// unparseable output — collapse to an empty extraction.
func NewExtractionService(client llm.Client) Extractor {
	return &extractionService{client: client}
}

func (s *extractionService) Extract(ctx context.Context, req ExtractRequest) (domain.FieldMap, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskExtract,
		SystemPrompt: buildExtractSystemPrompt(),
		UserPrompt:   buildExtractUserPrompt(req),
	})
	if err != nil {
		return domain.FieldMap{}, nil
	}

	raw, err := llm.ExtractJSON[map[string]any](resp.Text, nil)
	if err != nil {
		return domain.FieldMap{}, nil
	}

	// Unknown keys and empty values are dropped here: the conservative
	// policy extends to the key space, not just the values.
	return domain.NormalizeFields(raw, req.TargetFields), nil
}

// disabledExtractor is used when the language model is turned off. Every
// turn extracts nothing, which keeps the interview loop alive on the
// follow-up path.
type disabledExtractor struct{}

// NewDisabledExtractor returns an Extractor that never extracts anything.
func NewDisabledExtractor() Extractor {
	return disabledExtractor{}
}

func (disabledExtractor) Extract(ctx context.Context, req ExtractRequest) (domain.FieldMap, error) {
	return domain.FieldMap{}, nil
}
