package testutil

import (
	"context"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/intelligence"
)

// ScriptedExtractor returns one prepared FieldMap per Extract call, in
// order, then empty maps once the script runs out. It implements the
// extraction contract without any model, which is how resolver behavior is
// exercised deterministically.
type ScriptedExtractor struct {
	Script   []domain.FieldMap
	Requests []intelligence.ExtractRequest
	calls    int
}

func (e *ScriptedExtractor) Extract(ctx context.Context, req intelligence.ExtractRequest) (domain.FieldMap, error) {
	e.Requests = append(e.Requests, req)
	if e.calls >= len(e.Script) {
		return domain.FieldMap{}, nil
	}
	out := e.Script[e.calls]
	e.calls++
	if out == nil {
		return domain.FieldMap{}, nil
	}
	return out, nil
}

// StaticFollowUps returns a fixed question and records every request, so
// tests can assert which fields the resolver asked about.
type StaticFollowUps struct {
	Question string
	Requests []intelligence.FollowUpRequest
}

func (g *StaticFollowUps) GenerateFollowUp(ctx context.Context, req intelligence.FollowUpRequest) string {
	g.Requests = append(g.Requests, req)
	if g.Question != "" {
		return g.Question
	}
	return intelligence.FallbackFollowUp(req)
}
