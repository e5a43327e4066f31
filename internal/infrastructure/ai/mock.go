package ai

import (
	"context"
	"encoding/json"

	"github.com/skilltrail/skilltrail/internal/domain/ai"
)

// MockProvider returns a canned roadmap; used in tests and offline demos.
type MockProvider struct {
	Model    string
	Response string // overrides the canned document when set
}

func (p *MockProvider) ID() string {
	return "mock:" + p.Model
}

func (p *MockProvider) Complete(_ context.Context, req ai.CompletionRequest) (*ai.CompletionResponse, error) {
	text := p.Response
	if text == "" {
		doc := map[string]interface{}{
			"id":    "mock-roadmap",
			"title": "Mock Roadmap",
			"steps": []map[string]interface{}{
				{
					"id":     "step-1",
					"title":  "Getting Started",
					"type":   "module",
					"status": "unlocked",
					"children": []map[string]interface{}{
						{"id": "step-1-1", "title": "First Lesson", "type": "lesson", "status": "unlocked"},
					},
				},
			},
		}
		raw, _ := json.Marshal(doc)
		text = string(raw)
	}

	return &ai.CompletionResponse{
		Text:  text,
		Model: p.Model,
		Usage: ai.TokenUsage{InputTokens: len(req.Prompt) / 4, OutputTokens: len(text) / 4},
	}, nil
}
