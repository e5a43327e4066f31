package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/skilltrail/skilltrail/internal/domain"
	"github.com/skilltrail/skilltrail/internal/domain/ai"
	"github.com/skilltrail/skilltrail/internal/domain/events"
	"github.com/skilltrail/skilltrail/internal/domain/roadmap"
)

// GenerateService drafts a roadmap for a topic using an AI provider. The
// output is schema-validated through the import path before anything is
// written.
type GenerateService struct {
	provider   ai.Provider
	roadmapSvc *RoadmapService
	activity   domain.ActivityLogger
}

func NewGenerateService(provider ai.Provider, roadmapSvc *RoadmapService, activity domain.ActivityLogger) *GenerateService {
	return &GenerateService{provider: provider, roadmapSvc: roadmapSvc, activity: activity}
}

const generateSystemPrompt = `You are an expert curriculum designer. You return a single JSON object describing a learning roadmap. The object has "id", "title", "description", and "steps". Each step has "id", "title", "type" (one of lesson, module, quiz, assignment, section, external_resource), optional "estimated_duration", optional "points", and optional nested "children". Top-level steps should be modules or sections. Return ONLY the JSON object with no surrounding text, no markdown, and no code fences.`

// Generate asks the provider for a roadmap on the topic, validates it, and
// stores it as the workspace roadmap.
func (s *GenerateService) Generate(ctx context.Context, topic string) (*roadmap.Roadmap, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	prompt := fmt.Sprintf(`Design a learning roadmap for the topic: %q.
Use 3-6 top-level modules, each with 2-5 child steps (lessons, quizzes, assignments, external resources).
Give every step a short, stable, kebab-case id.
Return ONLY the JSON object.`, topic)

	resp, err := s.provider.Complete(ctx, ai.CompletionRequest{
		Prompt:      prompt,
		System:      generateSystemPrompt,
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, fmt.Errorf("roadmap generation failed: %w", err)
	}

	cleanJSON := extractJSONPayload(resp.Text)
	rm, err := s.roadmapSvc.ImportJSON([]byte(cleanJSON))
	if err != nil {
		return nil, fmt.Errorf("generated roadmap rejected: %w", err)
	}

	if s.activity != nil {
		_ = s.activity.Log(events.TypeRoadmapGenerated, rm.ID, map[string]interface{}{
			"topic": topic,
			"model": resp.Model,
			"steps": rm.TotalSteps(),
		})
	}
	return rm, nil
}

// extractJSONPayload strips markdown fences and any prose around the first
// top-level JSON value in a model response.
func extractJSONPayload(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.IndexAny(text, "{[")
	if start == -1 {
		return text
	}
	closing := byte('}')
	if text[start] == '[' {
		closing = ']'
	}
	if end := strings.LastIndexByte(text, closing); end > start {
		return text[start : end+1]
	}
	return text[start:]
}
