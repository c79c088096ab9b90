package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// Service generates menu copy and waste insights from an LLM.
type Service struct {
	model llms.LLM
}

// NewService creates an OpenAI-backed service.
func NewService(apiKey string) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing OpenAI API key")
	}

	model, err := openai.New(
		openai.WithModel("gpt-4o-mini"),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
	}
	return &Service{model: model}, nil
}

// NewServiceWithModel wires an existing model, used by tests.
func NewServiceWithModel(model llms.LLM) *Service {
	return &Service{model: model}
}

func (s *Service) complete(ctx context.Context, system, prompt string) (string, error) {
	response, err := s.model.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	},
		llms.WithMaxTokens(400),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}
	if response == nil || len(response.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return strings.TrimSpace(response.Choices[0].Content), nil
}

// MenuDescription writes a short menu blurb for a recipe, highlighting
// the fresh ingredients it uses.
func (s *Service) MenuDescription(ctx context.Context, recipeName, category string, ingredients []string) (string, error) {
	prompt := fmt.Sprintf(
		"Write a two-sentence menu description for %q, a %s dish featuring %s. Keep it appetizing and under 50 words.",
		recipeName, category, strings.Join(ingredients, ", "),
	)
	return s.complete(ctx, "You are a restaurant menu copywriter.", prompt)
}

// WasteInsights summarizes a reorder report into actionable advice for
// the kitchen manager.
func (s *Service) WasteInsights(ctx context.Context, reportJSON string) (string, error) {
	prompt := fmt.Sprintf(
		"Given this inventory reorder report, list the three most important actions to reduce food waste this week:\n%s",
		reportJSON,
	)
	return s.complete(ctx, "You are a restaurant operations advisor.", prompt)
}
