package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel модель Gemini по умолчанию
const DefaultModel = "gemini-2.5-flash"

// GeminiGenerator TextGenerator поверх Google Gemini
type GeminiGenerator struct {
	client  *genai.Client
	modelID string
}

// NewGeminiGenerator создает клиента Gemini
func NewGeminiGenerator(ctx context.Context, apiKey, modelID string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: create gemini client: %v", ErrGenerate, err)
	}

	return &GeminiGenerator{client: client, modelID: modelID}, nil
}

// Generate отправляет промпт и склеивает текстовые части первого кандидата
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.modelID)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	result := strings.TrimSpace(text.String())
	if result == "" {
		return "", ErrEmptyResponse
	}
	return result, nil
}

// Close освобождает ресурсы клиента
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
