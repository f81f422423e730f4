// Package llm holds the two generative collaborators: the statistical intent
// predictor and the free-form responder. The deterministic pipeline never
// depends on either; both sit behind interfaces defined in the model package
// and may be absent entirely.
package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"
)

type Config struct {
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
}

// NewGeminiChatModel builds a Gemini-backed chat model.
func NewGeminiChatModel(ctx context.Context, apiKey, modelName string, maxTokens int, temperature float32) (model.BaseChatModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       modelName,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini chat model: %w", err)
	}
	return cm, nil
}
