package generator

import (
	"context"
	"fmt"
	"tgcompanion/internal/core/domain"

	"github.com/revrost/go-openrouter"
)

// OpenRouterClient is the slice of the openrouter client the generator uses.
type OpenRouterClient interface {
	CreateChatCompletion(ctx context.Context,
		request openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

// OpenRouter is the alternate completion adapter, selected with
// COMPLETION_PROVIDER=openrouter.
type OpenRouter struct {
	client OpenRouterClient
	model  string
}

func NewOpenRouter(apiKey, model string) *OpenRouter {
	return &OpenRouter{
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("tgcompanion"),
		),
		model: model,
	}
}

func (g *OpenRouter) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	ccr := openrouter.ChatCompletionRequest{
		Model: g.model,
		Messages: []openrouter.ChatCompletionMessage{{
			Role: openrouter.ChatMessageRoleUser,
			Content: openrouter.Content{
				Text: prompt,
			},
		}},
	}

	resp, err := g.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return "", fmt.Errorf("%w: openrouter API error: %v", domain.ErrCompletionTransport, err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.ErrMissingContent
	}

	return resp.Choices[0].Message.Content.Text, nil
}
