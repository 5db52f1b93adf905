package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"tgcompanion/internal/core/domain"
	"time"

	"github.com/rs/zerolog/log"
)

// OpenAI talks to any provider speaking the OpenAI chat completions wire
// format (OpenAI, LocalAI, llama.cpp server, ...). The API key is optional;
// local providers accept unauthenticated requests.
type OpenAI struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
}

func NewOpenAI(baseURL, model, apiKey string, timeout time.Duration) *OpenAI {
	return &OpenAI{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
	}
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string              `json:"model"`
	Messages []completionMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			// RawMessage so a missing or non-string content maps to
			// ErrMissingContent instead of failing the whole decode.
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *OpenAI) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	payload := completionRequest{
		Model:    g.model,
		Messages: []completionMessage{{Role: "user", Content: prompt}},
	}

	payloadBuf := new(bytes.Buffer)
	if err := json.NewEncoder(payloadBuf).Encode(payload); err != nil {
		return "", fmt.Errorf("error encoding completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/chat/completions", payloadBuf)
	if err != nil {
		return "", fmt.Errorf("error creating completion request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Add("Authorization", "Bearer "+g.apiKey)
	}

	res, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionTransport, err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionTransport, err)
	}

	log.Debug().Int("status", res.StatusCode).Str("model", g.model).Msg("completion response")

	var result completionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBadCompletionResponse, err)
	}

	if len(result.Choices) == 0 {
		return "", domain.ErrMissingContent
	}

	// A pointer target so a JSON null is rejected along with absent or
	// non-string values instead of decoding to "".
	var content *string
	if err := json.Unmarshal(result.Choices[0].Message.Content, &content); err != nil || content == nil {
		return "", domain.ErrMissingContent
	}

	return *content, nil
}
