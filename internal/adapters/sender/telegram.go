package sender

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

// Telegram pushes replies through the bot API's sendMessage method. The base
// URL is configurable so tests can point it at a local server.
type Telegram struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewTelegram(baseURL, token string, timeout time.Duration) *Telegram {
	return &Telegram{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

func (s *Telegram) SendMessage(ctx context.Context, chatID int64, text string) error {
	payload := sendMessageRequest{ChatID: chatID, Text: text}

	payloadBuf := new(bytes.Buffer)
	if err := json.NewEncoder(payloadBuf).Encode(payload); err != nil {
		return fmt.Errorf("error encoding sendMessage request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, payloadBuf)
	if err != nil {
		return fmt.Errorf("error creating sendMessage request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryTransport, err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(res.Body)
		log.Error().Int("status", res.StatusCode).Str("body", string(body)).
			Int64("chatId", chatID).Msg("telegram send failed")
		return &domain.PlatformError{Status: res.StatusCode, Body: string(body)}
	}

	log.Debug().Int64("chatId", chatID).Msg("message delivered")

	return nil
}
