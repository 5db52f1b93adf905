package service

import (
	"context"
	"fmt"
	"strings"
	"tgcompanion/internal/core/domain"
	"tgcompanion/internal/core/port"

	"github.com/rs/zerolog/log"
)

// DeliveredAck is the fixed webhook response body once a reply has been
// pushed through the message sender.
const DeliveredAck = "OK"

// Relay sequences one inbound message through the completion provider and,
// when a sender is wired, on to the messaging platform. Every request is a
// single stateless round trip; outbound calls get exactly one attempt.
type Relay struct {
	generator port.TextGenerator
	sender    port.MessageSender
}

// NewRelay wires the pipeline. A nil sender switches the webhook path to
// inline replies: the completion text is returned to the caller instead of
// being pushed to the chat.
func NewRelay(generator port.TextGenerator, sender port.MessageSender) *Relay {
	return &Relay{generator: generator, sender: sender}
}

// Ask answers a direct prompt with the provider's completion text.
func (r *Relay) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.ErrEmptyPrompt
	}

	reply, err := r.generator.GenerateFromPrompt(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating completion: %w", err)
	}

	return reply, nil
}

// Answer handles one platform message. It validates the text before any
// outbound call, completes, and then either delivers the reply (returning
// DeliveredAck) or hands the reply back for an inline response. A delivery
// failure discards the generated text; it is not retried or queued.
func (r *Relay) Answer(ctx context.Context, message domain.InboundMessage) (string, error) {
	if strings.TrimSpace(message.Text) == "" {
		return "", domain.ErrNoMessageText
	}

	reply, err := r.generator.GenerateFromPrompt(ctx, message.Text)
	if err != nil {
		return "", fmt.Errorf("generating completion: %w", err)
	}

	if r.sender == nil {
		return reply, nil
	}

	if err := r.sender.SendMessage(ctx, message.ChatID, reply); err != nil {
		log.Error().Err(err).Int64("chatId", message.ChatID).Msg("failed to deliver reply")
		return "", fmt.Errorf("delivering reply: %w", err)
	}

	return DeliveredAck, nil
}
