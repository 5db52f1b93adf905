package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPrompt   = errors.New("empty prompt")
	ErrNoMessageText = errors.New("no message text")

	ErrCompletionTransport   = errors.New("completion request failed")
	ErrBadCompletionResponse = errors.New("malformed completion response")
	ErrMissingContent        = errors.New("missing content in completion response")

	ErrDeliveryTransport = errors.New("delivery request failed")
)

// PlatformError is a non-2xx reply from the messaging platform's send API.
// The body is kept verbatim for logs and never echoed to the caller.
type PlatformError struct {
	Status int
	Body   string
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("telegram API error %d: %s", e.Status, e.Body)
}
