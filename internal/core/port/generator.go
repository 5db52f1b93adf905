package port

import "context"

type TextGenerator interface {
	// GenerateFromPrompt sends a single user prompt to the completion provider
	// and returns the assistant's reply text unmodified.
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
}
