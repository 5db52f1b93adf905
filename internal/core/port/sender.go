package port

import "context"

type MessageSender interface {
	// SendMessage pushes text to the given chat on the messaging platform.
	SendMessage(ctx context.Context, chatID int64, text string) error
}
