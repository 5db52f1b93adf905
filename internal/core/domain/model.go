package domain

// InboundMessage is one chat message received from the messaging platform,
// reduced to the fields the relay pipeline needs.
type InboundMessage struct {
	ChatID int64
	Text   string
}
