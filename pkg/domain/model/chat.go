package model

import "github.com/google/uuid"

// MessageID is a UUID-based identifier for a chat exchange, used to correlate
// later feedback with the answer it refers to.
type MessageID string

// NewMessageID generates a new UUID v4 MessageID
func NewMessageID() MessageID {
	return MessageID(uuid.New().String())
}

// String returns the string representation of the message ID
func (id MessageID) String() string {
	return string(id)
}

// ChatExchange is the outcome of a single question/answer round trip.
// TicketCreated is true if and only if a ticket was appended while handling
// this exchange.
type ChatExchange struct {
	Question      string
	Contact       string
	MessageID     MessageID
	Response      string
	TicketCreated bool
}

// Feedback is a user's verdict on an earlier answer. It is an input, not
// stored state: a negative verdict is translated into a ticket and then
// discarded.
type Feedback struct {
	MessageID        MessageID
	IsHelpful        bool
	Contact          string
	OriginalQuestion string
}
