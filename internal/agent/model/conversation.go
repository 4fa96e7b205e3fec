package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// ConversationRepository stores the rolling per-conversation history. The key
// is the author's user ID in DMs and the channel ID in guild channels.
//
// History is non-mutating for unseen keys; entries are created on first Append.
type ConversationRepository interface {
	// Append adds a message to the conversation, evicting the oldest turns
	// when the configured maximum would be exceeded.
	Append(ctx context.Context, conversationID string, message *schema.Message) error

	// History returns the retained turns in arrival order, oldest first.
	// Unknown keys yield an empty slice, not an error.
	History(ctx context.Context, conversationID string) ([]*schema.Message, error)

	// Clear removes the conversation entirely and reports whether it existed,
	// so callers can tell "cleared" from "nothing to clear".
	Clear(ctx context.Context, conversationID string) (bool, error)

	// Count returns the number of retained turns.
	Count(ctx context.Context, conversationID string) (int, error)
}
