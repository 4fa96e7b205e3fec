package repo

import (
	"context"
	"sync"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	"github.com/cloudwego/eino/schema"
)

// MemoryConversationRepository keeps conversation history in process memory.
// Restart clears everything; that is the intended lifetime for chat context.
//
// The mutex makes individual map operations safe under concurrent handlers.
// Two handlers for the same key can still interleave between their Append
// calls, so append order may not match event arrival order under races.
type MemoryConversationRepository struct {
	mu       sync.RWMutex
	maxTurns int
	turns    map[string][]*schema.Message
}

func NewMemoryConversationRepository(maxTurns int) *MemoryConversationRepository {
	return &MemoryConversationRepository{
		maxTurns: maxTurns,
		turns:    make(map[string][]*schema.Message),
	}
}

func (r *MemoryConversationRepository) Append(ctx context.Context, conversationID string, message *schema.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs := append(r.turns[conversationID], message)
	if r.maxTurns > 0 && len(msgs) > r.maxTurns {
		msgs = msgs[len(msgs)-r.maxTurns:]
	}
	r.turns[conversationID] = msgs
	return nil
}

func (r *MemoryConversationRepository) History(ctx context.Context, conversationID string) ([]*schema.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	msgs := r.turns[conversationID]
	out := make([]*schema.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (r *MemoryConversationRepository) Clear(ctx context.Context, conversationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.turns[conversationID]
	delete(r.turns, conversationID)
	return existed, nil
}

func (r *MemoryConversationRepository) Count(ctx context.Context, conversationID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.turns[conversationID]), nil
}

var _ model.ConversationRepository = (*MemoryConversationRepository)(nil)
