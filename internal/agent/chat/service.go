package chat

import (
	"context"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	"github.com/cloudwego/eino/schema"
)

// TextGenerator produces a reply for a new message given prior turns.
type TextGenerator interface {
	Generate(ctx context.Context, history []*schema.Message, message string) (string, error)
}

// Service runs one conversational exchange: store the user turn, call the
// model with the retained context, store the reply.
type Service struct {
	repo model.ConversationRepository
	gen  TextGenerator
}

func NewService(repo model.ConversationRepository, gen TextGenerator) *Service {
	return &Service{repo: repo, gen: gen}
}

// Reply appends the user message, generates a response with everything before
// it as prior context, appends the response and returns it.
//
// The new message is sent to the model once, as the explicit current message;
// the stored history passed alongside excludes it. Sending the full history
// plus the message again would duplicate it in the model's context.
func (s *Service) Reply(ctx context.Context, conversationID, message string) (string, error) {
	if err := s.repo.Append(ctx, conversationID, schema.UserMessage(message)); err != nil {
		return "", err
	}

	history, err := s.repo.History(ctx, conversationID)
	if err != nil {
		return "", err
	}
	if n := len(history); n > 0 {
		history = history[:n-1]
	}

	reply, err := s.gen.Generate(ctx, history, message)
	if err != nil {
		return "", err
	}

	if err := s.repo.Append(ctx, conversationID, schema.AssistantMessage(reply, nil)); err != nil {
		return "", err
	}
	return reply, nil
}

// Reset clears the conversation and reports whether there was anything to clear.
func (s *Service) Reset(ctx context.Context, conversationID string) (bool, error) {
	return s.repo.Clear(ctx, conversationID)
}
