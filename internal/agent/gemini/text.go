package gemini

import (
	"context"
	"fmt"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	errx "github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/core/error"
	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// TextModel answers conversational messages with prior history as context.
type TextModel struct {
	cm        *gemini.ChatModel
	modelName string
}

func NewTextModel(ctx context.Context, client *genai.Client, cfg model.ChatModelConfig) (*TextModel, error) {
	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating chat model")
		return nil, fmt.Errorf("error creating chat model: %w", err)
	}
	return &TextModel{cm: cm, modelName: cfg.Model}, nil
}

// Generate sends the new user message with the prior turns as context and
// returns the model's reply. history must not already contain message; the
// caller passes everything retained before it.
func (m *TextModel) Generate(ctx context.Context, history []*schema.Message, message string) (string, error) {
	in := make([]*schema.Message, 0, len(history)+1)
	in = append(in, history...)
	in = append(in, schema.UserMessage(message))

	out, err := m.cm.Generate(ctx, in)
	if err != nil {
		return "", errx.WrapGemini(err)
	}
	if out == nil {
		return "", nil
	}

	m.logCost(out)
	return out.Content, nil
}

func (m *TextModel) logCost(out *schema.Message) {
	if out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return
	}
	usage := out.ResponseMeta.Usage
	_, _, total := model.ComputeCost(usage, model.ResolvePricing(m.modelName))
	logx.Debug().
		Str("model", m.modelName).
		Int("promptTokens", usage.PromptTokens).
		Int("completionTokens", usage.CompletionTokens).
		Float64("costUSD", total).
		Msg("chat completion")
}
