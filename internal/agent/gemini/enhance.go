package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

const enhanceSystemPrompt = `You rewrite image-generation prompts. Expand the user's prompt into a single vivid, detailed prompt for a text-to-image model: add style, lighting, composition and quality descriptors while preserving the user's subject and intent. Reply with the rewritten prompt only, no commentary.`

// Enhancer rewrites raw image prompts into richer ones before generation.
// It is strictly best-effort: any failure falls back to the original prompt.
type Enhancer struct {
	cm *gemini.ChatModel
}

func NewEnhancer(ctx context.Context, client *genai.Client, cfg model.EnhanceModelConfig) (*Enhancer, error) {
	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating enhance model: %w", err)
	}
	return &Enhancer{cm: cm}, nil
}

// Enhance returns a rewritten prompt, or the original unchanged when the
// model call fails or produces nothing usable.
func (e *Enhancer) Enhance(ctx context.Context, prompt string) string {
	out, err := e.cm.Generate(ctx, []*schema.Message{
		schema.SystemMessage(enhanceSystemPrompt),
		schema.UserMessage(prompt),
	})
	if err != nil {
		logx.Debug().Err(err).Msg("prompt enhancement failed, using original")
		return prompt
	}
	enhanced := strings.TrimSpace(out.Content)
	if enhanced == "" {
		return prompt
	}
	return enhanced
}
