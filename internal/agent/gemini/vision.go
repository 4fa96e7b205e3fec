package gemini

import (
	"context"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	errx "github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/core/error"
	"google.golang.org/genai"
)

// Image is one inlined attachment forwarded to the vision model.
type Image struct {
	Data        []byte
	ContentType string
}

// VisionModel answers messages that carry image attachments. It is stateless:
// vision exchanges never read or write conversation history.
type VisionModel struct {
	client *genai.Client
	cfg    model.VisionModelConfig
}

func NewVisionModel(client *genai.Client, cfg model.VisionModelConfig) *VisionModel {
	return &VisionModel{client: client, cfg: cfg}
}

// Describe sends the message text plus the attached images and returns the
// model's reply.
func (m *VisionModel) Describe(ctx context.Context, message string, images []Image) (string, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	if message != "" {
		parts = append(parts, genai.NewPartFromText(message))
	}
	for _, img := range images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.ContentType))
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := m.client.Models.GenerateContent(ctx, m.cfg.Model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: int32(m.cfg.MaxTokens),
	})
	if err != nil {
		return "", errx.WrapGemini(err)
	}
	return resp.Text(), nil
}
