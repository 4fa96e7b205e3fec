package gemini

import (
	"context"
	"fmt"

	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
	"google.golang.org/genai"
)

// ClientConfig holds credentials for the Gemini API. BaseURL is optional and
// only set when routing through a proxy.
type ClientConfig struct {
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`
}

// NewClient builds the shared genai client used by the text, vision and
// enhancement models.
func NewClient(ctx context.Context, cfg ClientConfig) (*genai.Client, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}
	return client, nil
}
