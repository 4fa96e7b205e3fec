package model

// ================ Config ================

type ConversationConfig struct {
	// MaxTurns caps the retained history per conversation key. When an append
	// would exceed it, the oldest turns are evicted first.
	MaxTurns int    `envconfig:"CONVERSATION_MAX_TURNS" default:"20"`
	TTL      string `envconfig:"CONVERSATION_TTL" default:"0"`
}

type ChatModelConfig struct {
	Model       string  `envconfig:"CHAT_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"CHAT_MAX_TOKENS" default:"1000"`
	Temperature float32 `envconfig:"CHAT_TEMPERATURE" default:"0.9"`
}

type VisionModelConfig struct {
	Model     string `envconfig:"VISION_MODEL" default:"gemini-2.5-flash"`
	MaxTokens int    `envconfig:"VISION_MAX_TOKENS" default:"1000"`
}

type EnhanceModelConfig struct {
	Model       string  `envconfig:"ENHANCE_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"ENHANCE_MAX_TOKENS" default:"300"`
	Temperature float32 `envconfig:"ENHANCE_TEMPERATURE" default:"0.7"`
}

type ImageConfig struct {
	BaseURL string `envconfig:"IMAGE_BASE_URL" default:"https://image.pollinations.ai"`
	Timeout int    `envconfig:"IMAGE_TIMEOUT_SECONDS" default:"120"`
}

type VideoConfig struct {
	BaseURL string `envconfig:"VIDEO_BASE_URL"`
	Timeout int    `envconfig:"VIDEO_TIMEOUT_SECONDS" default:"300"`
	// Limit is the lifetime per-user ceiling for video generations.
	Limit int `envconfig:"VIDEO_LIMIT" default:"5"`
}

type QuotaConfig struct {
	File string `envconfig:"QUOTA_FILE" default:"usage.json"`
}

type DiscordConfig struct {
	Token string `envconfig:"DISCORD_TOKEN" required:"true"`
	// NSFWBypassRole lets holders request gated content tiers anywhere.
	NSFWBypassRole string `envconfig:"DISCORD_NSFW_BYPASS_ROLE"`
}
