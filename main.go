package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/chat"
	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/gemini"
	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/pollinations"
	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/repo"
	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/bot"
	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/core"
	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
	pkgredis "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/redis"
)

// AppConfig defines all configurable parameters for the bot, sourced from
// environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Platform
	Discord model.DiscordConfig

	// LLM provider
	Gemini  gemini.ClientConfig
	Chat    model.ChatModelConfig
	Vision  model.VisionModelConfig
	Enhance model.EnhanceModelConfig

	// Media generation
	Image model.ImageConfig
	Video model.VideoConfig
	Quota model.QuotaConfig

	// Conversation history; Redis is optional and only used when a URL is set
	Conversation model.ConversationConfig
	Redis        pkgredis.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	client, err := gemini.NewClient(ctx, cfg.Gemini)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise Gemini client")
	}

	textModel, err := gemini.NewTextModel(ctx, client, cfg.Chat)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise chat model")
	}
	visionModel := gemini.NewVisionModel(client, cfg.Vision)
	enhancer, err := gemini.NewEnhancer(ctx, client, cfg.Enhance)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise enhance model")
	}

	conversations, err := newConversationRepository(ctx, cfg)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise conversation store")
	}

	usage := repo.NewFileUsageRepository(cfg.Quota.File, cfg.Video.Limit)
	if err := usage.Load(ctx); err != nil {
		logx.Fatal().Err(err).Str("path", cfg.Quota.File).Msg("failed to load usage counts")
	}

	media := pollinations.NewClient(cfg.Image, cfg.Video)
	chatSvc := chat.NewService(conversations, textModel)

	b, err := bot.New(cfg.Discord, chatSvc, visionModel, enhancer, media, usage)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to initialise bot")
	}

	logx.Info().Msg("starting bot")
	if err := b.Run(ctx); err != nil {
		logx.Fatal().Err(err).Msg("bot stopped")
	}
	logx.Info().Msg("shutdown complete")
}

// newConversationRepository picks the history backend: Redis when configured,
// otherwise process memory (history then lives only as long as the process,
// which is the intended scope for chat context).
func newConversationRepository(ctx context.Context, cfg AppConfig) (model.ConversationRepository, error) {
	if !cfg.Redis.Enabled() {
		return repo.NewMemoryConversationRepository(cfg.Conversation.MaxTurns), nil
	}

	rdb, err := cfg.Redis.New(ctx)
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(cfg.Conversation.TTL)
	if err != nil {
		return nil, err
	}
	return repo.NewRedisConversationRepository(rdb, cfg.Conversation.MaxTurns, ttl), nil
}
