package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/gemini"
	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	errx "github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/core/error"
	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// ChatService runs conversational exchanges against the history store.
type ChatService interface {
	Reply(ctx context.Context, conversationID, message string) (string, error)
	Reset(ctx context.Context, conversationID string) (bool, error)
}

// VisionDescriber answers messages carrying image attachments.
type VisionDescriber interface {
	Describe(ctx context.Context, message string, images []gemini.Image) (string, error)
}

// PromptEnhancer rewrites generation prompts, falling back to the original on
// failure.
type PromptEnhancer interface {
	Enhance(ctx context.Context, prompt string) string
}

// MediaClient fetches generated images and videos.
type MediaClient interface {
	Image(ctx context.Context, req model.ImageRequest) ([]byte, error)
	Video(ctx context.Context, prompt string) ([]byte, error)
}

// Bot wires the Discord session to the chat, vision and media services. All
// state lives in the injected repositories; the bot itself is stateless per
// event.
type Bot struct {
	session  *discordgo.Session
	cfg      model.DiscordConfig
	chat     ChatService
	vision   VisionDescriber
	enhancer PromptEnhancer
	media    MediaClient
	usage    model.UsageRepository

	attachmentHTTP *http.Client
	registered     []*discordgo.ApplicationCommand
}

func New(
	cfg model.DiscordConfig,
	chatSvc ChatService,
	vision VisionDescriber,
	enhancer PromptEnhancer,
	media MediaClient,
	usage model.UsageRepository,
) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		session:        session,
		cfg:            cfg,
		chat:           chatSvc,
		vision:         vision,
		enhancer:       enhancer,
		media:          media,
		usage:          usage,
		attachmentHTTP: &http.Client{Timeout: 30 * time.Second},
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(b.onInteractionCreate)
	return b, nil
}

// Run opens the gateway connection, registers the slash commands and blocks
// until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}

	if err := b.registerSlashCommands(); err != nil {
		logx.Error().Err(err).Msg("failed to register slash commands")
	}

	<-ctx.Done()

	b.unregisterSlashCommands()
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logx.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("bot online")
}

// onMessageCreate applies the gate chain in fixed priority order: self-drop,
// addressing gate (guild messages need a mention or reply), forwarded-content
// notice, command dispatch, conversational fallthrough.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	isDM := m.GuildID == ""
	isReply := m.MessageReference != nil
	if !isDM && !b.mentionsMe(s, m) && !isReply {
		return
	}

	ctx := context.Background()
	content := StripMentions(m.Content)

	if content == "" && len(m.Attachments) == 0 {
		if len(m.MessageSnapshots) > 0 {
			b.replyFinal(newMessageResponder(s, m.Message), forwardedMessage)
		}
		return
	}

	r := newMessageResponder(s, m.Message)
	key := conversationKey(m)

	if cmd, args := ResolveCommand(content); cmd != CommandNone {
		b.dispatch(ctx, r, cmd, args, m.Author.ID, key, b.tierAllowed(s, m))
		return
	}

	b.conversational(ctx, s, r, m, key, content)
}

func (b *Bot) dispatch(ctx context.Context, r responder, cmd Command, args, userID, key string, tierAllowed bool) {
	switch cmd {
	case CommandImage:
		b.handleImage(ctx, r, args, tierAllowed)
	case CommandVideo:
		b.handleVideo(ctx, r, userID, args, tierAllowed)
	case CommandQuota:
		b.handleQuota(ctx, r, userID)
	case CommandModels:
		b.handleModels(ctx, r)
	case CommandNSFWInfo:
		b.handleNSFWInfo(ctx, r)
	case CommandReset:
		b.handleReset(ctx, r, key)
	}
}

// conversational resolves reply context and attachments, then either runs the
// vision path (stateless) or the history-backed chat path.
func (b *Bot) conversational(ctx context.Context, s *discordgo.Session, r responder, m *discordgo.MessageCreate, key, content string) {
	if err := s.ChannelTyping(m.ChannelID); err != nil {
		logx.Debug().Err(err).Msg("failed to send typing indicator")
	}

	// best-effort: prepend the referenced message as context
	if m.MessageReference != nil && m.MessageReference.MessageID != "" {
		if ref, err := s.ChannelMessage(m.ChannelID, m.MessageReference.MessageID); err == nil && ref.Content != "" {
			content = fmt.Sprintf("[Replying to %s: %q]\n%s", ref.Author.Username, ref.Content, content)
		} else if err != nil {
			logx.Debug().Err(err).Msg("failed to fetch replied-to message")
		}
	}

	if images := b.downloadImages(ctx, m.Attachments); len(images) > 0 {
		// vision replies never enter history
		reply, err := b.vision.Describe(ctx, content, images)
		if err != nil {
			logx.Error().Err(err).Msg("vision reply failed")
			b.replyFinal(r, errx.UserMessage(err))
			return
		}
		b.deliver(r, reply)
		return
	}

	b.handleChat(ctx, r, key, content)
}

// downloadImages fetches the image attachments of a message. Failures skip
// the attachment.
func (b *Bot) downloadImages(ctx context.Context, attachments []*discordgo.MessageAttachment) []gemini.Image {
	var images []gemini.Image
	for _, att := range attachments {
		if att == nil || !isImageContentType(att.ContentType) {
			continue
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, att.URL, nil)
		if err != nil {
			continue
		}
		resp, err := b.attachmentHTTP.Do(req)
		if err != nil {
			logx.Debug().Err(err).Str("url", att.URL).Msg("failed to download attachment")
			continue
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil || resp.StatusCode != http.StatusOK {
			logx.Debug().Err(err).Int("status", resp.StatusCode).Msg("failed to read attachment")
			continue
		}
		images = append(images, gemini.Image{Data: data, ContentType: att.ContentType})
	}
	return images
}

func isImageContentType(ct string) bool {
	return len(ct) > 6 && ct[:6] == "image/"
}

func (b *Bot) mentionsMe(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if s.State.User == nil {
		return false
	}
	for _, u := range m.Mentions {
		if u.ID == s.State.User.ID {
			return true
		}
	}
	return false
}

// tierAllowed decides whether gated content tiers may be requested here:
// DMs always, NSFW-marked channels, or when the author holds the bypass role.
func (b *Bot) tierAllowed(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	if m.GuildID == "" {
		return true
	}
	ch, err := s.State.Channel(m.ChannelID)
	if err != nil {
		ch, err = s.Channel(m.ChannelID)
	}
	if err == nil && ch.NSFW {
		return true
	}
	if b.cfg.NSFWBypassRole != "" && m.Member != nil &&
		slices.Contains(m.Member.Roles, b.cfg.NSFWBypassRole) {
		return true
	}
	return false
}

// conversationKey partitions history per user in DMs and per channel in guilds.
func conversationKey(m *discordgo.MessageCreate) string {
	if m.GuildID == "" {
		return m.Author.ID
	}
	return m.ChannelID
}
