package bot

import (
	"context"
	"slices"
	"strings"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// slashCommands is the structured command surface. Each command funnels into
// the same handler as its text-command twin, so the two surfaces cannot drift.
func slashCommands() []*discordgo.ApplicationCommand {
	orientationChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "square", Value: string(model.OrientationSquare)},
		{Name: "portrait", Value: string(model.OrientationPortrait)},
		{Name: "landscape", Value: string(model.OrientationLandscape)},
	}
	modelChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(model.ImageModels))
	for _, m := range model.ImageModels {
		modelChoices = append(modelChoices, &discordgo.ApplicationCommandOptionChoice{Name: m, Value: m})
	}

	privateOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "private",
		Description: "Only you can see the response",
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "chat",
			Description: "Chat with Gemini",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "Your message",
					Required:    true,
				},
				privateOption,
			},
		},
		{
			Name:        "reset",
			Description: "Clear your conversation history with the AI",
		},
		{
			Name:        "imagine",
			Description: "Generate an image",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "prompt",
					Description: "What to draw",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "orientation",
					Description: "Image shape",
					Choices:     orientationChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "model",
					Description: "Image model",
					Choices:     modelChoices,
				},
				privateOption,
			},
		},
		{
			Name:        "video",
			Description: "Generate a short video (limited per user)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "prompt",
					Description: "What to animate",
					Required:    true,
				},
			},
		},
		{
			Name:        "quota",
			Description: "Show your remaining video generations",
		},
		{
			Name:        "models",
			Description: "List image models and flags",
		},
	}
}

func (b *Bot) registerSlashCommands() error {
	if b.session.State.User == nil {
		return nil
	}
	appID := b.session.State.User.ID
	for _, cmd := range slashCommands() {
		created, err := b.session.ApplicationCommandCreate(appID, "", cmd)
		if err != nil {
			return err
		}
		b.registered = append(b.registered, created)
	}
	logx.Info().Int("count", len(b.registered)).Msg("slash commands registered")
	return nil
}

func (b *Bot) unregisterSlashCommands() {
	if b.session.State.User == nil {
		return
	}
	appID := b.session.State.User.ID
	for _, cmd := range b.registered {
		if err := b.session.ApplicationCommandDelete(appID, "", cmd.ID); err != nil {
			logx.Warn().Err(err).Str("command", cmd.Name).Msg("failed to delete slash command")
		}
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx := context.Background()
	data := i.ApplicationCommandData()
	opts := commandOptions(data.Options)

	ephemeral := false
	if v, ok := opts["private"]; ok {
		ephemeral = v.BoolValue()
	}
	r := newInteractionResponder(s, i, ephemeral)

	userID := interactionUserID(i)
	// slash conversations are always keyed per user
	key := userID

	switch data.Name {
	case "chat":
		if err := r.Placeholder(""); err != nil {
			logx.Error().Err(err).Msg("failed to defer interaction")
			return
		}
		b.handleChat(ctx, r, key, opts["message"].StringValue())
	case "reset":
		b.handleReset(ctx, r, key)
	case "imagine":
		b.handleImage(ctx, r, imagineArgs(opts), b.tierAllowedInteraction(s, i))
	case "video":
		b.handleVideo(ctx, r, userID, opts["prompt"].StringValue(), b.tierAllowedInteraction(s, i))
	case "quota":
		b.handleQuota(ctx, r, userID)
	case "models":
		b.handleModels(ctx, r)
	default:
		logx.Warn().Str("command", data.Name).Msg("unknown slash command")
	}
}

// imagineArgs rebuilds the flag-parser input from the typed options, so the
// slash surface exercises the exact same parsing path as text commands.
func imagineArgs(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) string {
	var sb strings.Builder
	sb.WriteString(opts["prompt"].StringValue())
	if v, ok := opts["orientation"]; ok {
		sb.WriteString(" --" + v.StringValue())
	}
	if v, ok := opts["model"]; ok {
		sb.WriteString(" --" + v.StringValue())
	}
	return sb.String()
}

func commandOptions(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (b *Bot) tierAllowedInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.GuildID == "" {
		return true
	}
	ch, err := s.State.Channel(i.ChannelID)
	if err != nil {
		ch, err = s.Channel(i.ChannelID)
	}
	if err == nil && ch.NSFW {
		return true
	}
	if b.cfg.NSFWBypassRole != "" && i.Member != nil &&
		slices.Contains(i.Member.Roles, b.cfg.NSFWBypassRole) {
		return true
	}
	return false
}
