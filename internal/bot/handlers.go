package bot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	errx "github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/core/error"
	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

const (
	placeholderImage = "🎨 Generating your image, hang on…"
	placeholderVideo = "🎬 Generating your video, this can take a while…"

	imageUsageHelp = "Tell me what to draw, e.g. `/create a red balloon --landscape --flux`. " +
		"Flags: `--portrait` `--landscape` `--square` pick the shape, `--flux` etc. pick the model (see `/models`)."
	videoUsageHelp = "Tell me what to animate, e.g. `/video a cat chasing a laser pointer`."

	tierDeniedMessage = "NSFW tiers only work in DMs, NSFW-marked channels, or with the bypass role. Use `/nsfw-info` for details."

	forwardedMessage = "I can't read forwarded messages. Copy the text into a normal message instead."

	resetDoneMessage  = "Conversation history cleared. We can start fresh!"
	resetEmptyMessage = "There was no conversation history to clear."
)

// handleImage runs the image-generation sub-protocol: validate, authorize the
// content tier, placeholder, enhance (best-effort), fetch, deliver.
// Image generation is unlimited; it never touches the quota counter.
func (b *Bot) handleImage(ctx context.Context, r responder, args string, tierAllowed bool) {
	req := ParseFlags(args)
	if req.Prompt == "" {
		b.replySend(r, imageUsageHelp)
		return
	}
	if req.Tier != model.TierNone && !tierAllowed {
		b.replySend(r, tierDeniedMessage)
		return
	}

	if err := r.Placeholder(placeholderImage); err != nil {
		logx.Error().Err(err).Msg("failed to send image placeholder")
		return
	}

	gen := req
	gen.Prompt = b.enhancer.Enhance(ctx, req.Prompt)

	img, err := b.media.Image(ctx, gen)
	if err != nil {
		logx.Error().Err(err).Str("model", req.Model).Msg("image generation failed")
		b.replyFinal(r, errx.UserMessage(err))
		return
	}

	width, height := req.Orientation.Dimensions()
	meta := fmt.Sprintf("**%s** · %s (%d×%d)\n> %s", req.Model, req.Orientation, width, height, req.Prompt)
	if err := r.Finalize(meta, &discordgo.File{
		Name:        "image.png",
		ContentType: "image/png",
		Reader:      bytes.NewReader(img),
	}); err != nil {
		logx.Error().Err(err).Msg("failed to deliver image")
	}
}

// handleVideo is the quota-gated variant: the counter is checked up front and
// incremented only after the fetch succeeds, so failed generations are free.
func (b *Bot) handleVideo(ctx context.Context, r responder, userID, args string, tierAllowed bool) {
	req := ParseFlags(args)
	if req.Prompt == "" {
		b.replySend(r, videoUsageHelp)
		return
	}
	if req.Tier != model.TierNone && !tierAllowed {
		b.replySend(r, tierDeniedMessage)
		return
	}

	usage, err := b.usage.Check(ctx, userID)
	if err != nil {
		logx.Error().Err(err).Str("userID", userID).Msg("quota check failed")
		b.replySend(r, errx.UnavailableMessage)
		return
	}
	if !usage.CanProceed() {
		b.replySend(r, fmt.Sprintf("You've used all %d of your video generations.", usage.Total))
		return
	}

	if err := r.Placeholder(placeholderVideo); err != nil {
		logx.Error().Err(err).Msg("failed to send video placeholder")
		return
	}

	prompt := b.enhancer.Enhance(ctx, req.Prompt)

	vid, err := b.media.Video(ctx, prompt)
	if err != nil {
		logx.Error().Err(err).Msg("video generation failed")
		b.replyFinal(r, errx.UserMessage(err))
		return
	}

	if err := b.usage.Increment(ctx, userID); err != nil {
		logx.Error().Err(err).Str("userID", userID).Msg("failed to persist usage increment")
	}

	meta := fmt.Sprintf("Here's your video (%d/%d used).\n> %s", usage.Used+1, usage.Total, req.Prompt)
	if err := r.Finalize(meta, &discordgo.File{
		Name:        "video.mp4",
		ContentType: "video/mp4",
		Reader:      bytes.NewReader(vid),
	}); err != nil {
		logx.Error().Err(err).Msg("failed to deliver video")
	}
}

func (b *Bot) handleQuota(ctx context.Context, r responder, userID string) {
	usage, err := b.usage.Check(ctx, userID)
	if err != nil {
		logx.Error().Err(err).Str("userID", userID).Msg("quota check failed")
		b.replyFinal(r, errx.UnavailableMessage)
		return
	}
	b.replyFinal(r, fmt.Sprintf(
		"Video generations: %d used, %d remaining (limit %d).",
		usage.Used, usage.Remaining, usage.Total))
}

func (b *Bot) handleModels(ctx context.Context, r responder) {
	var sb strings.Builder
	sb.WriteString("**Image models** (use as `--name`, default `" + model.DefaultImageModel() + "`):\n")
	for _, m := range model.ImageModels {
		sb.WriteString("• `--" + m + "`\n")
	}
	sb.WriteString("\n**Shapes**: `--portrait` `--landscape` `--square` (default square)\n")
	sb.WriteString("**Commands**: `/create` `/video` `/quota` `/models` `/nsfw-info` `/reset` — or just mention me to chat.")
	b.replyFinal(r, sb.String())
}

func (b *Bot) handleNSFWInfo(ctx context.Context, r responder) {
	b.replyFinal(r, "NSFW tiers (`--nsfw-soft`, `--nsfw`, `--nsfw-hard`) gate image content sensitivity. "+
		"They are allowed in DMs, in channels marked NSFW, or for members holding the bypass role. "+
		"Everywhere else the request is rejected.")
}

func (b *Bot) handleReset(ctx context.Context, r responder, key string) {
	existed, err := b.chat.Reset(ctx, key)
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to clear conversation")
		b.replyFinal(r, errx.UnavailableMessage)
		return
	}
	if existed {
		b.replyFinal(r, resetDoneMessage)
		return
	}
	b.replyFinal(r, resetEmptyMessage)
}

// handleChat runs a conversational exchange and delivers the reply in order,
// one chunk at a time. Sends are sequential on purpose: Discord does not
// guarantee ordering across concurrent sends.
func (b *Bot) handleChat(ctx context.Context, r responder, key, message string) {
	reply, err := b.chat.Reply(ctx, key, message)
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("chat reply failed")
		b.replyFinal(r, errx.UserMessage(err))
		return
	}
	b.deliver(r, reply)
}

// deliver chunks a reply and sends the chunks sequentially, first one through
// Finalize, the rest as follow-ups.
func (b *Bot) deliver(r responder, reply string) {
	if strings.TrimSpace(reply) == "" {
		reply = "(no response)"
	}
	chunks := ChunkMessage(reply, MessageLimit)
	if err := r.Finalize(chunks[0]); err != nil {
		logx.Error().Err(err).Msg("failed to send reply")
		return
	}
	for _, chunk := range chunks[1:] {
		if err := r.Send(chunk); err != nil {
			logx.Error().Err(err).Msg("failed to send reply chunk")
			return
		}
	}
}

// replySend and replyFinal are the guarded best-effort sends used on every
// error path; a failure here is logged and dropped, never propagated.
func (b *Bot) replySend(r responder, content string) {
	if err := r.Send(content); err != nil {
		logx.Error().Err(err).Msg("failed to send reply")
	}
}

func (b *Bot) replyFinal(r responder, content string) {
	if err := r.Finalize(content); err != nil {
		logx.Error().Err(err).Msg("failed to send reply")
	}
}
