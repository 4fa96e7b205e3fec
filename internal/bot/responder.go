package bot

import (
	"github.com/bwmarrin/discordgo"
)

// responder abstracts the two reply surfaces (plain messages and interaction
// responses) so every command handler behaves identically on both.
type responder interface {
	// Placeholder sends the visible "working on it" reply that Finalize later
	// replaces.
	Placeholder(content string) error
	// Finalize delivers the final result, editing the placeholder when one
	// was sent.
	Finalize(content string, files ...*discordgo.File) error
	// Send delivers an additional standalone reply (e.g. an overflow chunk).
	Send(content string) error
}

// messageResponder replies in-channel, threading off the triggering message.
type messageResponder struct {
	s           *discordgo.Session
	channelID   string
	ref         *discordgo.MessageReference
	placeholder *discordgo.Message
}

func newMessageResponder(s *discordgo.Session, m *discordgo.Message) *messageResponder {
	return &messageResponder{s: s, channelID: m.ChannelID, ref: m.Reference()}
}

func (r *messageResponder) Placeholder(content string) error {
	msg, err := r.s.ChannelMessageSendReply(r.channelID, content, r.ref)
	if err != nil {
		return err
	}
	r.placeholder = msg
	return nil
}

func (r *messageResponder) Finalize(content string, files ...*discordgo.File) error {
	if r.placeholder != nil {
		_, err := r.s.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel: r.channelID,
			ID:      r.placeholder.ID,
			Content: &content,
			Files:   files,
		})
		return err
	}
	_, err := r.s.ChannelMessageSendComplex(r.channelID, &discordgo.MessageSend{
		Content:   content,
		Files:     files,
		Reference: r.ref,
	})
	return err
}

func (r *messageResponder) Send(content string) error {
	_, err := r.s.ChannelMessageSend(r.channelID, content)
	return err
}

// interactionResponder replies through the interaction webhook. The first
// reply acknowledges the interaction; later ones are edits or follow-ups.
type interactionResponder struct {
	s         *discordgo.Session
	i         *discordgo.InteractionCreate
	ephemeral bool
	responded bool
}

func newInteractionResponder(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) *interactionResponder {
	return &interactionResponder{s: s, i: i, ephemeral: ephemeral}
}

func (r *interactionResponder) flags() discordgo.MessageFlags {
	if r.ephemeral {
		return discordgo.MessageFlagsEphemeral
	}
	return 0
}

func (r *interactionResponder) Placeholder(string) error {
	err := r.s.InteractionRespond(r.i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: r.flags()},
	})
	if err != nil {
		return err
	}
	r.responded = true
	return nil
}

func (r *interactionResponder) Finalize(content string, files ...*discordgo.File) error {
	if !r.responded {
		err := r.s.InteractionRespond(r.i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
				Files:   files,
				Flags:   r.flags(),
			},
		})
		if err != nil {
			return err
		}
		r.responded = true
		return nil
	}
	_, err := r.s.InteractionResponseEdit(r.i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
		Files:   files,
	})
	return err
}

func (r *interactionResponder) Send(content string) error {
	if !r.responded {
		return r.Finalize(content)
	}
	_, err := r.s.FollowupMessageCreate(r.i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   r.flags(),
	})
	return err
}
