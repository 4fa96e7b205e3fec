package bot

import (
	"regexp"
	"strings"
)

// Command identifies which handler an inbound message routes to.
type Command int

const (
	// CommandNone falls through to conversational handling.
	CommandNone Command = iota
	CommandImage
	CommandVideo
	CommandQuota
	CommandModels
	CommandNSFWInfo
	CommandReset
)

// commandTokens maps the recognized first-word prefixes to commands. Matching
// is case-insensitive.
var commandTokens = map[string]Command{
	"/create":    CommandImage,
	"/imagine":   CommandImage,
	"/draw":      CommandImage,
	"/gen":       CommandImage,
	"/video":     CommandVideo,
	"/animate":   CommandVideo,
	"/vid":       CommandVideo,
	"/quota":     CommandQuota,
	"/usage":     CommandQuota,
	"/models":    CommandModels,
	"/styles":    CommandModels,
	"/help":      CommandModels,
	"/nsfw":      CommandNSFWInfo,
	"/nsfw-info": CommandNSFWInfo,
	"/reset":     CommandReset,
}

var mentionPattern = regexp.MustCompile(`<@!?\d+>`)

// StripMentions removes user-mention tokens from the message body.
func StripMentions(content string) string {
	return strings.TrimSpace(mentionPattern.ReplaceAllString(content, ""))
}

// ResolveCommand checks whether the cleaned message body starts with a
// recognized command token and returns it together with the remaining
// argument text. CommandNone means conversational handling.
func ResolveCommand(content string) (Command, string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return CommandNone, ""
	}

	word := content
	rest := ""
	if i := strings.IndexAny(content, " \t\n"); i >= 0 {
		word, rest = content[:i], strings.TrimSpace(content[i+1:])
	}

	cmd, ok := commandTokens[strings.ToLower(word)]
	if !ok {
		return CommandNone, ""
	}
	return cmd, rest
}
