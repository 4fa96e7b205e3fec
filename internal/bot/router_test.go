package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMentions(t *testing.T) {
	assert.Equal(t, "hello there", StripMentions("<@123456> hello there"))
	assert.Equal(t, "hello", StripMentions("<@!987> hello"))
	assert.Equal(t, "a b", StripMentions("a <@111> b"))
	assert.Equal(t, "", StripMentions("<@123>"))
	assert.Equal(t, "no mentions", StripMentions("no mentions"))
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		input    string
		wantCmd  Command
		wantArgs string
	}{
		{"/create a red balloon", CommandImage, "a red balloon"},
		{"/imagine a cat", CommandImage, "a cat"},
		{"/draw something", CommandImage, "something"},
		{"/gen x", CommandImage, "x"},
		{"/video a dancing robot", CommandVideo, "a dancing robot"},
		{"/animate y", CommandVideo, "y"},
		{"/vid z", CommandVideo, "z"},
		{"/quota", CommandQuota, ""},
		{"/usage", CommandQuota, ""},
		{"/models", CommandModels, ""},
		{"/styles", CommandModels, ""},
		{"/help", CommandModels, ""},
		{"/nsfw", CommandNSFWInfo, ""},
		{"/nsfw-info", CommandNSFWInfo, ""},
		{"/reset", CommandReset, ""},
		{"/CREATE loud", CommandImage, "loud"},
		{"  /create padded  ", CommandImage, "padded"},
		{"just chatting", CommandNone, ""},
		{"/createx not a command", CommandNone, ""},
		{"", CommandNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, args := ResolveCommand(tt.input)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
