package bot

import (
	"testing"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	"github.com/stretchr/testify/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.ImageRequest
	}{
		{
			name:  "defaults with no flags",
			input: "a red balloon",
			want: model.ImageRequest{
				Prompt:      "a red balloon",
				Orientation: model.OrientationSquare,
				Model:       "flux",
				Tier:        model.TierNone,
			},
		},
		{
			name:  "orientation and model",
			input: "a cat --portrait --flux",
			want: model.ImageRequest{
				Prompt:      "a cat",
				Orientation: model.OrientationPortrait,
				Model:       "flux",
				Tier:        model.TierNone,
			},
		},
		{
			name:  "flags in any order and position",
			input: "--landscape a lighthouse --turbo at dusk",
			want: model.ImageRequest{
				Prompt:      "a lighthouse at dusk",
				Orientation: model.OrientationLandscape,
				Model:       "turbo",
				Tier:        model.TierNone,
			},
		},
		{
			name:  "case insensitive",
			input: "a dog --PORTRAIT --Seedream",
			want: model.ImageRequest{
				Prompt:      "a dog",
				Orientation: model.OrientationPortrait,
				Model:       "seedream",
				Tier:        model.TierNone,
			},
		},
		{
			name:  "first flag per category wins, duplicates stripped",
			input: "a fox --portrait --landscape --flux --turbo",
			want: model.ImageRequest{
				Prompt:      "a fox",
				Orientation: model.OrientationPortrait,
				Model:       "flux",
				Tier:        model.TierNone,
			},
		},
		{
			name:  "unknown double-dash tokens pass through",
			input: "a ship --steampunk --landscape",
			want: model.ImageRequest{
				Prompt:      "a ship --steampunk",
				Orientation: model.OrientationLandscape,
				Model:       "flux",
				Tier:        model.TierNone,
			},
		},
		{
			name:  "content tier",
			input: "something --nsfw-soft",
			want: model.ImageRequest{
				Prompt:      "something",
				Orientation: model.OrientationSquare,
				Model:       "flux",
				Tier:        model.TierSoft,
			},
		},
		{
			name:  "flag embedded in a word is not a flag",
			input: "call it x--portrait-ish",
			want: model.ImageRequest{
				Prompt:      "call it x--portrait-ish",
				Orientation: model.OrientationSquare,
				Model:       "flux",
				Tier:        model.TierNone,
			},
		},
		{
			name:  "only flags leaves an empty prompt",
			input: "--portrait --flux",
			want: model.ImageRequest{
				Prompt:      "",
				Orientation: model.OrientationPortrait,
				Model:       "flux",
				Tier:        model.TierNone,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFlags(tt.input))
		})
	}
}

func TestParseFlagsIdempotent(t *testing.T) {
	first := ParseFlags("a cat --portrait --flux --nsfw")

	second := ParseFlags(first.Prompt)
	assert.Equal(t, first.Prompt, second.Prompt)
	assert.Equal(t, model.OrientationSquare, second.Orientation)
	assert.Equal(t, "flux", second.Model)
	assert.Equal(t, model.TierNone, second.Tier)
}

func TestOrientationDimensions(t *testing.T) {
	w, h := model.OrientationLandscape.Dimensions()
	assert.Equal(t, 1344, w)
	assert.Equal(t, 768, h)

	w, h = model.OrientationPortrait.Dimensions()
	assert.Equal(t, 768, w)
	assert.Equal(t, 1344, h)

	w, h = model.OrientationSquare.Dimensions()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 1024, h)
}
