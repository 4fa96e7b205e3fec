package bot

import (
	"strings"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
)

// ParseFlags extracts the generation modifiers embedded in free-text command
// arguments and returns the cleaned prompt alongside them.
//
// The text is tokenized on whitespace and each token is classified against
// the three flag categories (orientation, model, content tier), case
// insensitively and in any order. The first flag per category wins; duplicate
// recognized flags are stripped but ignored. Tokens starting with "--" that
// match no category pass through untouched, so parsing an already-cleaned
// prompt is a no-op.
func ParseFlags(text string) model.ImageRequest {
	req := model.ImageRequest{
		Orientation: model.OrientationSquare,
		Model:       model.DefaultImageModel(),
		Tier:        model.TierNone,
	}

	var (
		kept       []string
		haveOrient bool
		haveModel  bool
		haveTier   bool
	)

	for _, tok := range strings.Fields(text) {
		lower := strings.ToLower(tok)
		if !strings.HasPrefix(lower, "--") {
			kept = append(kept, tok)
			continue
		}

		switch lower {
		case "--portrait", "--landscape", "--square":
			if !haveOrient {
				req.Orientation = model.Orientation(strings.TrimPrefix(lower, "--"))
				haveOrient = true
			}
			continue
		case "--nsfw-soft":
			if !haveTier {
				req.Tier = model.TierSoft
				haveTier = true
			}
			continue
		case "--nsfw":
			if !haveTier {
				req.Tier = model.TierNSFW
				haveTier = true
			}
			continue
		case "--nsfw-hard":
			if !haveTier {
				req.Tier = model.TierHard
				haveTier = true
			}
			continue
		}

		if name := strings.TrimPrefix(lower, "--"); model.IsImageModel(name) {
			if !haveModel {
				req.Model = name
				haveModel = true
			}
			continue
		}

		// unrecognized -- token, keep it in the prompt
		kept = append(kept, tok)
	}

	req.Prompt = strings.Join(kept, " ")
	return req
}
