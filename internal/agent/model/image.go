package model

// Orientation selects the pixel dimensions of a generated image.
type Orientation string

const (
	OrientationSquare    Orientation = "square"
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Dimensions returns the width and height for the orientation.
func (o Orientation) Dimensions() (width, height int) {
	switch o {
	case OrientationPortrait:
		return 768, 1344
	case OrientationLandscape:
		return 1344, 768
	default:
		return 1024, 1024
	}
}

// Tier is the access-gated content-sensitivity level of an image request.
type Tier string

const (
	TierNone Tier = ""
	TierSoft Tier = "soft"
	TierNSFW Tier = "nsfw"
	TierHard Tier = "hard"
)

// ImageModels enumerates the accepted image model selectors. The first entry
// is the default.
var ImageModels = []string{
	"flux",
	"turbo",
	"klein",
	"gptimage",
	"nanobanana",
	"seedream",
	"pollinations",
}

// DefaultImageModel is used when no model flag is present.
func DefaultImageModel() string {
	return ImageModels[0]
}

// IsImageModel reports whether name is a known model selector.
func IsImageModel(name string) bool {
	for _, m := range ImageModels {
		if m == name {
			return true
		}
	}
	return false
}

// ImageRequest is a fully parsed image-generation request: the cleaned prompt
// plus every modifier extracted from the raw command text.
type ImageRequest struct {
	Prompt      string
	Orientation Orientation
	Model       string
	Tier        Tier
}
