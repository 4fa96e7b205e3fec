package pollinations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	errx "github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/core/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(imageURL, videoURL string) *Client {
	return NewClient(
		model.ImageConfig{BaseURL: imageURL, Timeout: 5},
		model.VideoConfig{BaseURL: videoURL, Timeout: 5, Limit: 5},
	)
}

func TestImageRequestParameters(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotQuery = r.URL.Query()
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "")
	b, err := c.Image(context.Background(), model.ImageRequest{
		Prompt:      "a red balloon",
		Orientation: model.OrientationLandscape,
		Model:       "flux",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), b)

	assert.Equal(t, "/prompt/a%20red%20balloon", gotPath)
	assert.Equal(t, []string{"1344"}, gotQuery["width"])
	assert.Equal(t, []string{"768"}, gotQuery["height"])
	assert.Equal(t, []string{"flux"}, gotQuery["model"])
	assert.NotContains(t, gotQuery, "nsfw")
}

func TestImageTierParameter(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte("x"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, "")
	_, err := c.Image(context.Background(), model.ImageRequest{
		Prompt:      "p",
		Orientation: model.OrientationSquare,
		Model:       "turbo",
		Tier:        model.TierSoft,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"soft"}, gotQuery["nsfw"])
}

func TestImageErrorKinds(t *testing.T) {
	tests := []struct {
		status int
		want   errx.Kind
	}{
		{http.StatusTooManyRequests, errx.KindRateLimit},
		{http.StatusBadRequest, errx.KindInvalidArgument},
		{http.StatusInternalServerError, errx.KindUnavailable},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		c := newTestClient(srv.URL, "")
		_, err := c.Image(context.Background(), model.ImageRequest{
			Prompt:      "p",
			Orientation: model.OrientationSquare,
			Model:       "flux",
		})
		require.Error(t, err, "status %d", tt.status)
		assert.Equal(t, tt.want, errx.KindOf(err), "status %d", tt.status)
		srv.Close()
	}
}

func TestVideoUnconfigured(t *testing.T) {
	c := newTestClient("http://unused", "")
	_, err := c.Video(context.Background(), "a cat")
	require.Error(t, err)
	assert.Equal(t, errx.KindUnavailable, errx.KindOf(err))
}

func TestVideoFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prompt/a%20dancing%20robot", r.URL.EscapedPath())
		w.Write([]byte("mp4-bytes"))
	}))
	defer srv.Close()

	c := newTestClient("http://unused", srv.URL)
	b, err := c.Video(context.Background(), "a dancing robot")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp4-bytes"), b)
}
