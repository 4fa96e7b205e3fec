package pollinations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	errx "github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/core/error"
	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
)

// Client fetches generated media from the Pollinations-style HTTP endpoints.
// The image endpoint is unauthenticated: a GET with the prompt in the path
// and the parameters in the query string returns the image bytes directly.
type Client struct {
	imageBase string
	videoBase string
	http      *http.Client
	videoHTTP *http.Client
}

func NewClient(imageCfg model.ImageConfig, videoCfg model.VideoConfig) *Client {
	return &Client{
		imageBase: imageCfg.BaseURL,
		videoBase: videoCfg.BaseURL,
		http:      &http.Client{Timeout: time.Duration(imageCfg.Timeout) * time.Second},
		videoHTTP: &http.Client{Timeout: time.Duration(videoCfg.Timeout) * time.Second},
	}
}

// Image generates an image for the request and returns the raw bytes.
func (c *Client) Image(ctx context.Context, req model.ImageRequest) ([]byte, error) {
	width, height := req.Orientation.Dimensions()

	q := url.Values{}
	q.Set("width", strconv.Itoa(width))
	q.Set("height", strconv.Itoa(height))
	q.Set("model", req.Model)
	q.Set("nologo", "true")
	if req.Tier != model.TierNone {
		q.Set("nsfw", string(req.Tier))
	}

	u := fmt.Sprintf("%s/prompt/%s?%s", c.imageBase, url.PathEscape(req.Prompt), q.Encode())
	return c.fetch(ctx, c.http, u)
}

// Video generates a short clip for the prompt and returns the raw bytes.
func (c *Client) Video(ctx context.Context, prompt string) ([]byte, error) {
	if c.videoBase == "" {
		return nil, errx.New(nil, errx.KindUnavailable, "video generation is not configured")
	}
	u := fmt.Sprintf("%s/prompt/%s", c.videoBase, url.PathEscape(prompt))
	return c.fetch(ctx, c.videoHTTP, u)
}

func (c *Client) fetch(ctx context.Context, hc *http.Client, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	started := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		return nil, errx.New(err, errx.KindUnavailable, "media fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		kind := errx.KindUnavailable
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			kind = errx.KindRateLimit
		case http.StatusBadRequest:
			kind = errx.KindInvalidArgument
		}
		return nil, errx.New(fmt.Errorf("unexpected status %d", resp.StatusCode), kind, "media fetch failed")
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errx.New(err, errx.KindUnavailable, "media fetch failed")
	}

	logx.Debug().
		Int("bytes", len(b)).
		Dur("elapsed", time.Since(started)).
		Msg("media fetched")
	return b, nil
}
