package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
)

// FileUsageRepository persists per-user counts for the quota-limited video
// command as a JSON object of user ID to count. The whole file is rewritten
// after every increment (write-through), so counts survive restarts.
type FileUsageRepository struct {
	mu     sync.Mutex
	path   string
	limit  int
	counts map[string]int
}

func NewFileUsageRepository(path string, limit int) *FileUsageRepository {
	return &FileUsageRepository{
		path:   path,
		limit:  limit,
		counts: make(map[string]int),
	}
}

func (r *FileUsageRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			// first run, nothing persisted yet
			return nil
		}
		return fmt.Errorf("read usage file %s: %w", r.path, err)
	}

	counts := make(map[string]int)
	if err := json.Unmarshal(b, &counts); err != nil {
		return fmt.Errorf("parse usage file %s: %w", r.path, err)
	}
	r.counts = counts
	logx.Debug().Int("users", len(counts)).Str("path", r.path).Msg("loaded usage counts")
	return nil
}

func (r *FileUsageRepository) Check(ctx context.Context, userID string) (model.Usage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	used := r.counts[userID]
	remaining := r.limit - used
	if remaining < 0 {
		remaining = 0
	}
	return model.Usage{Used: used, Remaining: remaining, Total: r.limit}, nil
}

func (r *FileUsageRepository) Increment(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counts[userID]++
	if err := r.flushLocked(); err != nil {
		return err
	}
	logx.Info().Str("userID", userID).Int("used", r.counts[userID]).Msg("usage incremented")
	return nil
}

func (r *FileUsageRepository) flushLocked() error {
	b, err := json.MarshalIndent(r.counts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal usage counts: %w", err)
	}
	if err := os.WriteFile(r.path, b, 0o600); err != nil {
		return fmt.Errorf("write usage file %s: %w", r.path, err)
	}
	return nil
}

var _ model.UsageRepository = (*FileUsageRepository)(nil)
