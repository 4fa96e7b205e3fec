package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/agent/model"
	errx "github.com/HyggshiOSDeveloper/discord-gemini-bot/internal/core/error"
	logx "github.com/HyggshiOSDeveloper/discord-gemini-bot/pkg/logger"
	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"
)

// RedisConversationRepository is the multi-process history backend. Same
// contract as the in-memory store; retention is enforced with LTRIM and an
// optional TTL is refreshed on every append.
type RedisConversationRepository struct {
	rdb      redis.Cmdable
	maxTurns int
	ttl      time.Duration
}

func NewRedisConversationRepository(rdb redis.Cmdable, maxTurns int, ttl time.Duration) *RedisConversationRepository {
	return &RedisConversationRepository{rdb: rdb, maxTurns: maxTurns, ttl: ttl}
}

func (r *RedisConversationRepository) conversationKey(conversationID string) string {
	return fmt.Sprintf("conversation:%s:messages", conversationID)
}

func (r *RedisConversationRepository) Append(ctx context.Context, conversationID string, message *schema.Message) error {
	b, err := json.Marshal(message)
	if err != nil {
		logx.Error().Err(err).Str("conversationID", conversationID).Msg("failed to marshal message")
		return fmt.Errorf("marshal message: %w", err)
	}
	key := r.conversationKey(conversationID)

	if err := r.rdb.RPush(ctx, key, b).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push message to redis")
		return errx.WrapRedis(err)
	}
	// keep only the newest maxTurns entries
	if r.maxTurns > 0 {
		if err := r.rdb.LTrim(ctx, key, int64(-r.maxTurns), -1).Err(); err != nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to trim conversation")
			return errx.WrapRedis(err)
		}
	}
	// extend TTL on touch
	if r.ttl > 0 {
		if ok, err := r.rdb.Expire(ctx, key, r.ttl).Result(); err != nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to set expire")
			return errx.WrapRedis(err)
		} else if !ok {
			logx.Warn().Str("key", key).Dur("ttl", r.ttl).Msg("failed to set TTL on conversation key")
		}
	}
	return nil
}

func (r *RedisConversationRepository) History(ctx context.Context, conversationID string) ([]*schema.Message, error) {
	key := r.conversationKey(conversationID)

	rows, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []*schema.Message{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load conversation history from redis")
		return nil, errx.WrapRedis(err)
	}

	msgs := make([]*schema.Message, 0, len(rows))
	for i, s := range rows {
		var m schema.Message
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			logx.Error().Err(err).Str("conversationID", conversationID).Int("index", i).Msg("failed to unmarshal message")
			return nil, fmt.Errorf("unmarshal message at index %d: %w", i, err)
		}
		msgs = append(msgs, &m)
	}
	return msgs, nil
}

func (r *RedisConversationRepository) Clear(ctx context.Context, conversationID string) (bool, error) {
	key := r.conversationKey(conversationID)
	n, err := r.rdb.Del(ctx, key).Result()
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete conversation history from redis")
		return false, errx.WrapRedis(err)
	}
	return n > 0, nil
}

func (r *RedisConversationRepository) Count(ctx context.Context, conversationID string) (int, error) {
	key := r.conversationKey(conversationID)
	n, err := r.rdb.LLen(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to get message count from redis")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ model.ConversationRepository = (*RedisConversationRepository)(nil)
