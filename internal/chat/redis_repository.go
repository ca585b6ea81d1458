package chat

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisRepository implements Repository using Redis as the backing store.
// Turns are stored as JSON in a per-session list under key: "chat:<session_id>",
// so list order is append order, which matches timestamp order.
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository creates a Redis-based turn repository. Prefix may be empty.
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = "chat:"
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisRepository) Append(ctx context.Context, t *Turn) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return r.client.RPush(ctx, r.key(t.SessionID), b).Err()
}

func (r *RedisRepository) History(ctx context.Context, sessionID string, limit int64) ([]Turn, error) {
	vals, err := r.client.LRange(ctx, r.key(sessionID), -limit, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []Turn{}, nil
		}
		return nil, err
	}
	turns := make([]Turn, 0, len(vals))
	for _, v := range vals {
		var t Turn
		if err := json.Unmarshal([]byte(v), &t); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (r *RedisRepository) Clear(ctx context.Context, sessionID string) (int64, error) {
	n, err := r.client.LLen(ctx, r.key(sessionID)).Result()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return 0, err
	}
	return n, nil
}
