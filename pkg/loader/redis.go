package loader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisLoader reads assets stored as plain string values in Redis,
// keyed prefix:path. Useful when a deploy pipeline pushes translation
// bundles into Redis for fast multi-instance pickup.
type RedisLoader struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a loader over an established Redis client. The
// prefix defaults to "locale" when empty.
func NewRedis(client redis.UniversalClient, prefix string) *RedisLoader {
	if prefix == "" {
		prefix = "locale"
	}
	return &RedisLoader{
		client: client,
		prefix: strings.TrimRight(prefix, ":"),
	}
}

// Fetch reads the value at prefix:path. A missing key maps to
// ErrNotFound.
func (l *RedisLoader) Fetch(ctx context.Context, path string) ([]byte, error) {
	key := l.prefix + ":" + strings.TrimLeft(path, "/")

	data, err := l.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("%w: redis get %q: %v", ErrFetchFailed, key, err)
	}
	return data, nil
}
