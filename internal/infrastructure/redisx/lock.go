// Package redisx provides the Redis-backed coordination primitives.
package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Lock implements a best-effort distributed lock on SET NX. Good enough to
// keep replicas from double-running the nightly generation; not a fencing
// lock.
type Lock struct {
	client *redis.Client
	prefix string
}

// NewLock creates a lock helper on the given client.
func NewLock(client *redis.Client) *Lock {
	return &Lock{
		client: client,
		prefix: "erphan:lock:",
	}
}

// TryLock attempts to take the named lock for ttl. Returns false when another
// holder has it. The lock expires on its own; there is no explicit release,
// so ttl must cover the whole protected run.
func (l *Lock) TryLock(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.prefix+name, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lock %q: %w", name, err)
	}
	return ok, nil
}

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
