package checkout

import (
	"context"
	"errors"
	"time"

	"enroll-ledger/internal/pkg/config"
	"enroll-ledger/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "checkout:session:"

// SessionCache maps a checkout dedup token to the provider session handle
// already issued for it. Entries expire with the token's time bucket, so
// rapid duplicate submissions reuse one provider session.
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionCache(client *redis.Client, cfg config.CheckoutConfig) *SessionCache {
	return &SessionCache{
		client: client,
		ttl:    cfg.SessionTTL,
	}
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() {
		_ = client.Close()
	}

	return client, cleanup, nil
}

// Get returns the cached session handle for token, or ok=false on a miss.
func (c *SessionCache) Get(ctx context.Context, token string) (string, bool, error) {
	handle, err := c.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, errs.Wrap(err, "failed to read checkout session cache")
	}

	return handle, true, nil
}

func (c *SessionCache) Put(ctx context.Context, token, handle string) error {
	if err := c.client.Set(ctx, sessionKeyPrefix+token, handle, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write checkout session cache")
	}

	return nil
}
