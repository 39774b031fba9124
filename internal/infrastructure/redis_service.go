package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"files-manager/internal/config"
)

// tokens are namespaced so other keys can share the database
const sessionKeyPrefix = "auth_"

// RedisService implements repositories.SessionStore on go-redis. The
// client pools connections and is safe for concurrent use; per-key TTL
// writes and deletes are atomic on the server side, which is the only
// concurrency guarantee the auth flow relies on.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisService{client: client}, nil
}

func (r *RedisService) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err()
}

func (r *RedisService) Get(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (r *RedisService) Delete(ctx context.Context, token string) (bool, error) {
	removed, err := r.client.Del(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

func (r *RedisService) IsAlive(ctx context.Context) bool {
	return r.client.Ping(ctx).Err() == nil
}

func (r *RedisService) Close() error {
	return r.client.Close()
}
