package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store é um cache best-effort para as respostas de listagem.
// Erros de cache nunca derrubam uma requisição.
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	Del(ctx context.Context, keys ...string)
}

// ======================================================
// Redis
// ======================================================

type redisStore struct {
	client *redis.Client
}

func NewRedis(url string) (Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &redisStore{client: redis.NewClient(opts)}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *redisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	_ = s.client.Set(ctx, key, value, ttl).Err()
}

func (s *redisStore) Del(ctx context.Context, keys ...string) {
	_ = s.client.Del(ctx, keys...).Err()
}

// ======================================================
// Noop (sem REDIS_URL configurada)
// ======================================================

type noopStore struct{}

func NewNoop() Store {
	return noopStore{}
}

func (noopStore) Get(ctx context.Context, key string) (string, bool) { return "", false }

func (noopStore) Set(ctx context.Context, key string, value string, ttl time.Duration) {}

func (noopStore) Del(ctx context.Context, keys ...string) {}
