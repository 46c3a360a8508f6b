package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/valpere/pohoda/internal/config"
)

const redisKeyPrefix = "pohoda:"

func ConnectRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}

// RedisStore keeps the city as a plain string key without expiry
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		key:    redisKeyPrefix + LastCityKey,
	}
}

func (s *RedisStore) Get(ctx context.Context) (string, bool, error) {
	city, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read last city: %w", err)
	}
	return city, true, nil
}

func (s *RedisStore) Set(ctx context.Context, city string) error {
	if err := s.client.Set(ctx, s.key, city, 0).Err(); err != nil {
		return fmt.Errorf("failed to save last city: %w", err)
	}
	return nil
}
