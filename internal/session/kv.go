package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/samandr77/microservices/staff/internal/entity"
)

// KV is the per-device key-value storage sessions live in.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (kv *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := kv.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, entity.ErrNotFound
		}

		return nil, err
	}

	return b, nil
}

// Set stores value; a zero ttl keeps the key until it is deleted.
func (kv *RedisKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return kv.client.Set(ctx, key, value, ttl).Err()
}

func (kv *RedisKV) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return kv.client.Del(ctx, keys...).Err()
}

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	err := client.Ping(ctx).Err()
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
