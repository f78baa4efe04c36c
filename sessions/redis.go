// file: sessions/redis.go
package sessions

import (
	"context"
	"strconv"
	"time"

	"github.com/hemanthrajvardhan/ctf/utils"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore 基于 Redis 的会话存储，TTL 由 Redis 过期机制保证
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, userID uint32, ttl time.Duration) (string, error) {
	token := utils.GenerateSessionToken()
	if err := s.rdb.Set(ctx, keyPrefix+token, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (uint32, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint32(id), nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
