package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store is a best effort key value cache. Failures are logged and reported
// as misses so callers always fall back to the database.
type Store[T any] interface {
	Get(ctx context.Context, key string) (*T, bool)
	Set(ctx context.Context, key string, value *T)
	Delete(ctx context.Context, key string)
	// Clear drops every entry of the store.
	Clear(ctx context.Context)
}

type redisStore[T any] struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

// NewStore returns a redis backed store, or a no-op store when rdb is nil.
// Keys are stored as "<prefix>:<key>" with the given ttl.
func NewStore[T any](rdb *redis.Client, prefix string, ttl time.Duration, log *zap.Logger) Store[T] {
	if rdb == nil {
		return NoopStore[T]{}
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return &redisStore[T]{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		log:    log.With(zap.String("cache", prefix)),
	}
}

func (s *redisStore[T]) key(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *redisStore[T]) Get(ctx context.Context, key string) (*T, bool) {
	raw, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.log.Warn("Cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	return &value, true
}

func (s *redisStore[T]) Set(ctx context.Context, key string, value *T) {
	if value == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.rdb.Set(ctx, s.key(key), raw, s.ttl).Err(); err != nil {
		s.log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *redisStore[T]) Delete(ctx context.Context, key string) {
	if err := s.rdb.Del(ctx, s.key(key)).Err(); err != nil {
		s.log.Warn("Cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *redisStore[T]) Clear(ctx context.Context) {
	iter := s.rdb.Scan(ctx, 0, s.prefix+":*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.log.Warn("Cache scan failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn("Cache clear failed", zap.Int("keys", len(keys)), zap.Error(err))
	}
}

// NoopStore never holds anything.
type NoopStore[T any] struct{}

func (NoopStore[T]) Get(context.Context, string) (*T, bool) { return nil, false }
func (NoopStore[T]) Set(context.Context, string, *T) {}
func (NoopStore[T]) Delete(context.Context, string) {}
func (NoopStore[T]) Clear(context.Context) {}
