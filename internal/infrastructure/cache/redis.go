package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
)

const DefaultTTL = 600 * time.Second

type Options struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// Redis is a JSON cache. When no host is configured or the server cannot be
// reached at startup every call is a no-op miss.
type Redis struct {
	client *redis.Client
	logger *log.Logger
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewRedis(ctx context.Context, opts Options, logger *log.Logger) *Redis {
	if logger == nil {
		logger = log.Default()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	host := strings.TrimSpace(opts.Host)
	if host == "" {
		logger.Printf("[Cache] REDIS_HOST not set, match cache disabled")
		return &Redis{logger: logger, ttl: ttl}
	}
	port := strings.TrimSpace(opts.Port)
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	ping := func() (struct{}, error) {
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return struct{}{}, client.Ping(pctx).Err()
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 2 * time.Second

	if _, err := backoff.Retry(ctx, ping, backoff.WithBackOff(bo), backoff.WithMaxTries(3), backoff.WithMaxElapsedTime(10*time.Second)); err != nil {
		logger.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
		_ = client.Close()
		return &Redis{logger: logger, ttl: ttl}
	}

	logger.Printf("[Cache] connected to redis addr=%s db=%d", client.Options().Addr, opts.DB)
	return &Redis{client: client, logger: logger, ttl: ttl}
}

// live returns the connected client, or nil when the cache is bypassed.
func (r *Redis) live() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.logger == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis error, results served uncached: %v", err)
	}
}

func (r *Redis) Enabled() bool {
	return r.live() != nil
}

// GetJSON loads a cached match result into out. Missing keys and empty
// payloads are misses.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	client := r.live()
	if client == nil {
		return false, nil
	}

	payload, err := client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		r.warnUnavailableOnce(err)
		return false, err
	}
	return decodeEntry(payload, out)
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	client := r.live()
	if client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	err = client.Set(ctx, key, payload, r.expiry(ttl)).Err()
	if err != nil {
		r.warnUnavailableOnce(err)
	}
	return err
}

func (r *Redis) expiry(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return r.ttl
}

func decodeEntry(payload []byte, out any) (bool, error) {
	if len(payload) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	return true, nil
}

func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	client := r.live()
	pattern = strings.TrimSpace(pattern)
	if client == nil || pattern == "" {
		return nil
	}

	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if err := client.Del(ctx, k).Err(); err != nil {
			r.logger.Printf("[Cache] Redis delete error key=%s pattern=%s err=%v", k, pattern, err)
		}
	}
	if err := iter.Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if client := r.live(); client != nil {
		return client.Close()
	}
	return nil
}
