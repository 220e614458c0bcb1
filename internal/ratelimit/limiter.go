// Package ratelimit enforces per-account request rates with a sliding window.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Rule allows Limit requests per Window.
type Rule struct {
	Name   string
	Limit  int
	Window time.Duration
}

var (
	GenerationRule = Rule{Name: "generate", Limit: 10, Window: time.Hour}
	PlaybackRule   = Rule{Name: "play", Limit: 30, Window: time.Hour}
)

type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type Limiter interface {
	Allow(ctx context.Context, key string, rule Rule) (*Decision, error)
}

const slidingWindowScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local limit = tonumber(ARGV[2])
local window = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)

local allowed = 0
local remaining = 0
if count < limit then
	redis.call('ZADD', key, now, member)
	allowed = 1
	remaining = limit - count - 1
end

local resetTime = now + window
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if oldest and #oldest >= 2 then
	resetTime = tonumber(oldest[2]) + window
end

redis.call('PEXPIRE', key, window)
return {allowed, remaining, resetTime}
`

// RedisLimiter shares its windows across every worker process.
type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
	script *redis.Script
	now    func() time.Time
}

func NewRedisLimiter(client redis.UniversalClient, prefix string) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		script: redis.NewScript(slidingWindowScript),
		now:    time.Now,
	}
}

func (l *RedisLimiter) key(key string, rule Rule) string {
	return fmt.Sprintf("%s:%s:%s", l.prefix, rule.Name, key)
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, rule Rule) (*Decision, error) {
	if rule.Limit <= 0 {
		return &Decision{Allowed: true, Remaining: -1}, nil
	}

	now := l.now().UnixMilli()
	result, err := l.script.Run(ctx, l.client,
		[]string{l.key(key, rule)},
		now,
		rule.Limit,
		rule.Window.Milliseconds(),
		uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to execute rate limit script: %w", err)
	}
	if len(result) != 3 {
		return nil, fmt.Errorf("unexpected result format from rate limit script")
	}

	return &Decision{
		Allowed:   result[0] == 1,
		Remaining: int(result[1]),
		ResetAt:   time.UnixMilli(result[2]),
	}, nil
}

// MemoryLimiter is a single-process limiter for tests and local runs.
type MemoryLimiter struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		hits: make(map[string][]time.Time),
		now:  time.Now,
	}
}

// WithClock replaces the limiter's time source.
func (l *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	l.now = now
	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, rule Rule) (*Decision, error) {
	if rule.Limit <= 0 {
		return &Decision{Allowed: true, Remaining: -1}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-rule.Window)
	k := rule.Name + ":" + key

	kept := l.hits[k][:0]
	for _, hit := range l.hits[k] {
		if hit.After(cutoff) {
			kept = append(kept, hit)
		}
	}

	decision := &Decision{ResetAt: now.Add(rule.Window)}
	if len(kept) < rule.Limit {
		kept = append(kept, now)
		decision.Allowed = true
		decision.Remaining = rule.Limit - len(kept)
	}
	if len(kept) > 0 {
		decision.ResetAt = kept[0].Add(rule.Window)
	}
	l.hits[k] = kept

	return decision, nil
}
