package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiter(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis not available: %v", err)
	}

	limiter := NewRedisLimiter(client, "test-ratelimit")
	rule := Rule{Name: "generate", Limit: 2, Window: time.Minute}
	account := uuid.NewString()
	defer client.Del(ctx, limiter.key(account, rule))

	for i := 0; i < 2; i++ {
		decision, err := limiter.Allow(ctx, account, rule)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, 1-i, decision.Remaining)
	}

	decision, err := limiter.Allow(ctx, account, rule)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.True(t, decision.ResetAt.After(time.Now()))
}
