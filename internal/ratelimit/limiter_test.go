package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	t.Parallel()

	rule := Rule{Name: "generate", Limit: 2, Window: time.Hour}

	t.Run("Should reject once the window is full", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		limiter := NewMemoryLimiter().WithClock(func() time.Time { return now })

		first, err := limiter.Allow(context.Background(), "acc-1", rule)
		require.NoError(t, err)
		assert.True(t, first.Allowed)
		assert.Equal(t, 1, first.Remaining)

		second, err := limiter.Allow(context.Background(), "acc-1", rule)
		require.NoError(t, err)
		assert.True(t, second.Allowed)
		assert.Equal(t, 0, second.Remaining)

		third, err := limiter.Allow(context.Background(), "acc-1", rule)
		require.NoError(t, err)
		assert.False(t, third.Allowed)
		assert.Equal(t, now.Add(time.Hour), third.ResetAt)
	})

	t.Run("Should admit again after the window slides", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		limiter := NewMemoryLimiter().WithClock(func() time.Time { return now })

		for i := 0; i < 2; i++ {
			_, err := limiter.Allow(context.Background(), "acc-1", rule)
			require.NoError(t, err)
		}

		now = now.Add(time.Hour + time.Second)
		decision, err := limiter.Allow(context.Background(), "acc-1", rule)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})

	t.Run("Should keep accounts and rules independent", func(t *testing.T) {
		t.Parallel()

		limiter := NewMemoryLimiter()
		for i := 0; i < 2; i++ {
			_, err := limiter.Allow(context.Background(), "acc-1", rule)
			require.NoError(t, err)
		}

		other, err := limiter.Allow(context.Background(), "acc-2", rule)
		require.NoError(t, err)
		assert.True(t, other.Allowed)

		play, err := limiter.Allow(context.Background(), "acc-1", Rule{Name: "play", Limit: 1, Window: time.Hour})
		require.NoError(t, err)
		assert.True(t, play.Allowed)
	})

	t.Run("Should allow everything when the limit is disabled", func(t *testing.T) {
		t.Parallel()

		decision, err := NewMemoryLimiter().Allow(context.Background(), "acc-1", Rule{Name: "off"})
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})
}
