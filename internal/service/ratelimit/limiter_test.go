package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_RefillsOverTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := New().WithClock(func() time.Time { return now })

	assert.True(t, l.Allow("k", 2, 1))
	assert.True(t, l.Allow("k", 2, 1))
	assert.False(t, l.Allow("k", 2, 1))

	now = now.Add(500 * time.Millisecond)
	assert.False(t, l.Allow("k", 2, 1))

	now = now.Add(500 * time.Millisecond)
	assert.True(t, l.Allow("k", 2, 1))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	l := New()
	assert.True(t, l.Allow("a", 1, 0.001))
	assert.False(t, l.Allow("a", 1, 0.001))
	assert.True(t, l.Allow("b", 1, 0.001))
}

func TestWait_BlocksUntilRefill(t *testing.T) {
	l := New()
	require.NoError(t, l.Wait(context.Background(), "k", 1, 50))

	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), "k", 1, 50))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestWait_ContextCancelled(t *testing.T) {
	l := New()
	require.NoError(t, l.Wait(context.Background(), "k", 1, 0.001))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := l.Wait(ctx, "k", 1, 0.001)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
