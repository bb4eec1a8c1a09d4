package middleware

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounterStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{counts: make(map[string]int64)}
}

func (s *fakeCounterStore) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return s.counts[key], nil
}

func TestLimiterAllowsUpToLimit(t *testing.T) {
	store := newFakeCounterStore()
	l := NewLimiter(store, 3, 10*time.Second)

	for i := 0; i < 3; i++ {
		allowed, err := l.Allow(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := l.Allow(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, allowed, "request over limit should be rejected")
}

func TestLimiterIsPerUser(t *testing.T) {
	store := newFakeCounterStore()
	l := NewLimiter(store, 1, 10*time.Second)

	allowed, err := l.Allow(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = l.Allow(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, allowed)

	// 另一个用户不受影响
	allowed, err = l.Allow(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLimiterResetsOnWindowRoll(t *testing.T) {
	store := newFakeCounterStore()
	l := NewLimiter(store, 1, 10*time.Second)

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return base }

	allowed, err := l.Allow(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = l.Allow(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, allowed)

	// 窗口翻转后计数从零开始
	l.now = func() time.Time { return base.Add(10 * time.Second) }
	allowed, err = l.Allow(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, allowed)
}
