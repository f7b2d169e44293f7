package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(opts Options, start time.Time) (*RateLimitedCache, *time.Time) {
	c := New(opts)
	current := start
	c.now = func() time.Time { return current }
	return c, &current
}

func TestExecuteCachesWithinTTL(t *testing.T) {
	c, _ := newTestCache(Options{MaxRequests: 10, Window: time.Minute, CacheTTL: 10 * time.Minute}, time.Unix(1_700_000_000, 0))

	calls := 0
	producer := func() (string, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 5; i++ {
		v, err := Execute(c, "user:jane", producer)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	}

	assert.Equal(t, 1, calls, "fresh hits must not re-invoke the producer")
}

func TestExecuteExpiresAfterTTL(t *testing.T) {
	c, now := newTestCache(Options{MaxRequests: 10, Window: time.Minute, CacheTTL: 10 * time.Minute}, time.Unix(1_700_000_000, 0))

	calls := 0
	producer := func() (int, error) {
		calls++
		return calls, nil
	}

	v, err := Execute(c, "repos:jane", producer)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	*now = now.Add(11 * time.Minute)

	v, err = Execute(c, "repos:jane", producer)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)
}

func TestExecuteRejectsOverBudget(t *testing.T) {
	c, _ := newTestCache(Options{MaxRequests: 3, Window: time.Minute, CacheTTL: 10 * time.Minute}, time.Unix(1_700_000_000, 0))

	for i := 0; i < 3; i++ {
		key := string(rune('a' + i))
		_, err := Execute(c, key, func() (string, error) { return "ok", nil })
		require.NoError(t, err)
	}

	_, err := Execute(c, "z", func() (string, error) { return "ok", nil })
	assert.ErrorIs(t, err, ErrRateLimitExceeded)
}

func TestExecuteCacheHitDoesNotConsumeBudget(t *testing.T) {
	c, _ := newTestCache(Options{MaxRequests: 1, Window: time.Minute, CacheTTL: 10 * time.Minute}, time.Unix(1_700_000_000, 0))

	_, err := Execute(c, "only", func() (string, error) { return "ok", nil })
	require.NoError(t, err)

	// Budget is spent, but the cached key keeps answering.
	for i := 0; i < 3; i++ {
		v, err := Execute(c, "only", func() (string, error) { return "new", nil })
		require.NoError(t, err)
		assert.Equal(t, "ok", v)
	}

	_, err = Execute(c, "other", func() (string, error) { return "ok", nil })
	assert.ErrorIs(t, err, ErrRateLimitExceeded)
}

func TestExecuteWindowSlides(t *testing.T) {
	c, now := newTestCache(Options{MaxRequests: 2, Window: time.Minute, CacheTTL: 0}, time.Unix(1_700_000_000, 0))

	for i := 0; i < 2; i++ {
		_, err := Execute(c, "k", func() (string, error) { return "ok", nil })
		require.NoError(t, err)
	}
	_, err := Execute(c, "k", func() (string, error) { return "ok", nil })
	require.ErrorIs(t, err, ErrRateLimitExceeded)

	*now = now.Add(2 * time.Minute)

	_, err = Execute(c, "k", func() (string, error) { return "ok", nil })
	assert.NoError(t, err, "budget must free up once the window passes")
}

func TestExecuteProducerErrorNotCached(t *testing.T) {
	c, _ := newTestCache(Options{MaxRequests: 10, Window: time.Minute, CacheTTL: 10 * time.Minute}, time.Unix(1_700_000_000, 0))

	boom := errors.New("boom")
	_, err := Execute(c, "k", func() (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)

	v, err := Execute(c, "k", func() (string, error) { return "recovered", nil })
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
}

func TestInvalidateDropsEntry(t *testing.T) {
	c, _ := newTestCache(Options{MaxRequests: 10, Window: time.Minute, CacheTTL: 10 * time.Minute}, time.Unix(1_700_000_000, 0))

	calls := 0
	producer := func() (string, error) {
		calls++
		return "v", nil
	}

	_, err := Execute(c, "k", producer)
	require.NoError(t, err)

	c.Invalidate("k")

	_, err = Execute(c, "k", producer)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestZeroTTLDisablesCaching(t *testing.T) {
	c, _ := newTestCache(Options{MaxRequests: 10, Window: time.Minute, CacheTTL: 0}, time.Unix(1_700_000_000, 0))

	calls := 0
	for i := 0; i < 3; i++ {
		_, err := Execute(c, "k", func() (string, error) {
			calls++
			return "v", nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}
