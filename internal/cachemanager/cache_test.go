package cachemanager

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type rendered struct {
	ID   string
	View string
}

func TestNew(t *testing.T) {
	require.NotPanics(t, func() {
		New[string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

func TestCache_GetExistingValue_StructType(t *testing.T) {
	cache := New[rendered]("previews", DefaultExpiration, DefaultCleanupInterval)
	want := rendered{ID: "swiss", View: "OBJECTIVE"}
	cache.Set("swiss", want, 0)

	got, ok := cache.Get("swiss")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestCache_GetMissing(t *testing.T) {
	cache := New[string]("previews", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get("swiss")
	require.False(t, ok)
	require.Empty(t, got)
	require.Equal(t, int64(1), cache.Stats().Misses)
}

func TestCache_GetWrongType(t *testing.T) {
	cache := New[string]("previews", DefaultExpiration, DefaultCleanupInterval)
	cache.cache.Set("swiss", 123, DefaultExpiration)

	got, ok := cache.Get("swiss")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestCache_Expires(t *testing.T) {
	cache := New[string]("previews", DefaultExpiration, DefaultCleanupInterval)
	cache.Set("swiss", "view", time.Millisecond)

	require.Eventually(t, func() bool {
		_, ok := cache.Get("swiss")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestCache_GetOrLoad(t *testing.T) {
	cache := New[string]("previews", DefaultExpiration, DefaultCleanupInterval)
	calls := 0
	load := func() (string, error) {
		calls++
		return "view", nil
	}

	for range 3 {
		got, err := cache.GetOrLoad("swiss", 0, load)
		require.NoError(t, err)
		require.Equal(t, "view", got)
	}

	require.Equal(t, 1, calls)
	stats := cache.Stats()
	require.Equal(t, int64(2), stats.Hits)
	require.Equal(t, int64(1), stats.Misses)
	require.Equal(t, 1, stats.Items)
}

func TestCache_GetOrLoad_ErrorNotCached(t *testing.T) {
	cache := New[string]("previews", DefaultExpiration, DefaultCleanupInterval)
	boom := errors.New("boom")

	_, err := cache.GetOrLoad("swiss", 0, func() (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)

	_, ok := cache.Get("swiss")
	require.False(t, ok)
}

func TestCache_DeleteAndFlush(t *testing.T) {
	cache := New[string]("previews", DefaultExpiration, DefaultCleanupInterval)
	cache.Set("a", "1", 0)
	cache.Set("b", "2", 0)
	cache.Set("c", "3", 0)

	cache.Delete("a", "b")
	_, ok := cache.Get("a")
	require.False(t, ok)
	_, ok = cache.Get("c")
	require.True(t, ok)

	cache.Flush()
	require.Equal(t, Stats{}, cache.Stats())
}
