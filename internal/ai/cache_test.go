package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cacheTestConfig() *Config {
	cfg := DefaultConfig()
	cfg.CacheEnabled = true
	cfg.CacheTTL = time.Minute
	cfg.CacheMaxSize = 10
	return cfg
}

func TestResponseCacheSetGet(t *testing.T) {
	cache := NewResponseCache(cacheTestConfig())

	_, ok := cache.Get("prompt")
	assert.False(t, ok)

	cache.Set("prompt", "answer")
	got, ok := cache.Get("prompt")
	assert.True(t, ok)
	assert.Equal(t, "answer", got)
}

func TestResponseCacheDisabled(t *testing.T) {
	cfg := cacheTestConfig()
	cfg.CacheEnabled = false
	cache := NewResponseCache(cfg)

	cache.Set("prompt", "answer")
	_, ok := cache.Get("prompt")
	assert.False(t, ok)
}

func TestResponseCacheExpiry(t *testing.T) {
	cfg := cacheTestConfig()
	cfg.CacheTTL = time.Millisecond
	cache := NewResponseCache(cfg)

	cache.Set("prompt", "answer")
	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get("prompt")
	assert.False(t, ok, "expired entries must not be served")
}

func TestGetOrGenerateCachesSuccess(t *testing.T) {
	cache := NewResponseCache(cacheTestConfig())
	calls := 0

	gen := func(_ context.Context) (string, error) {
		calls++
		return "generated", nil
	}

	resp, hit, err := cache.GetOrGenerate(context.Background(), "forecast:", "prompt", gen)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "generated", resp)

	resp, hit, err = cache.GetOrGenerate(context.Background(), "forecast:", "prompt", gen)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "generated", resp)
	assert.Equal(t, 1, calls)

	hits, misses, size := cache.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, 1, size)
}

func TestGetOrGenerateDoesNotCacheErrors(t *testing.T) {
	cache := NewResponseCache(cacheTestConfig())
	calls := 0
	genErr := errors.New("provider down") //nolint:err113 // test-only error

	gen := func(_ context.Context) (string, error) {
		calls++
		return "", genErr
	}

	_, _, err := cache.GetOrGenerate(context.Background(), "forecast:", "prompt", gen)
	assert.ErrorIs(t, err, genErr)

	_, _, err = cache.GetOrGenerate(context.Background(), "forecast:", "prompt", gen)
	assert.ErrorIs(t, err, genErr)
	assert.Equal(t, 2, calls, "failures must reach the generator every time")
}

func TestResponseCacheClear(t *testing.T) {
	cache := NewResponseCache(cacheTestConfig())
	cache.Set("a", "1")
	cache.Set("b", "2")
	require.Equal(t, 2, cache.Size())

	cache.Clear()
	assert.Equal(t, 0, cache.Size())
}

func TestCachedProviderServesRepeatedPrompts(t *testing.T) {
	inner := NewMockProvider()
	inner.SetupName("mock")
	inner.SetupAvailable(true)
	inner.SetupGenerateTextOnce(&GenerateResponse{Content: "one"}, nil)

	p := NewCachedProvider(inner, NewResponseCache(cacheTestConfig()))

	first, err := p.GenerateText(context.Background(), &GenerateRequest{Prompt: "same"})
	require.NoError(t, err)
	second, err := p.GenerateText(context.Background(), &GenerateRequest{Prompt: "same"})
	require.NoError(t, err)

	assert.Equal(t, "one", first.Content)
	assert.Equal(t, "one", second.Content)
	inner.AssertNumberOfCalls(t, "GenerateText", 1)
}
