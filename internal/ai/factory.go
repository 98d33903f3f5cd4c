package ai

import (
	"context"

	"github.com/sirupsen/logrus"
)

// NewProvider creates an AI provider based on the configuration.
// It validates the configuration and returns an appropriate provider
// implementation. Currently supports Genkit-based providers for
// Anthropic, OpenAI, and Google.
func NewProvider(ctx context.Context, cfg *Config, logger *logrus.Entry) (Provider, error) {
	if !cfg.Enabled {
		return nil, ErrProviderNotConfigured
	}

	if cfg.APIKey == "" {
		return nil, ErrAPIKeyMissing
	}

	switch cfg.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGoogle:
		// Valid providers
	default:
		return nil, ErrUnsupportedProvider
	}

	return NewGenkitProvider(ctx, cfg, logger)
}

// BuildEstimationProvider creates the fully composed provider used by
// the caller-facing service: base Genkit provider wrapped with rate
// limiting, retries, and response caching. The prediction engine sees
// only the Provider interface; which decorators apply is the caller's
// policy.
func BuildEstimationProvider(ctx context.Context, cfg *Config, logger *logrus.Entry) (Provider, error) {
	base, err := NewProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var provider Provider = NewRateLimitedProvider(base, cfg.RequestsPerMinute)
	provider = NewRetryProvider(provider, RetryConfigFromConfig(cfg), logger)

	if cfg.CacheEnabled {
		provider = NewCachedProvider(provider, NewResponseCache(cfg))
	}

	return provider, nil
}

// CachedProvider wraps a Provider with prompt-keyed response caching.
type CachedProvider struct {
	inner Provider
	cache *ResponseCache
}

// NewCachedProvider wraps inner with the given response cache.
func NewCachedProvider(inner Provider, cache *ResponseCache) *CachedProvider {
	return &CachedProvider{inner: inner, cache: cache}
}

// Name returns the wrapped provider identifier.
func (p *CachedProvider) Name() string { return p.inner.Name() }

// IsAvailable reports the wrapped provider's availability.
func (p *CachedProvider) IsAvailable() bool { return p.inner.IsAvailable() }

// GenerateText serves the response from cache when the same prompt was
// answered recently, delegating on a miss.
func (p *CachedProvider) GenerateText(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	content, _, err := p.cache.GetOrGenerate(ctx, "forecast:", req.Prompt, func(ctx context.Context) (string, error) {
		resp, genErr := p.inner.GenerateText(ctx, req)
		if genErr != nil {
			return "", genErr
		}
		return resp.Content, nil
	})
	if err != nil {
		return nil, err
	}
	return &GenerateResponse{Content: content}, nil
}
