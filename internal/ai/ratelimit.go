package ai

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a Provider with a token-bucket rate limit
// so bursts of forecast requests cannot hammer the upstream API.
type RateLimitedProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// NewRateLimitedProvider wraps inner with a requests-per-minute cap.
// A non-positive requestsPerMinute disables limiting.
func NewRateLimitedProvider(inner Provider, requestsPerMinute int) *RateLimitedProvider {
	var limiter *rate.Limiter
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
	}
	return &RateLimitedProvider{inner: inner, limiter: limiter}
}

// Name returns the wrapped provider identifier.
func (p *RateLimitedProvider) Name() string { return p.inner.Name() }

// IsAvailable reports the wrapped provider's availability.
func (p *RateLimitedProvider) IsAvailable() bool { return p.inner.IsAvailable() }

// GenerateText waits for rate-limit headroom, then delegates.
// Context cancellation while waiting propagates unchanged.
func (p *RateLimitedProvider) GenerateText(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return p.inner.GenerateText(ctx, req)
}
