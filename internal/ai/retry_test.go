package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPermanent = errors.New("model does not exist")

func fastRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestGenerateWithRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	resp, err := GenerateWithRetry(context.Background(), fastRetryConfig(), nil,
		func(_ context.Context) (*GenerateResponse, error) {
			calls++
			return &GenerateResponse{Content: "ok"}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Content)
	assert.Equal(t, 1, calls)
}

func TestGenerateWithRetryRecoversFromTransientError(t *testing.T) {
	calls := 0
	resp, err := GenerateWithRetry(context.Background(), fastRetryConfig(), nil,
		func(_ context.Context) (*GenerateResponse, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("429 too many requests") //nolint:err113 // transient test error
			}
			return &GenerateResponse{Content: "recovered"}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Content)
	assert.Equal(t, 3, calls)
}

func TestGenerateWithRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	_, err := GenerateWithRetry(context.Background(), fastRetryConfig(), nil,
		func(_ context.Context) (*GenerateResponse, error) {
			calls++
			return nil, errPermanent
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, errPermanent)
	assert.Equal(t, 1, calls, "permanent errors must not be retried")
}

func TestGenerateWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := GenerateWithRetry(context.Background(), fastRetryConfig(), nil,
		func(_ context.Context) (*GenerateResponse, error) {
			calls++
			return nil, errors.New("service unavailable") //nolint:err113 // transient test error
		})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestGenerateWithRetryHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	_, err := GenerateWithRetry(ctx, fastRetryConfig(), nil,
		func(_ context.Context) (*GenerateResponse, error) {
			cancel()
			return nil, errors.New("timeout") //nolint:err113 // transient test error
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "rate limit", err: errors.New("rate limit exceeded"), want: true},
		{name: "http 429", err: errors.New("status 429"), want: true},
		{name: "http 503", err: errors.New("503 service unavailable"), want: true},
		{name: "deadline", err: errors.New("context deadline exceeded"), want: true},
		{name: "connection reset", err: errors.New("connection reset by peer"), want: true},
		{name: "overloaded", err: errors.New("overloaded_error"), want: true},
		{name: "invalid api key", err: errors.New("invalid api key"), want: false},
		{name: "bad model", err: errPermanent, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableError(tt.err))
		})
	}
}

func TestRetryProviderDelegates(t *testing.T) {
	inner := NewSuccessMock("content")
	p := NewRetryProvider(inner, fastRetryConfig(), nil)

	assert.Equal(t, "mock", p.Name())
	assert.True(t, p.IsAvailable())

	resp, err := p.GenerateText(context.Background(), &GenerateRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "content", resp.Content)
}
