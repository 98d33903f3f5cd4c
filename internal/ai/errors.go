package ai

import (
	"errors"
	"fmt"
)

// Error templates for AI estimation operations.
var (
	errEstimationTemplate = errors.New("AI estimation failed")
	errProviderTemplate   = errors.New("AI provider error")
	errConfigTemplate     = errors.New("AI configuration error")
)

// Sentinel errors for AI operations.
var (
	ErrProviderNotConfigured = errors.New("AI provider not configured")
	ErrAPIKeyMissing         = errors.New("AI API key not provided")
	ErrUnsupportedProvider   = errors.New("unsupported AI provider")
	ErrEstimationTimeout     = errors.New("AI estimation timed out")
	ErrEmptyResponse         = errors.New("AI returned empty response")

	// ErrNoJSONFound indicates the provider response contained no JSON
	// object span at all, so no fields could be recovered.
	ErrNoJSONFound = errors.New("no JSON object found in AI response")

	// ErrMissingField is the template for required fields that could not
	// be recovered from the provider response. Match with errors.Is.
	ErrMissingField = errors.New("AI response missing field")
)

// EstimationError creates a standardized AI estimation error.
//
// Example:
//
//	return EstimationError("anthropic", "next cycle", err)
//	// "AI estimation failed: anthropic 'next cycle': <original error>"
func EstimationError(provider, context string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s '%s': %w", errEstimationTemplate, provider, context, err)
}

// ProviderError creates a standardized AI provider error.
func ProviderError(provider, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s '%s': %w", errProviderTemplate, provider, operation, err)
}

// ConfigError creates a standardized AI configuration error.
func ConfigError(field, reason string) error {
	return fmt.Errorf("%w: %s: %s", errConfigTemplate, field, reason)
}

// RateLimitError creates a standardized rate limit error for AI providers.
func RateLimitError(provider, retryAfter string) error {
	return fmt.Errorf("%w: %s 'rate limit': retry after %s", errProviderTemplate, provider, retryAfter)
}

// MissingFieldError reports a required field that could not be
// recovered from the provider response.
//
// Example:
//
//	return MissingFieldError("predicted_date")
//	// "AI response missing field: predicted_date"
func MissingFieldError(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}
