// Package logging provides redaction services for sensitive data protection.
//
// Redaction ensures that AI provider API keys and other secrets never
// appear in log output. It works two ways: regex pattern matching over
// message text, and field name analysis over structured fields. A
// logrus hook applies both automatically to every entry.
package logging

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// RedactedValue replaces any detected secret.
const RedactedValue = "[REDACTED]"

// RedactionService handles sensitive data redaction for log output.
type RedactionService struct {
	sensitivePatterns []*regexp.Regexp
	sensitiveFields   []string
}

// NewRedactionService creates a redaction service covering the API key
// formats of the supported AI providers plus generic secret patterns.
func NewRedactionService() *RedactionService {
	return &RedactionService{
		sensitivePatterns: []*regexp.Regexp{
			// Anthropic API keys
			regexp.MustCompile(`sk-ant-[a-zA-Z0-9_-]{8,}`),
			// OpenAI API keys (standard and project-scoped)
			regexp.MustCompile(`sk-proj-[a-zA-Z0-9_-]{8,}`),
			regexp.MustCompile(`sk-[a-zA-Z0-9]{16,}`),
			// Google AI API keys
			regexp.MustCompile(`AIza[a-zA-Z0-9_-]{8,}`),

			// Authorization headers - capture just the token part
			regexp.MustCompile(`(Bearer|Token)\s+([^\s]+)`),

			// URL parameters with sensitive data
			regexp.MustCompile(`(password|token|secret|key|api_key)=([^\s&]+)`),

			// Generic secret patterns in environment variables
			regexp.MustCompile(`([A-Z_]*(?:TOKEN|SECRET|KEY|PASSWORD|PASS)[A-Z_]*=)([^\s]+)`),
		},
		sensitiveFields: []string{
			"password",
			"token",
			"secret",
			"api_key",
			"apikey",
			"authorization",
			"auth",
			"credential",
		},
	}
}

// RedactSensitive replaces any detected secrets in text.
func (s *RedactionService) RedactSensitive(text string) string {
	for _, pattern := range s.sensitivePatterns {
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			// Patterns with a prefix group keep the prefix for context.
			groups := pattern.FindStringSubmatch(match)
			if len(groups) >= 3 {
				prefix := groups[1]
				switch {
				case strings.HasSuffix(prefix, "="):
					return prefix + RedactedValue
				case strings.HasPrefix(match, prefix+"="):
					return prefix + "=" + RedactedValue
				default:
					return prefix + " " + RedactedValue
				}
			}
			return RedactedValue
		})
	}
	return text
}

// IsSensitiveField reports whether a structured field name commonly
// carries confidential values.
func (s *RedactionService) IsSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	for _, field := range s.sensitiveFields {
		if strings.Contains(lower, field) {
			return true
		}
	}
	return false
}

// redactionHook applies redaction to every log entry.
type redactionHook struct {
	service *RedactionService
}

// CreateHook returns a logrus hook that redacts messages and fields.
func (s *RedactionService) CreateHook() logrus.Hook {
	return &redactionHook{service: s}
}

// Levels applies the hook to every log level.
func (h *redactionHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire redacts the entry message and any sensitive field values in place.
func (h *redactionHook) Fire(entry *logrus.Entry) error {
	entry.Message = h.service.RedactSensitive(entry.Message)

	for key, value := range entry.Data {
		if h.service.IsSensitiveField(key) {
			entry.Data[key] = RedactedValue
			continue
		}
		if str, ok := value.(string); ok {
			entry.Data[key] = h.service.RedactSensitive(str)
		}
	}
	return nil
}
