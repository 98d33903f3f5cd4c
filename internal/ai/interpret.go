package ai

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

// DefaultReasoning is used when the provider response carries no
// reasoning field of its own.
const DefaultReasoning = "Estimated by AI from logged cycle history."

// Estimate is the structured, validated payload recovered from a
// provider's free-form response.
type Estimate struct {
	// PredictedDate is the forecast next cycle start.
	PredictedDate time.Time

	// AverageDays is the provider's view of the average cycle length.
	AverageDays int

	// Confidence is clamped to [0,1].
	Confidence float64

	// Reasoning is the provider's explanation, or DefaultReasoning.
	Reasoning string
}

// Field-anchored extraction patterns. Providers are not guaranteed to
// emit syntactically perfect JSON (unescaped quotes and the like), so
// each field is recovered individually instead of unmarshaling the
// whole candidate span.
var (
	predictedDatePattern = regexp.MustCompile(`"predicted_date"\s*:\s*"(\d{4}-\d{2}-\d{2})`)
	averageDaysPattern   = regexp.MustCompile(`"average_cycle_length"\s*:\s*"?(\d+)`)
	confidencePattern    = regexp.MustCompile(`"confidence"\s*:\s*"?(-?[0-9]+(?:\.[0-9]+)?)`)
	reasoningPattern     = regexp.MustCompile(`(?s)"reasoning"\s*:\s*"(.*?)"\s*[,}\n]`)
	fencePattern         = regexp.MustCompile("```[a-zA-Z]*")
)

// Interpret parses a provider's raw text answer into an Estimate.
//
// The response is expected to contain one JSON object with fields
// predicted_date (ISO date), average_cycle_length (int), confidence
// (float) and optionally reasoning. Commentary before or after the
// object and markdown code fences are tolerated; the candidate span is
// whatever lies between the first '{' and the last '}'.
//
// A predicted date implying a cycle outside [minBound, maxBound+slack]
// is NOT rejected: the provider's judgment is deliberately trusted over
// the local heuristic bound, and the anomaly is only logged.
//
// Failure modes: ErrNoJSONFound when no object span exists, and
// MissingFieldError(name) when a required field cannot be recovered.
func Interpret(raw string, lastEventDate time.Time, minBound, maxBound int, logger *logrus.Entry) (*Estimate, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	cleaned := strings.TrimSpace(raw)
	cleaned = fencePattern.ReplaceAllString(cleaned, "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONFound
	}
	span := cleaned[start : end+1]

	dateMatch := predictedDatePattern.FindStringSubmatch(span)
	if dateMatch == nil {
		return nil, MissingFieldError("predicted_date")
	}
	predictedDate, err := time.Parse("2006-01-02", dateMatch[1])
	if err != nil {
		return nil, MissingFieldError("predicted_date")
	}

	averageMatch := averageDaysPattern.FindStringSubmatch(span)
	if averageMatch == nil {
		return nil, MissingFieldError("average_cycle_length")
	}
	averageDays, err := strconv.Atoi(averageMatch[1])
	if err != nil {
		return nil, MissingFieldError("average_cycle_length")
	}

	confidenceMatch := confidencePattern.FindStringSubmatch(span)
	if confidenceMatch == nil {
		return nil, MissingFieldError("confidence")
	}
	confidence, err := strconv.ParseFloat(confidenceMatch[1], 64)
	if err != nil {
		return nil, MissingFieldError("confidence")
	}
	confidence = clampConfidence(confidence)

	reasoning := DefaultReasoning
	if m := reasoningPattern.FindStringSubmatch(span); m != nil && strings.TrimSpace(m[1]) != "" {
		reasoning = strings.TrimSpace(m[1])
	}

	// Sanity check against the local bounds. Out-of-range dates are
	// flagged, never rejected.
	daysSinceLast := cycle.DaysBetween(lastEventDate, predictedDate)
	if daysSinceLast < minBound || daysSinceLast > maxBound+cycle.OutlierSlackDays {
		logger.WithFields(logrus.Fields{
			"predicted_date":  predictedDate.Format("2006-01-02"),
			"days_since_last": daysSinceLast,
			"min_bound":       minBound,
			"max_bound":       maxBound,
		}).Warn("AI predicted date outside expected cycle bounds, keeping it anyway")
	}

	return &Estimate{
		PredictedDate: cycle.DateOnly(predictedDate),
		AverageDays:   averageDays,
		Confidence:    confidence,
		Reasoning:     reasoning,
	}, nil
}

// clampConfidence forces a confidence value into [0,1].
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
