package ai

import (
	"bytes"
	"fmt"
	"sync"
	"text/template"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

// forecastPromptTmpl is the cached parsed template for forecast prompts.
//
//nolint:gochecknoglobals // Intentional caching for performance - parsed once per process
var (
	forecastPromptTmpl     *template.Template
	forecastPromptTmplOnce sync.Once
)

// ForecastContext contains the data rendered into a forecast prompt.
type ForecastContext struct {
	// Dates are the logged cycle start dates, oldest first, as ISO dates.
	Dates []string

	// Intervals are the whole-day gaps between consecutive dates,
	// formatted for display ("28 days").
	Intervals []string

	// MinLengthDays and MaxLengthDays are the configured sanity bounds.
	MinLengthDays int
	MaxLengthDays int
}

// forecastPromptTemplate asks for exactly one JSON object so that the
// interpreter can recover the fields even when the provider adds
// commentary around it.
const forecastPromptTemplate = `You are estimating the next start date of a recurring biological cycle.

## Logged start dates (oldest first, {{ len .Dates }} total)
{{ range .Dates -}}
- {{ . }}
{{ end }}
{{ if .Intervals }}## Intervals between consecutive dates
{{ range .Intervals -}}
- {{ . }}
{{ end }}
{{ end -}}
## Expected cycle length
Typical cycles for this user fall between {{ .MinLengthDays }} and {{ .MaxLengthDays }} days,
but trust the data over the bounds if they disagree.

## Required output
Respond with ONLY one JSON object, no commentary, in exactly this shape:
{"predicted_date": "YYYY-MM-DD", "average_cycle_length": <integer days>, "confidence": <0.0-1.0>, "reasoning": "<one short sentence>"}
`

// getForecastPromptTmpl returns the cached parsed forecast template.
func getForecastPromptTmpl() *template.Template {
	forecastPromptTmplOnce.Do(func() {
		forecastPromptTmpl = template.Must(template.New("forecast_prompt").Parse(forecastPromptTemplate))
	})
	return forecastPromptTmpl
}

// BuildForecastPrompt constructs the prompt for next-cycle estimation.
// Logs must be sorted chronologically ascending; the prompt lists each
// start date and the pairwise intervals between them.
func BuildForecastPrompt(logs []cycle.Log, minBound, maxBound int) string {
	fc := &ForecastContext{
		Dates:         make([]string, 0, len(logs)),
		Intervals:     make([]string, 0, len(logs)),
		MinLengthDays: minBound,
		MaxLengthDays: maxBound,
	}

	for i, log := range logs {
		fc.Dates = append(fc.Dates, log.StartDate.Format("2006-01-02"))
		if i > 0 {
			fc.Intervals = append(fc.Intervals,
				fmt.Sprintf("%d days", cycle.DaysBetween(logs[i-1].StartDate, log.StartDate)))
		}
	}

	var buf bytes.Buffer
	if err := getForecastPromptTmpl().Execute(&buf, fc); err != nil {
		// Static template over plain slices; execution failure is not expected.
		return ""
	}
	return buf.String()
}
