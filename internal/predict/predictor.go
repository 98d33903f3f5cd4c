package predict

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cyclewise/cyclewise/internal/ai"
	"github.com/cyclewise/cyclewise/internal/cycle"
)

// forecastMaxTokens bounds the response length for a forecast. The
// answer is one small JSON object, so this is generous.
const forecastMaxTokens = 500

// Predictor is the top-level prediction entry point. It chooses
// between the local estimator and the injected external capability
// based on the per-call Config, and returns one normalized Prediction.
//
// Stateless and safe for concurrent use.
type Predictor struct {
	provider ai.Provider
	local    *LocalEstimator
	now      Clock
	logger   *logrus.Entry
}

// NewPredictor creates a predictor. The provider may be nil when
// external estimation is never used; the clock defaults to time.Now
// and the logger to the logrus standard logger.
func NewPredictor(provider ai.Provider, clock Clock, logger *logrus.Entry) *Predictor {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Predictor{
		provider: provider,
		local:    NewLocalEstimator(clock),
		now:      clock,
		logger:   logger,
	}
}

// Next computes the next-cycle prediction for the given logs.
//
// Fails with ErrNoLogs on empty input. When the config selects the
// external path, a provider or parse failure is surfaced to the
// caller rather than silently downgraded to the local estimate: an
// opted-in owner gets an AI-derived answer or an explicit error,
// never an undisclosed fallback. Context cancellation propagates and
// stays distinguishable from parse failures via errors.Is.
func (p *Predictor) Next(ctx context.Context, logs []cycle.Log, cfg Config) (*Prediction, error) {
	if len(logs) == 0 {
		return nil, ErrNoLogs
	}

	cfg = cfg.withDefaults()
	sorted := cycle.SortByStartDate(logs)

	var prediction Prediction
	if cfg.UseExternal() {
		external, err := p.estimateExternal(ctx, sorted, cfg)
		if err != nil {
			return nil, err
		}
		prediction = *external
	} else {
		prediction = p.local.Estimate(sorted, cfg)
	}

	prediction.OwnerKey = cfg.OwnerKey
	prediction.CalculatedAt = p.now()
	return &prediction, nil
}

// estimateExternal runs the AI-backed path: prompt the provider with
// the ordered dates and their intervals, then interpret the raw answer.
func (p *Predictor) estimateExternal(ctx context.Context, sorted []cycle.Log, cfg Config) (*Prediction, error) {
	if p.provider == nil || !p.provider.IsAvailable() {
		return nil, ErrExternalUnavailable
	}

	prompt := ai.BuildForecastPrompt(sorted, cfg.MinLengthDays, cfg.MaxLengthDays)

	resp, err := p.provider.GenerateText(ctx, &ai.GenerateRequest{
		Prompt:      prompt,
		MaxTokens:   forecastMaxTokens,
		Temperature: ai.TemperatureNotSet,
	})
	if err != nil {
		return nil, ai.EstimationError(p.provider.Name(), "next cycle start", err)
	}
	if resp == nil || resp.Content == "" {
		return nil, ai.EstimationError(p.provider.Name(), "next cycle start", ai.ErrEmptyResponse)
	}

	last := sorted[len(sorted)-1]
	estimate, err := ai.Interpret(resp.Content, last.StartDate, cfg.MinLengthDays, cfg.MaxLengthDays, p.logger)
	if err != nil {
		return nil, err
	}

	return &Prediction{
		PredictedDate: estimate.PredictedDate,
		AverageDays:   estimate.AverageDays,
		Confidence:    estimate.Confidence,
		Reasoning:     estimate.Reasoning,
	}, nil
}
