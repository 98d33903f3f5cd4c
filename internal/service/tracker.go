// Package service provides the Tracker, the application-facing facade
// over storage and the prediction engine. It owns the side effects the
// engine deliberately avoids: loading logs, applying the recalculation
// policy, persisting fresh predictions, and collapsing concurrent
// recalculations for the same owner into one.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/cyclewise/cyclewise/internal/cycle"
	"github.com/cyclewise/cyclewise/internal/db"
	"github.com/cyclewise/cyclewise/internal/logging"
	"github.com/cyclewise/cyclewise/internal/metrics"
	"github.com/cyclewise/cyclewise/internal/predict"
)

// ErrNoStats indicates there is not enough logged data to compute
// interval statistics.
var ErrNoStats = errors.New("not enough cycle data for statistics")

// Tracker coordinates cycle logging, statistics, and predictions for
// all owners. Safe for concurrent use.
type Tracker struct {
	logs      db.LogRepository
	preds     db.PredictionRepository
	settings  db.SettingsRepository
	predictor *predict.Predictor
	policy    *predict.Policy

	// aiConfigured reports whether an external provider was wired in at
	// startup. Owners can only be eligible when one exists.
	aiConfigured bool

	// minDays and maxDays are the configured cycle-length bounds, used
	// whenever the owner's settings leave bounds unset.
	minDays int
	maxDays int

	// group collapses concurrent recalculations per owner key.
	group  singleflight.Group
	logger *logrus.Entry
}

// Options configures a Tracker.
type Options struct {
	Logs         db.LogRepository
	Predictions  db.PredictionRepository
	Settings     db.SettingsRepository
	Predictor    *predict.Predictor
	Policy       *predict.Policy
	AIConfigured bool
	Logger       *logrus.Entry

	// MinLengthDays and MaxLengthDays are the configured cycle-length
	// bounds. Zero values fall back to the domain defaults (21 and 35).
	// Per-owner settings with explicit bounds take precedence.
	MinLengthDays int
	MaxLengthDays int
}

// NewTracker creates a tracker. Logger defaults to the logrus standard
// logger; the policy defaults to wall-clock staleness checks.
func NewTracker(opts Options) *Tracker {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger()).
			WithField(logging.StandardFields.Component, logging.ComponentNames.Service)
	}
	policy := opts.Policy
	if policy == nil {
		policy = predict.NewPolicy(nil)
	}
	minDays := opts.MinLengthDays
	if minDays == 0 {
		minDays = cycle.DefaultMinLengthDays
	}
	maxDays := opts.MaxLengthDays
	if maxDays == 0 {
		maxDays = cycle.DefaultMaxLengthDays
	}
	return &Tracker{
		logs:         opts.Logs,
		preds:        opts.Predictions,
		settings:     opts.Settings,
		predictor:    opts.Predictor,
		policy:       policy,
		aiConfigured: opts.AIConfigured,
		minDays:      minDays,
		maxDays:      maxDays,
		logger:       logger,
	}
}

// AddLog records a new cycle start date for the owner. The date is
// normalized to a calendar day; a second log on the same day fails with
// db.ErrDuplicateLog.
func (t *Tracker) AddLog(ctx context.Context, ownerKey string, startDate time.Time) (cycle.Log, error) {
	timer := metrics.StartTimer(ctx, t.logger, logging.OperationTypes.LogCreate).
		AddField(logging.StandardFields.OwnerKey, ownerKey)

	model := &db.CycleLog{OwnerKey: ownerKey, StartDate: startDate}
	if err := t.logs.Create(ctx, model); err != nil {
		timer.StopWithError(err)
		return cycle.Log{}, err
	}

	timer.AddField(logging.StandardFields.LogID, model.ExternalID).Stop()
	return db.ToDomainLog(model), nil
}

// RemoveLog deletes the owner's log on the given calendar day.
func (t *Tracker) RemoveLog(ctx context.Context, ownerKey string, startDate time.Time) error {
	timer := metrics.StartTimer(ctx, t.logger, logging.OperationTypes.LogDelete).
		AddField(logging.StandardFields.OwnerKey, ownerKey)
	err := t.logs.DeleteByDate(ctx, ownerKey, startDate)
	timer.StopWithError(err)
	return err
}

// Logs returns the owner's logged cycle starts, oldest first.
func (t *Tracker) Logs(ctx context.Context, ownerKey string) ([]cycle.Log, error) {
	models, err := t.logs.ListByOwner(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	return db.ToDomainLogs(models), nil
}

// Stats computes interval statistics over the owner's full history.
// Fails with ErrNoStats when fewer than two logs exist or every
// interval was filtered as an outlier.
func (t *Tracker) Stats(ctx context.Context, ownerKey string) (*cycle.Stats, error) {
	timer := metrics.StartTimer(ctx, t.logger, logging.OperationTypes.StatsCompute).
		AddField(logging.StandardFields.OwnerKey, ownerKey)

	logs, err := t.Logs(ctx, ownerKey)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	settings, err := t.settings.GetOrCreate(ctx, ownerKey)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	cfg := db.ToPredictConfig(settings)
	minBound, maxBound := t.bounds(cfg)

	stats := cycle.ComputeStats(logs, minBound, maxBound)
	if stats == nil {
		timer.StopWithError(ErrNoStats)
		return nil, ErrNoStats
	}

	timer.AddField(logging.StandardFields.SampleCount, stats.SampleCount).
		AddField(logging.StandardFields.AverageDays, stats.AverageDays).
		AddField(logging.StandardFields.Regularity, string(stats.Regularity)).
		Stop()
	return stats, nil
}

// Current returns the owner's prediction, recomputing and persisting it
// first when the stored one is missing or stale. Concurrent calls for
// the same owner share a single recalculation.
func (t *Tracker) Current(ctx context.Context, ownerKey string) (*predict.Prediction, error) {
	logs, err := t.logs.ListByOwner(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, predict.ErrNoLogs
	}

	current := t.storedPrediction(ctx, ownerKey)
	if !t.policy.NeedsRecalculation(current, db.ToDomainLogs(logs)) {
		return current, nil
	}

	return t.recalculate(ctx, ownerKey)
}

// Recalculate forces a fresh prediction for the owner, bypassing the
// staleness policy.
func (t *Tracker) Recalculate(ctx context.Context, ownerKey string) (*predict.Prediction, error) {
	return t.recalculate(ctx, ownerKey)
}

// SetAIEnabled flips the owner's external estimation opt-in.
func (t *Tracker) SetAIEnabled(ctx context.Context, ownerKey string, enabled bool) error {
	settings, err := t.settings.GetOrCreate(ctx, ownerKey)
	if err != nil {
		return err
	}
	settings.AIEnabled = enabled
	settings.AIEligible = t.aiConfigured
	return t.settings.Update(ctx, settings)
}

// Settings returns the owner's stored preferences, creating defaults on
// first access.
func (t *Tracker) Settings(ctx context.Context, ownerKey string) (*db.OwnerSettings, error) {
	return t.settings.GetOrCreate(ctx, ownerKey)
}

func (t *Tracker) recalculate(ctx context.Context, ownerKey string) (*predict.Prediction, error) {
	result, err, _ := t.group.Do(ownerKey, func() (interface{}, error) {
		return t.recalculateLocked(ctx, ownerKey)
	})
	if err != nil {
		return nil, err
	}
	prediction, ok := result.(*predict.Prediction)
	if !ok {
		return nil, predict.ErrNoLogs
	}
	return prediction, nil
}

func (t *Tracker) recalculateLocked(ctx context.Context, ownerKey string) (*predict.Prediction, error) {
	timer := metrics.StartTimer(ctx, t.logger, logging.OperationTypes.PredictNext).
		AddField(logging.StandardFields.OwnerKey, ownerKey)

	models, err := t.logs.ListByOwner(ctx, ownerKey)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	logs := db.ToDomainLogs(models)
	if len(logs) == 0 {
		timer.StopWithError(predict.ErrNoLogs)
		return nil, predict.ErrNoLogs
	}

	settings, err := t.settings.GetOrCreate(ctx, ownerKey)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	cfg := db.ToPredictConfig(settings)
	cfg.AIEligible = cfg.AIEligible && t.aiConfigured
	cfg.MinLengthDays, cfg.MaxLengthDays = t.bounds(cfg)

	prediction, err := t.predictor.Next(ctx, logs, cfg)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	if err := t.preds.SaveCurrent(ctx, db.FromDomainPrediction(prediction)); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.AddField(logging.StandardFields.PredictedDate, prediction.PredictedDate.Format("2006-01-02")).
		AddField(logging.StandardFields.Confidence, prediction.Confidence).
		Stop()
	return prediction, nil
}

// storedPrediction loads the owner's current prediction; absence is not
// an error here, the policy treats nil as "recalculate".
func (t *Tracker) storedPrediction(ctx context.Context, ownerKey string) *predict.Prediction {
	record, err := t.preds.GetCurrent(ctx, ownerKey)
	if err != nil {
		if !errors.Is(err, db.ErrRecordNotFound) {
			t.logger.WithError(err).
				WithField(logging.StandardFields.OwnerKey, ownerKey).
				Warn("Failed to load stored prediction")
		}
		return nil
	}
	return db.ToDomainPrediction(record)
}

// bounds resolves the effective cycle-length bounds: explicit per-owner
// settings win, then the configured defaults.
func (t *Tracker) bounds(cfg predict.Config) (minBound, maxBound int) {
	minBound, maxBound = cfg.MinLengthDays, cfg.MaxLengthDays
	if minBound == 0 {
		minBound = t.minDays
	}
	if maxBound == 0 {
		maxBound = t.maxDays
	}
	return minBound, maxBound
}
