package db

import (
	"github.com/cyclewise/cyclewise/internal/cycle"
	"github.com/cyclewise/cyclewise/internal/predict"
)

// ToDomainLog converts a stored CycleLog to the domain type.
func ToDomainLog(model *CycleLog) cycle.Log {
	return cycle.Log{
		ID:        model.ExternalID,
		OwnerKey:  model.OwnerKey,
		StartDate: model.StartDate,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ToDomainLogs converts a list of stored logs to domain types,
// preserving order.
func ToDomainLogs(models []*CycleLog) []cycle.Log {
	logs := make([]cycle.Log, 0, len(models))
	for _, m := range models {
		logs = append(logs, ToDomainLog(m))
	}
	return logs
}

// FromDomainLog converts a domain log to its storage model.
func FromDomainLog(log cycle.Log) *CycleLog {
	return &CycleLog{
		ExternalID: log.ID,
		OwnerKey:   log.OwnerKey,
		StartDate:  cycle.DateOnly(log.StartDate),
	}
}

// ToDomainPrediction converts a stored prediction to the domain type.
func ToDomainPrediction(model *PredictionRecord) *predict.Prediction {
	return &predict.Prediction{
		PredictedDate: model.PredictedDate,
		AverageDays:   model.AverageDays,
		Confidence:    model.Confidence,
		CalculatedAt:  model.CalculatedAt,
		MinDays:       model.MinDays,
		MaxDays:       model.MaxDays,
		Reasoning:     model.Reasoning,
		OwnerKey:      model.OwnerKey,
	}
}

// FromDomainPrediction converts a domain prediction to its storage model.
func FromDomainPrediction(p *predict.Prediction) *PredictionRecord {
	return &PredictionRecord{
		OwnerKey:      p.OwnerKey,
		PredictedDate: p.PredictedDate,
		AverageDays:   p.AverageDays,
		Confidence:    p.Confidence,
		MinDays:       p.MinDays,
		MaxDays:       p.MaxDays,
		Reasoning:     p.Reasoning,
		CalculatedAt:  p.CalculatedAt,
	}
}

// ToPredictConfig derives the per-call estimation configuration from
// stored owner settings.
func ToPredictConfig(settings *OwnerSettings) predict.Config {
	return predict.Config{
		AIEligible:    settings.AIEligible,
		AIEnabled:     settings.AIEnabled,
		MinLengthDays: settings.MinLengthDays,
		MaxLengthDays: settings.MaxLengthDays,
		OwnerKey:      settings.OwnerKey,
	}
}
