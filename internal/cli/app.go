package cli

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cyclewise/cyclewise/internal/ai"
	"github.com/cyclewise/cyclewise/internal/config"
	"github.com/cyclewise/cyclewise/internal/db"
	"github.com/cyclewise/cyclewise/internal/logging"
	"github.com/cyclewise/cyclewise/internal/predict"
	"github.com/cyclewise/cyclewise/internal/service"
)

// app bundles the wired application for one command invocation.
type app struct {
	cfg      *config.Config
	tracker  *service.Tracker
	database db.Database
	logger   *logrus.Logger
}

// newApp loads configuration, opens storage, and wires the tracker.
// The AI provider is built only when the config enables it; a
// misconfigured provider fails fast here rather than at first use.
func newApp(ctx context.Context, flags *Flags) (*app, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logCfg := &logging.LogConfig{
		ConfigFile:    flags.ConfigFile,
		LogLevel:      flags.LogLevel,
		Verbose:       flags.Verbose,
		LogFormat:     cfg.Logging.Format,
		JSONOutput:    flags.JSONOutput && cfg.Logging.Format == "json",
		CorrelationID: logging.GenerateCorrelationID(),
	}
	logCfg.Configure(logger)

	database, err := db.Open(cfg.Database.Path, cfg.Database.GormLogLevel())
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(); err != nil {
		_ = database.Close()
		return nil, err
	}

	var provider ai.Provider
	aiCfg := cfg.ToAIConfig()
	if aiCfg.IsEnabled() {
		provider, err = ai.BuildEstimationProvider(ctx, aiCfg,
			logging.WithStandardFields(logger, logCfg, logging.ComponentNames.AI))
		if err != nil {
			_ = database.Close()
			return nil, err
		}
	}

	gormDB := database.DB()
	tracker := service.NewTracker(service.Options{
		Logs:          db.NewLogRepository(gormDB),
		Predictions:   db.NewPredictionRepository(gormDB),
		Settings:      db.NewSettingsRepository(gormDB),
		Predictor:     predict.NewPredictor(provider, nil, logging.WithStandardFields(logger, logCfg, logging.ComponentNames.Predict)),
		Policy:        predict.NewPolicy(nil),
		AIConfigured:  provider != nil,
		Logger:        logging.WithStandardFields(logger, logCfg, logging.ComponentNames.Service),
		MinLengthDays: cfg.Cycle.MinLengthDays,
		MaxLengthDays: cfg.Cycle.MaxLengthDays,
	})

	return &app{
		cfg:      cfg,
		tracker:  tracker,
		database: database,
		logger:   logger,
	}, nil
}

// Close releases the database connection.
func (a *app) Close() error {
	return a.database.Close()
}

// loadConfig reads the configured file, falling back to defaults when
// no file was given and the default location does not exist.
func loadConfig(flags *Flags) (*config.Config, error) {
	if flags.ConfigFile != "" {
		return config.Load(flags.ConfigFile)
	}

	defaultPath := defaultConfigPath()
	cfg, err := config.Load(defaultPath)
	if err == nil {
		return cfg, nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return config.Default(), nil
	}
	return nil, err
}

// defaultConfigPath is ~/.cyclewise/config.yaml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return home + "/" + config.DefaultConfigDir + "/config.yaml"
}
