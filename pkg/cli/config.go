package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/repository"
	"github.com/orator-dev/orator/pkg/usecase/coaching"
	"github.com/orator-dev/orator/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// config holds configuration values
type config struct {
	// Repository
	store    string
	project  string
	database string

	// Adapters
	geminiAPIKey string
	geminiModel  string

	// Aggregator
	thresholdsPath string

	logLevel string
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "store",
			Usage:       "Session store backend (firestore or memory)",
			Value:       "firestore",
			Sources:     cli.EnvVars("ORATOR_STORE"),
			Destination: &cfg.store,
		},
		&cli.StringFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Google Cloud project ID",
			Sources:     cli.EnvVars("GOOGLE_CLOUD_PROJECT"),
			Destination: &cfg.project,
		},
		&cli.StringFlag{
			Name:        "database",
			Aliases:     []string{"d"},
			Usage:       "Firestore database ID",
			Value:       "(default)",
			Sources:     cli.EnvVars("FIRESTORE_DATABASE_ID"),
			Destination: &cfg.database,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("ORATOR_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

// llmFlags returns flags for Gemini configuration with destination config
func llmFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-api-key",
			Usage:       "Gemini API key",
			Sources:     cli.EnvVars("GEMINI_API_KEY"),
			Destination: &cfg.geminiAPIKey,
		},
		&cli.StringFlag{
			Name:        "gemini-model",
			Usage:       "Gemini generative model",
			Value:       "gemini-2.5-flash",
			Sources:     cli.EnvVars("ORATOR_GEMINI_MODEL"),
			Destination: &cfg.geminiModel,
		},
	}
}

// setupLogger installs the configured logger into the context
func (cfg *config) setupLogger(ctx context.Context) context.Context {
	logger := logging.New(cfg.logLevel, nil)
	logging.SetDefault(logger)
	return logging.With(ctx, logger)
}

// newRepository creates a new session repository instance
func (cfg *config) newRepository(ctx context.Context) (repository.Repository, error) {
	switch cfg.store {
	case "memory":
		return repository.NewMemory(), nil
	case "firestore":
		if cfg.project == "" {
			return nil, goerr.Wrap(model.ErrConfig, "project is required for the firestore store")
		}
		if cfg.database == "" {
			return nil, goerr.Wrap(model.ErrConfig, "database is required for the firestore store")
		}
		return repository.NewFirestore(ctx, cfg.project, cfg.database)
	default:
		return nil, goerr.Wrap(model.ErrConfig, "unknown store backend", goerr.V("store", cfg.store))
	}
}

// newGemini creates a new Gemini adapter instance
func (cfg *config) newGemini(ctx context.Context) (adapter.Gemini, error) {
	if cfg.geminiAPIKey == "" {
		return nil, goerr.Wrap(model.ErrConfig, "GEMINI_API_KEY is required")
	}
	return adapter.NewGemini(ctx, cfg.geminiAPIKey, adapter.WithGenerativeModel(cfg.geminiModel))
}

// newStorage creates a new Storage adapter instance
func (cfg *config) newStorage(ctx context.Context, bucketName string) (adapter.Storage, error) {
	if bucketName == "" {
		return nil, goerr.Wrap(model.ErrConfig, "bucket name is required")
	}
	return adapter.NewStorage(ctx, bucketName)
}

// newThresholds loads aggregator thresholds, built-in defaults when no file is given
func (cfg *config) newThresholds() (*coaching.Thresholds, error) {
	if cfg.thresholdsPath == "" {
		return coaching.DefaultThresholds(), nil
	}
	return coaching.LoadThresholds(cfg.thresholdsPath)
}
