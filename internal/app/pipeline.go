package app

import (
	"context"
	"net/http"

	"github.com/courtsidehq/courtside/external/kaggle"
	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/platform/logging"
	"github.com/courtsidehq/courtside/internal/platform/resilience"
	"github.com/courtsidehq/courtside/internal/usecase"
)

// RunPipeline executes one fetch-aggregate-persist pass against the
// configured dataset host and snapshot backend.
func RunPipeline(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	store, err := newSnapshotStore(cfg)
	if err != nil {
		return err
	}

	client := kaggle.NewClient(kaggle.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.DatasetTimeout},
		BaseURL:    cfg.DatasetBaseURL,
		Timeout:    cfg.DatasetTimeout,
		MaxRetries: cfg.DatasetMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.DatasetCircuitEnabled,
			FailureThreshold: cfg.DatasetCircuitFailureCount,
			OpenTimeout:      cfg.DatasetCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DatasetCircuitHalfOpenMaxReq,
		},
	})

	refresh := usecase.NewRefreshService(
		client,
		usecase.NewSnapshotService(store, logger),
		logger,
		cfg.PipelineWorkers,
	)

	_, err = refresh.Run(ctx)
	return err
}
