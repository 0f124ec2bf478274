package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lexcore/internal/config"
	"github.com/heartmarshall/lexcore/pkg/ctxutil"
)

// Runtime bundles what every command needs after startup.
type Runtime struct {
	Config *config.Config
	Logger *slog.Logger
	RunID  uuid.UUID
}

// Bootstrap is the shared command entry point. It loads configuration from
// configPath, applies command-line overrides, re-validates, initializes the
// logger, and tags the context and logger with a fresh run ID.
func Bootstrap(ctx context.Context, job, configPath string, override func(*config.Config)) (context.Context, *Runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return ctx, nil, err
	}

	if override != nil {
		override(cfg)
		if err := cfg.Validate(); err != nil {
			return ctx, nil, fmt.Errorf("config: validate flags: %w", err)
		}
	}

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	ctx = ctxutil.WithJob(ctx, job)

	logger := WithRunContext(ctx, NewLogger(cfg.Log))
	logger.Info("starting",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	return ctx, &Runtime{Config: cfg, Logger: logger, RunID: runID}, nil
}
