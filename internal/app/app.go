package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kvoronov/metric_etl/internal/config"
	"github.com/kvoronov/metric_etl/internal/load"
	"github.com/kvoronov/metric_etl/internal/logging"
	"github.com/kvoronov/metric_etl/internal/pipeline"
)

type App struct {
	cfg *config.Config
}

func New(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Run executes one batch and returns an error only for faults outside any
// single file's control: an unreadable input directory, an unusable log
// sink, or a failed load.
func (a *App) Run(ctx context.Context) error {
	sink, err := logging.NewSink(a.cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to create log sink: %w", err)
	}
	defer sink.Close()

	log := slog.New(sink)

	log.InfoContext(ctx, "pipeline started",
		slog.String("input_dir", a.cfg.InputDirectory),
		slog.String("output_file", a.cfg.OutputFile),
	)

	loader := load.NewLoader(log, a.cfg.OutputFile)
	orchestrator := pipeline.NewOrchestrator(log, a.cfg.InputDirectory, loader)

	if err := orchestrator.Run(ctx); err != nil {
		log.ErrorContext(ctx, "pipeline failed", slog.String("err", err.Error()))
		return err
	}

	log.InfoContext(ctx, "pipeline completed")

	return nil
}
