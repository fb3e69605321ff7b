// Package pipeline orchestrates discovery, concurrent per-file extraction,
// aggregation, transform and load.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kvoronov/metric_etl/internal/domain"
	"github.com/kvoronov/metric_etl/internal/extract"
	"github.com/kvoronov/metric_etl/internal/transform"
	"golang.org/x/sync/errgroup"
)

type Orchestrator struct {
	log      *slog.Logger
	inputDir string
	loader   TableLoader
}

func NewOrchestrator(log *slog.Logger, inputDir string, loader TableLoader) *Orchestrator {
	return &Orchestrator{
		log:      log,
		inputDir: inputDir,
		loader:   loader,
	}
}

// Run executes one batch. Per-file failures are logged and excluded from
// the output; only discovery and load errors are returned.
func (o *Orchestrator) Run(ctx context.Context) error {
	descs, err := Discover(o.log, o.inputDir)
	if err != nil {
		return err
	}

	o.log.InfoContext(ctx, "discovery completed", slog.Int("file_count", len(descs)))

	table := o.aggregate(ctx, o.extractAll(ctx, descs))

	o.log.InfoContext(ctx, "transform started", slog.Int("row_count", table.NumRows()))
	table = transform.Apply(table)
	o.log.InfoContext(ctx, "transform completed", slog.Int("row_count", table.NumRows()))

	o.log.InfoContext(ctx, "load started")
	if err := o.loader.Load(table); err != nil {
		return fmt.Errorf("failed to load table: %w", err)
	}
	o.log.InfoContext(ctx, "load completed")

	return nil
}

// extractAll dispatches one task per descriptor and blocks until every task
// has reported. Failures come back as data in the results, never as a group
// error, so no file can abort its siblings.
func (o *Orchestrator) extractAll(ctx context.Context, descs []domain.FileDescriptor) []domain.TaskResult {
	results := make([]domain.TaskResult, len(descs))

	g, ctx := errgroup.WithContext(ctx)
	for i, desc := range descs {
		g.Go(func() error {
			results[i] = o.extractOne(ctx, desc)
			return nil
		})
	}

	// The one hard barrier: aggregation must not start before the last
	// task, failed ones included, has reported.
	_ = g.Wait()

	return results
}

func (o *Orchestrator) extractOne(ctx context.Context, desc domain.FileDescriptor) (result domain.TaskResult) {
	result.Desc = desc

	defer func() {
		if r := recover(); r != nil {
			result.Table = nil
			result.Err = fmt.Errorf("task panicked: %v", r)
		}
		if result.Err != nil {
			o.log.ErrorContext(ctx, "extraction failed",
				slog.String("path", desc.Path),
				slog.String("err", result.Err.Error()),
			)
		}
	}()

	o.log.InfoContext(ctx, "extraction started", slog.String("path", desc.Path))

	extractor, err := extract.Resolve(desc.Ext)
	if err != nil {
		result.Err = err
		return result
	}

	table, err := extractor.Extract(desc.Path)
	if err != nil {
		result.Err = err
		return result
	}

	o.log.InfoContext(ctx, "extraction completed",
		slog.String("path", desc.Path),
		slog.Int("row_count", table.NumRows()),
	)

	result.Table = table

	return result
}

// aggregate drops failures (already logged at the task boundary) and
// concatenates the remaining tables, unioning their column sets. Results
// are indexed by discovery order, so rows stay grouped by source path no
// matter which task finished first.
func (o *Orchestrator) aggregate(ctx context.Context, results []domain.TaskResult) *domain.Table {
	tables := make([]*domain.Table, 0, len(results))

	failed := 0
	for _, result := range results {
		if result.Failed() {
			failed++
			continue
		}
		tables = append(tables, result.Table)
	}

	table := domain.Concat(tables...)

	o.log.InfoContext(ctx, "aggregation completed",
		slog.Int("succeeded", len(tables)),
		slog.Int("failed", failed),
		slog.Int("row_count", table.NumRows()),
	)

	return table
}
