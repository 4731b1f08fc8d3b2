package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/VNikhitha31/Cross-Lingual-Sentiment-Analysis-Service/internal/models"
)

// OrchestratorConfig controls batch execution. The zero value reproduces the
// reference behavior: one worker, no timeouts beyond the adapters' own.
type OrchestratorConfig struct {
	// Workers bounds concurrent item processing. Values below 1 mean
	// sequential.
	Workers int
	// ItemTimeout bounds each item's translate+classify span. Zero disables.
	ItemTimeout time.Duration
	// BatchTimeout bounds the whole batch. Zero disables. Items that never
	// started count as failures, not as dropped work in flight.
	BatchTimeout time.Duration
}

// Orchestrator runs the item pipeline over an ordered sequence of texts.
// The batch is best-effort: one item failing never fails the batch.
type Orchestrator struct {
	pipeline *Pipeline
	cfg      OrchestratorConfig
}

func NewOrchestrator(p *Pipeline, cfg OrchestratorConfig) *Orchestrator {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Orchestrator{pipeline: p, cfg: cfg}
}

type itemOutcome struct {
	result models.SentimentResult
	err    error
}

// ProcessBatch processes every item and aggregates the survivors. Surviving
// results keep their input order regardless of worker count; failed items are
// omitted from Results and recorded in Failures with the stage that failed.
func (o *Orchestrator) ProcessBatch(ctx context.Context, items []models.SentimentRequestItem) models.BatchResult {
	start := time.Now()

	if o.cfg.BatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.BatchTimeout)
		defer cancel()
	}

	outcomes := make([]itemOutcome, len(items))

	workers := o.cfg.Workers
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = o.processItem(ctx, items[idx])
			}
		}()
	}

	for idx := range items {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	batch := models.BatchResult{Results: []models.SentimentResult{}}
	for idx, outcome := range outcomes {
		if outcome.err != nil {
			slog.Error("[BatchOrchestrator] Error processing text",
				slog.Int("index", idx),
				slog.String("error", outcome.err.Error()))
			batch.Failures = append(batch.Failures, models.ItemFailure{
				Index:  idx,
				Text:   items[idx].Text,
				Reason: string(KindOf(outcome.err)),
			})
			continue
		}
		batch.Results = append(batch.Results, outcome.result)
	}

	batch.TotalProcessed = len(batch.Results)
	elapsed := time.Since(start).Seconds() * 1000
	if elapsed < 0 {
		elapsed = 0
	}
	batch.ProcessingTimeMs = roundTo(elapsed, 2)

	slog.Info("[BatchOrchestrator] Batch complete",
		slog.Int("requested", len(items)),
		slog.Int("processed", batch.TotalProcessed),
		slog.Int("failed", len(batch.Failures)),
		slog.Float64("elapsed_ms", batch.ProcessingTimeMs))

	return batch
}

func (o *Orchestrator) processItem(ctx context.Context, item models.SentimentRequestItem) itemOutcome {
	if o.cfg.ItemTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.ItemTimeout)
		defer cancel()
	}

	result, err := o.pipeline.Process(ctx, item)
	return itemOutcome{result: result, err: err}
}
