// Package worker runs the queue-driven half of the pipeline: raw jobs
// pushed to Redis by scrapers are transformed and loaded in batches.
package worker

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/project-tktt/go-jobmarket/internal/common/loader"
	"github.com/project-tktt/go-jobmarket/internal/nlp"
	"github.com/project-tktt/go-jobmarket/internal/queue"
	"github.com/project-tktt/go-jobmarket/internal/transform"
)

// Worker consumes raw jobs from the queue, transforms them and loads
// the results.
type Worker struct {
	consumer *queue.Consumer
	filter   *nlp.RelevanceFilter
	loaders  []loader.Loader
	query    string

	batchSize   int
	concurrency int
}

// Config holds worker configuration
type Config struct {
	Concurrency int
	BatchSize   int
	// Query drives relevance filtering; empty disables it
	Query string
}

// NewWorker creates a new worker
func NewWorker(consumer *queue.Consumer, filter *nlp.RelevanceFilter, loaders []loader.Loader, cfg Config) *Worker {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}

	return &Worker{
		consumer:    consumer,
		filter:      filter,
		loaders:     loaders,
		query:       cfg.Query,
		batchSize:   cfg.BatchSize,
		concurrency: cfg.Concurrency,
	}
}

// Run starts the worker pool
func (w *Worker) Run(ctx context.Context) error {
	log.Printf("[Worker] Starting pool with %d workers", w.concurrency)

	var wg sync.WaitGroup
	errChan := make(chan error, w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			if err := w.runSingle(ctx, workerID); err != nil {
				errChan <- fmt.Errorf("worker %d: %w", workerID, err)
			}
		}(i)
	}

	// Wait for all workers or context cancellation
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errChan:
		return err
	case <-done:
		return nil
	}
}

func (w *Worker) runSingle(ctx context.Context, workerID int) error {
	log.Printf("[Worker] Worker %d started", workerID)

	// Each worker owns a transformer so the batch statistics never see
	// concurrent writers.
	transformer := transform.New(w.filter)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[Worker] Worker %d stopping", workerID)
			return nil
		default:
		}

		// ConsumeBatch uses BRPOP for the first item, so no CPU spinning
		rawJobs, err := w.consumer.ConsumeBatch(ctx, w.batchSize)
		if err != nil {
			log.Printf("[Worker] Worker %d consume error: %v", workerID, err)
			continue
		}

		if len(rawJobs) == 0 {
			continue // Timeout from BRPOP, try again
		}

		log.Printf("[Worker] Worker %d processing %d jobs", workerID, len(rawJobs))

		jobs, stats := transformer.TransformBatch(ctx, rawJobs, w.query)
		if len(jobs) == 0 {
			continue
		}

		for _, l := range w.loaders {
			if err := l.LoadBatch(ctx, jobs); err != nil {
				log.Printf("[Worker] Worker %d load error: %v", workerID, err)
			}
		}

		log.Printf("[Worker] Worker %d batch done, running stats: %v", workerID, stats)
	}
}
