// Package module holds the per-board scrapers and the orchestrator
// that fans them out.
package module

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/project-tktt/go-jobmarket/internal/domain"
)

// Scraper is the common interface for all job board scrapers
type Scraper interface {
	// Scrape fetches raw job postings matching the search query
	Scrape(ctx context.Context, query string) ([]*domain.RawJob, error)
	// Platform returns the board identifier
	Platform() string
}

// Result summarizes one scraper's run
type Result struct {
	Platform string
	Jobs     []*domain.RawJob
	Err      error
	Elapsed  time.Duration
}

// RunAll runs every scraper concurrently and collects per-platform
// results. A failing scraper does not stop the others.
func RunAll(ctx context.Context, scrapers []Scraper, query string) []Result {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []Result
	)

	for _, s := range scrapers {
		wg.Add(1)
		go func(s Scraper) {
			defer wg.Done()

			start := time.Now()
			jobs, err := s.Scrape(ctx, query)
			elapsed := time.Since(start)

			if err != nil {
				log.Printf("[Scraper] %s failed after %s: %v", s.Platform(), elapsed.Round(time.Millisecond), err)
			} else {
				log.Printf("[Scraper] %s returned %d jobs in %s", s.Platform(), len(jobs), elapsed.Round(time.Millisecond))
			}

			mu.Lock()
			results = append(results, Result{
				Platform: s.Platform(),
				Jobs:     jobs,
				Err:      err,
				Elapsed:  elapsed,
			})
			mu.Unlock()
		}(s)
	}

	wg.Wait()
	return results
}

// CollectJobs flattens scraper results into one batch
func CollectJobs(results []Result) []*domain.RawJob {
	var all []*domain.RawJob
	for _, r := range results {
		all = append(all, r.Jobs...)
	}
	return all
}
