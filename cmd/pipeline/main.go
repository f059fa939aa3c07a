package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/project-tktt/go-jobmarket/internal/common/dedup"
	"github.com/project-tktt/go-jobmarket/internal/config"
	"github.com/project-tktt/go-jobmarket/internal/domain"
	"github.com/project-tktt/go-jobmarket/internal/module"
	"github.com/project-tktt/go-jobmarket/internal/module/careerviet"
	"github.com/project-tktt/go-jobmarket/internal/module/mock"
	"github.com/project-tktt/go-jobmarket/internal/queue"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Job Pipeline Service")

	// .env is optional; deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Redis client
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Test Redis connection
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	log.Println("Redis connected")

	// Initialize components
	deduplicator := dedup.NewDeduplicator(rdb, cfg.Redis.DedupPrefix, cfg.Redis.DedupTTL)
	publisher := queue.NewPublisher(rdb, cfg.Redis.JobQueue)

	scrapers := buildScrapers(cfg)
	if len(scrapers) == 0 {
		log.Fatalf("No scrapers configured (PIPELINE_PLATFORMS=%v)", cfg.Pipeline.Platforms)
	}

	run := func() {
		runPipeline(ctx, cfg, scrapers, deduplicator, publisher)
	}

	// One-shot mode unless a cron spec is configured
	if cfg.Pipeline.CronSpec == "" {
		run()
		log.Println("Pipeline run complete")
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.Pipeline.CronSpec, run); err != nil {
		log.Fatalf("Invalid PIPELINE_CRON %q: %v", cfg.Pipeline.CronSpec, err)
	}
	c.Start()
	log.Printf("Pipeline scheduled with cron spec %q", cfg.Pipeline.CronSpec)

	// Run immediately on startup as well
	run()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("Shutdown signal received, stopping...")
	cancel()

	select {
	case <-c.Stop().Done():
		log.Println("Graceful shutdown complete")
	case <-time.After(30 * time.Second):
		log.Println("Shutdown timeout, forcing exit")
	}
}

func buildScrapers(cfg *config.Config) []module.Scraper {
	var scrapers []module.Scraper
	for _, platform := range cfg.Pipeline.Platforms {
		switch platform {
		case domain.PlatformCareerViet:
			scrapers = append(scrapers, careerviet.New(careerviet.Config{
				MaxPages:     cfg.Pipeline.MaxPages,
				RequestDelay: cfg.Pipeline.RequestDelay,
				UserAgent:    cfg.Pipeline.UserAgent,
			}))
		case domain.PlatformMock:
			scrapers = append(scrapers, mock.New())
		default:
			log.Printf("Unknown platform %q, skipping", platform)
		}
	}
	return scrapers
}

// runPipeline fans out the scrapers, drops already-seen URLs and pushes
// the new raw jobs onto the queue for the transform workers.
func runPipeline(ctx context.Context, cfg *config.Config, scrapers []module.Scraper, deduplicator *dedup.Deduplicator, publisher *queue.Publisher) {
	log.Printf("Running %d scrapers for query %q", len(scrapers), cfg.Pipeline.Query)

	results := module.RunAll(ctx, scrapers, cfg.Pipeline.Query)
	raws := module.CollectJobs(results)

	fresh := deduplicator.FilterNew(ctx, raws)
	log.Printf("Collected %d jobs, %d new after dedup", len(raws), len(fresh))
	if len(fresh) == 0 {
		return
	}

	if err := publisher.PublishBatch(ctx, fresh); err != nil {
		log.Printf("Publish error: %v", err)
		return
	}

	for _, raw := range fresh {
		if err := deduplicator.MarkSeen(ctx, raw.Platform, raw.JobURL); err != nil {
			log.Printf("Mark seen error: %v", err)
		}
	}

	if n, err := publisher.QueueLength(ctx); err == nil {
		log.Printf("Queue length now %d", n)
	}
}
