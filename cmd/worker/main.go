package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/project-tktt/go-jobmarket/internal/common/loader"
	"github.com/project-tktt/go-jobmarket/internal/config"
	"github.com/project-tktt/go-jobmarket/internal/module/worker"
	"github.com/project-tktt/go-jobmarket/internal/nlp"
	"github.com/project-tktt/go-jobmarket/internal/queue"
	"github.com/redis/go-redis/v9"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Job Worker Service")

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

	// Initialize PostgreSQL loader
	pgLoader, err := loader.NewPostgresLoader(cfg.Postgres.ConnectionString)
	if err != nil {
		log.Fatalf("PostgreSQL connection failed: %v", err)
	}
	defer pgLoader.Close()
	log.Println("PostgreSQL connected")

	loaders := []loader.Loader{pgLoader}

	// Elasticsearch is a secondary sink; the pipeline runs without it
	esLoader, err := loader.NewElasticsearchLoader(cfg.Elasticsearch.Addresses, cfg.Elasticsearch.Index)
	if err != nil {
		log.Printf("Warning: Elasticsearch unavailable, skipping search indexing: %v", err)
	} else {
		log.Printf("Elasticsearch connected, index: %s", cfg.Elasticsearch.Index)
		if err := esLoader.EnsureIndex(ctx); err != nil {
			log.Printf("Warning: Failed to ensure index: %v", err)
		}
		loaders = append(loaders, esLoader)
	}

	// Relevance filter degrades to keyword matching without an API key
	filter := nlp.NewFilter(ctx, cfg.NLP.APIKey, cfg.NLP.Model, cfg.NLP.Threshold)

	query := cfg.Pipeline.Query
	if !cfg.NLP.Enabled {
		query = "" // empty query disables relevance filtering
	}

	consumer := queue.NewConsumer(rdb, cfg.Redis.JobQueue, 5*time.Second)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	// Start worker pool (queue -> transform -> load)
	wg.Add(1)
	go func() {
		defer wg.Done()
		w := worker.NewWorker(consumer, filter, loaders, worker.Config{
			Concurrency: cfg.Worker.Concurrency,
			BatchSize:   cfg.Worker.BatchSize,
			Query:       query,
		})
		if err := w.Run(ctx); err != nil && err != context.Canceled {
			log.Printf("Worker error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutdown signal received, stopping...")
	cancel()

	// Wait for goroutines to finish
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("Graceful shutdown complete")
	case <-time.After(30 * time.Second):
		log.Println("Shutdown timeout, forcing exit")
	}
}
