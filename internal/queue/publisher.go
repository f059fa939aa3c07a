package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/project-tktt/go-jobmarket/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Publisher pushes raw scraped jobs onto the Redis queue for the
// transform workers.
type Publisher struct {
	client    *redis.Client
	queueName string
}

// NewPublisher creates a new queue publisher
func NewPublisher(client *redis.Client, queueName string) *Publisher {
	if queueName == "" {
		queueName = "jobs:raw"
	}
	return &Publisher{
		client:    client,
		queueName: queueName,
	}
}

// Publish pushes a single raw job to the queue
func (p *Publisher) Publish(ctx context.Context, job *domain.RawJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	if err := p.client.LPush(ctx, p.queueName, data).Err(); err != nil {
		return fmt.Errorf("lpush: %w", err)
	}

	return nil
}

// PublishBatch pushes multiple raw jobs to the queue in one pipeline
func (p *Publisher) PublishBatch(ctx context.Context, jobs []*domain.RawJob) error {
	if len(jobs) == 0 {
		return nil
	}

	pipe := p.client.Pipeline()
	for _, job := range jobs {
		data, err := json.Marshal(job)
		if err != nil {
			return fmt.Errorf("marshal job: %w", err)
		}
		pipe.LPush(ctx, p.queueName, data)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("pipeline exec: %w", err)
	}

	return nil
}

// QueueLength returns the current queue length
func (p *Publisher) QueueLength(ctx context.Context) (int64, error) {
	return p.client.LLen(ctx, p.queueName).Result()
}
