// Package dedup tracks which job URLs have already been scraped, using
// Redis keys with a TTL so postings can be picked up again after they
// cycle off the boards.
package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/project-tktt/go-jobmarket/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Deduplicator checks and marks seen job URLs in Redis.
type Deduplicator struct {
	client     *redis.Client
	prefix     string
	defaultTTL time.Duration
}

// NewDeduplicator creates a new Redis-based deduplicator
func NewDeduplicator(client *redis.Client, prefix string, defaultTTL time.Duration) *Deduplicator {
	if prefix == "" {
		prefix = "dedup"
	}
	if defaultTTL == 0 {
		defaultTTL = 24 * time.Hour * 30 // 30 days default
	}
	return &Deduplicator{
		client:     client,
		prefix:     prefix,
		defaultTTL: defaultTTL,
	}
}

// IsSeen reports whether a job URL has been scraped before
func (d *Deduplicator) IsSeen(ctx context.Context, platform, jobURL string) (bool, error) {
	exists, err := d.client.Exists(ctx, d.makeKey(platform, jobURL)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return exists > 0, nil
}

// MarkSeen records a job URL as scraped with the default TTL
func (d *Deduplicator) MarkSeen(ctx context.Context, platform, jobURL string) error {
	err := d.client.Set(ctx, d.makeKey(platform, jobURL), time.Now().Unix(), d.defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// FilterNew returns only the raw jobs whose URLs have not been seen.
// Redis errors fail open: the job is kept rather than dropped, since
// the loader upserts and a duplicate costs nothing.
func (d *Deduplicator) FilterNew(ctx context.Context, raws []*domain.RawJob) []*domain.RawJob {
	fresh := make([]*domain.RawJob, 0, len(raws))
	for _, raw := range raws {
		seen, err := d.IsSeen(ctx, raw.Platform, raw.JobURL)
		if err != nil {
			fresh = append(fresh, raw)
			continue
		}
		if !seen {
			fresh = append(fresh, raw)
		}
	}
	return fresh
}

func (d *Deduplicator) makeKey(platform, jobURL string) string {
	return fmt.Sprintf("%s:%s:%s", d.prefix, platform, d.hashURL(jobURL))
}

func (d *Deduplicator) hashURL(jobURL string) string {
	h := sha256.Sum256([]byte(jobURL))
	return hex.EncodeToString(h[:16]) // First 16 bytes (32 hex chars)
}
