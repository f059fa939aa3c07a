package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeReturnsCompleteSamples(t *testing.T) {
	s := New()

	jobs, err := s.Scrape(context.Background(), "data analyst")
	require.NoError(t, err)
	require.Len(t, jobs, 8)

	seen := make(map[string]bool)
	for _, job := range jobs {
		assert.True(t, job.Complete(), "sample %s incomplete", job.JobURL)
		assert.False(t, job.ScrapedAt.IsZero())
		assert.False(t, seen[job.JobURL], "duplicate url %s", job.JobURL)
		seen[job.JobURL] = true
	}
}
