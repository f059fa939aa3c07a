package loader

import (
	"context"

	"github.com/project-tktt/go-jobmarket/internal/domain"
)

// Loader defines the interface for persistence backends
type Loader interface {
	// LoadBatch persists multiple normalized jobs at once
	LoadBatch(ctx context.Context, jobs []*domain.Job) error
}
