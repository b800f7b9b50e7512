package ports

import (
	"context"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

// IngestionService triggers the dataset ingestion pipeline as a background
// job and reports its initial status.
type IngestionService interface {
	Apply(ctx context.Context, datasetID string, resetTable bool) (*domain.TaskStatus, error)
}

// TaskStatusService reports background job state by task id.
type TaskStatusService interface {
	GetTaskStatus(ctx context.Context, taskID string) (*domain.TaskStatus, error)
}

// UserService exposes the read-only user listing.
type UserService interface {
	GetActiveUsers(ctx context.Context) ([]*domain.User, error)
}
