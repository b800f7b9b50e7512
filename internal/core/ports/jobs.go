package ports

import (
	"context"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

// Job is a unit of background work. It returns a human-readable result on
// success. Once started a job cannot be cancelled.
type Job func(ctx context.Context) (string, error)

// JobQueue is the asynchronous job runner: submit returns immediately with
// a task id; progress is observed by polling Status.
type JobQueue interface {
	Submit(ctx context.Context, job Job) (string, error)
	// Status returns a NotFoundError for an unknown task id.
	Status(ctx context.Context, taskID string) (*domain.TaskStatus, error)
}

// TaskStatusStore persists job statuses so they can be polled across
// processes. Backed by Redis in production.
type TaskStatusStore interface {
	Set(ctx context.Context, status *domain.TaskStatus) error
	// Get returns nil (no error) for an unknown task id.
	Get(ctx context.Context, taskID string) (*domain.TaskStatus, error)
}
