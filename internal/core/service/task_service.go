package service

import (
	"context"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

// TaskStatusService reports the state of background jobs by task id.
type TaskStatusService struct {
	queue ports.JobQueue
}

func NewTaskStatusService(queue ports.JobQueue) *TaskStatusService {
	return &TaskStatusService{queue: queue}
}

// GetTaskStatus polls the job runner for the task's current state.
func (s *TaskStatusService) GetTaskStatus(ctx context.Context, taskID string) (*domain.TaskStatus, error) {
	if taskID == "" {
		return nil, domain.NewMissingArgumentError("Task id is required.")
	}
	return s.queue.Status(ctx, taskID)
}
