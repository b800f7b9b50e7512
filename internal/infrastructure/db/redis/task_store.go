package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

const taskTTL = 24 * time.Hour

// TaskStatusStore persists background task statuses in Redis.
// Key format: task:<task_id>
type TaskStatusStore struct {
	client *redis.Client
}

// NewTaskStatusStore creates a TaskStatusStore wrapping the given Redis client.
func NewTaskStatusStore(client *redis.Client) *TaskStatusStore {
	return &TaskStatusStore{client: client}
}

// Set writes the status snapshot for a task. Entries expire after taskTTL.
func (s *TaskStatusStore) Set(ctx context.Context, status *domain.TaskStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("task status marshal: %w", err)
	}
	return s.client.Set(ctx, s.key(status.TaskID), payload, taskTTL).Err()
}

// Get returns the status for a task id, or (nil, nil) when unknown or expired.
func (s *TaskStatusStore) Get(ctx context.Context, taskID string) (*domain.TaskStatus, error) {
	payload, err := s.client.Get(ctx, s.key(taskID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("task status get: %w", err)
	}

	var status domain.TaskStatus
	if err := json.Unmarshal(payload, &status); err != nil {
		return nil, fmt.Errorf("task status unmarshal: %w", err)
	}
	return &status, nil
}

func (s *TaskStatusStore) key(taskID string) string {
	return fmt.Sprintf("task:%s", taskID)
}
