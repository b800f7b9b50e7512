package queue

import (
	"context"
	"sync"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

// MemoryStatusStore is an in-process task status store. It backs the runner
// in tests and in deployments without Redis; statuses do not survive a
// restart.
type MemoryStatusStore struct {
	mu       sync.RWMutex
	statuses map[string]domain.TaskStatus
}

func NewMemoryStatusStore() *MemoryStatusStore {
	return &MemoryStatusStore{statuses: make(map[string]domain.TaskStatus)}
}

func (s *MemoryStatusStore) Set(_ context.Context, status *domain.TaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[status.TaskID] = *status
	return nil
}

func (s *MemoryStatusStore) Get(_ context.Context, taskID string) (*domain.TaskStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status, ok := s.statuses[taskID]
	if !ok {
		return nil, nil
	}
	return &status, nil
}
