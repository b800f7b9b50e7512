package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
)

func waitForTerminal(t *testing.T, r *Runner, taskID string) *domain.TaskStatus {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("job did not reach a terminal state in time")
		case <-time.After(5 * time.Millisecond):
		}
		status, err := r.Status(context.Background(), taskID)
		if err != nil {
			t.Fatalf("status: %v", err)
		}
		if status.TaskStatus == domain.TaskSucceeded || status.TaskStatus == domain.TaskFailed {
			return status
		}
	}
}

func TestRunner_SubmitAndComplete(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRunner(2, NewMemoryStatusStore(), zerolog.Nop())
	r.Start(ctx)

	taskID, err := r.Submit(ctx, func(context.Context) (string, error) {
		return "Number of rows inserted: 7.", nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if taskID == "" {
		t.Fatal("expected a task id")
	}

	status := waitForTerminal(t, r, taskID)
	if status.TaskStatus != domain.TaskSucceeded {
		t.Errorf("expected succeeded, got %s", status.TaskStatus)
	}
	if status.TaskResult != "Number of rows inserted: 7." {
		t.Errorf("unexpected result: %q", status.TaskResult)
	}
}

func TestRunner_FailedJobRecordsError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRunner(1, NewMemoryStatusStore(), zerolog.Nop())
	r.Start(ctx)

	taskID, err := r.Submit(ctx, func(context.Context) (string, error) {
		return "", errors.New("dataset unavailable")
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	status := waitForTerminal(t, r, taskID)
	if status.TaskStatus != domain.TaskFailed {
		t.Errorf("expected failed, got %s", status.TaskStatus)
	}
	if status.TaskResult != "dataset unavailable" {
		t.Errorf("unexpected result: %q", status.TaskResult)
	}
}

func TestRunner_SubmitReturnsBeforeJobFinishes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	release := make(chan struct{})
	r := NewRunner(1, NewMemoryStatusStore(), zerolog.Nop())
	r.Start(ctx)

	taskID, err := r.Submit(ctx, func(context.Context) (string, error) {
		<-release
		return "done", nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// While the job is blocked the status must be pending or running.
	status, err := r.Status(ctx, taskID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.TaskStatus == domain.TaskSucceeded || status.TaskStatus == domain.TaskFailed {
		t.Errorf("job should not be terminal yet, got %s", status.TaskStatus)
	}

	close(release)
	if got := waitForTerminal(t, r, taskID); got.TaskStatus != domain.TaskSucceeded {
		t.Errorf("expected succeeded, got %s", got.TaskStatus)
	}
}

func TestRunner_UnknownTaskID(t *testing.T) {
	r := NewRunner(1, NewMemoryStatusStore(), zerolog.Nop())

	_, err := r.Status(context.Background(), "no-such-task")
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != domain.KindNotFound {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRunner_JobsRunConcurrently(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := NewRunner(4, NewMemoryStatusStore(), zerolog.Nop())
	r.Start(ctx)

	var ids []string
	for i := 0; i < 8; i++ {
		taskID, err := r.Submit(ctx, func(context.Context) (string, error) {
			time.Sleep(10 * time.Millisecond)
			return "ok", nil
		})
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		ids = append(ids, taskID)
	}

	for _, id := range ids {
		if got := waitForTerminal(t, r, id); got.TaskStatus != domain.TaskSucceeded {
			t.Errorf("task %s: expected succeeded, got %s", id, got.TaskStatus)
		}
	}
}
