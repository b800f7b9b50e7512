// Package queue implements the background job runner. Jobs submitted over
// the API are pushed onto a buffered channel and drained by a fixed pool of
// workers; terminal statuses land in the task status store so they can be
// polled across processes.
package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cityhousing/housing-units-api/internal/api/metrics"
	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

type queuedJob struct {
	taskID string
	job    ports.Job
}

// Runner is a channel-backed job queue. It satisfies ports.JobQueue.
type Runner struct {
	jobs       chan queuedJob
	store      ports.TaskStatusStore
	log        zerolog.Logger
	numWorkers int
}

// NewRunner creates a Runner draining into numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewRunner(numWorkers int, store ports.TaskStatusStore, log zerolog.Logger) *Runner {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Runner{
		jobs:       make(chan queuedJob, channelBuffer),
		store:      store,
		log:        log,
		numWorkers: numWorkers,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled;
// a job already running finishes first.
func (r *Runner) Start(ctx context.Context) {
	for i := 0; i < r.numWorkers; i++ {
		go r.runWorker(ctx, i)
	}
}

// Submit registers the job as pending and hands it to the worker pool. The
// returned task id can be polled immediately.
func (r *Runner) Submit(ctx context.Context, job ports.Job) (string, error) {
	taskID := uuid.NewString()

	status := &domain.TaskStatus{TaskID: taskID, TaskStatus: domain.TaskPending}
	if err := r.store.Set(ctx, status); err != nil {
		return "", fmt.Errorf("register task: %w", err)
	}

	select {
	case r.jobs <- queuedJob{taskID: taskID, job: job}:
		metrics.JobsQueueDepth.Inc()
	default:
		status.TaskStatus = domain.TaskFailed
		status.TaskResult = "The job queue is full."
		_ = r.store.Set(ctx, status)
		return "", fmt.Errorf("job queue full")
	}

	return taskID, nil
}

// Status returns the stored status for a task id.
func (r *Runner) Status(ctx context.Context, taskID string) (*domain.TaskStatus, error) {
	status, err := r.store.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, domain.NewNotFoundError("The task does not exist.")
	}
	return status, nil
}

func (r *Runner) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case queued, ok := <-r.jobs:
			if !ok {
				return
			}
			metrics.JobsQueueDepth.Dec()
			r.execute(ctx, id, queued)
		}
	}
}

func (r *Runner) execute(ctx context.Context, workerID int, queued queuedJob) {
	_ = r.store.Set(ctx, &domain.TaskStatus{TaskID: queued.taskID, TaskStatus: domain.TaskRunning})

	start := time.Now()
	result, err := queued.job(ctx)

	status := &domain.TaskStatus{TaskID: queued.taskID, TaskStatus: domain.TaskSucceeded, TaskResult: result}
	outcome := "succeeded"
	if err != nil {
		status.TaskStatus = domain.TaskFailed
		status.TaskResult = err.Error()
		outcome = "failed"
		r.log.Error().Err(err).
			Str("task_id", queued.taskID).
			Int("worker_id", workerID).
			Msg("background job failed")
	} else {
		r.log.Info().
			Str("task_id", queued.taskID).
			Int("worker_id", workerID).
			Dur("elapsed", time.Since(start)).
			Msg("background job finished")
	}

	metrics.JobDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	if err := r.store.Set(ctx, status); err != nil {
		r.log.Error().Err(err).Str("task_id", queued.taskID).Msg("failed to store task status")
	}
}

var _ ports.JobQueue = (*Runner)(nil)
