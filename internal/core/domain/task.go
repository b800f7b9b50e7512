package domain

// TaskState is the lifecycle state of a background job.
type TaskState string

const (
	TaskPending   TaskState = "pending"
	TaskRunning   TaskState = "running"
	TaskSucceeded TaskState = "succeeded"
	TaskFailed    TaskState = "failed"
)

// TaskStatus is an ephemeral view of a background job. It mirrors the job
// runner's own state and is never persisted by this system beyond the
// status store's TTL.
type TaskStatus struct {
	TaskID     string    `json:"task_id"`
	TaskStatus TaskState `json:"task_status"`
	// TaskResult carries the success payload (a human-readable row count for
	// ingestion jobs) or the failure message.
	TaskResult string `json:"task_result,omitempty"`
}
