package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (retry, priority, etc).
type Job struct {
	JobID       uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// JobProcessor is what workers run for each dequeued job.
type JobProcessor interface {
	ProcessJob(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error)
}
