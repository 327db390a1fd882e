package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
}

func (f *fakeProcessor) ProcessJob(_ context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, jobID)
	return jobID, nil
}

func (f *fakeProcessor) processed() []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]uuid.UUID(nil), f.seen...)
}

func TestProcessorQueueProcessesAllJobs(t *testing.T) {
	proc := &fakeProcessor{}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(2), WithQueueSize(8))

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, q.Enqueue(context.Background(), Job{JobID: ids[i], SubmittedAt: time.Now()}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	assert.ElementsMatch(t, ids, proc.processed())
}

func TestProcessorQueueRejectsAfterShutdown(t *testing.T) {
	proc := &fakeProcessor{}
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
	// Enqueue after close must not panic or block.
	assert.NoError(t, q.Enqueue(context.Background(), Job{JobID: uuid.New()}))
	assert.Empty(t, proc.processed())

	// Second shutdown is a no-op.
	q.Shutdown(ctx)
}
