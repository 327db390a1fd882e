package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapreceipt/receiptd/constants"
	"github.com/snapreceipt/receiptd/internal/entity"
	"github.com/snapreceipt/receiptd/internal/extract"
	"github.com/snapreceipt/receiptd/internal/fields"
	"github.com/snapreceipt/receiptd/internal/repository"
)

type fakeJobsRepo struct {
	jobs map[uuid.UUID]*entity.ExtractJob
}

func newFakeJobsRepo() *fakeJobsRepo {
	return &fakeJobsRepo{jobs: map[uuid.UUID]*entity.ExtractJob{}}
}

func (f *fakeJobsRepo) Create(_ context.Context, rawText string) (*entity.ExtractJob, error) {
	job := &entity.ExtractJob{ID: uuid.New(), RawText: rawText, Status: string(constants.JobStatusQueued)}
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeJobsRepo) GetByID(_ context.Context, jobID uuid.UUID) (*entity.ExtractJob, error) {
	job, ok := f.jobs[jobID]
	if !ok {
		return nil, errors.New("job not found")
	}
	cp := *job
	return &cp, nil
}

func (f *fakeJobsRepo) MarkRunning(_ context.Context, jobID uuid.UUID) error {
	f.jobs[jobID].Status = string(constants.JobStatusRunning)
	return nil
}

func (f *fakeJobsRepo) FinishSuccess(_ context.Context, jobID, receiptID uuid.UUID) error {
	f.jobs[jobID].Status = string(constants.JobStatusParsed)
	f.jobs[jobID].ReceiptID = &receiptID
	return nil
}

func (f *fakeJobsRepo) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	f.jobs[jobID].Status = string(constants.JobStatusFailed)
	f.jobs[jobID].ErrorMessage = &message
	return nil
}

type fakeReceiptsRepo struct {
	saved   []*entity.Receipt
	saveErr error
}

func (f *fakeReceiptsRepo) SaveFromFields(_ context.Context, data fields.ReceiptData, isValid bool) (*entity.Receipt, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	rec := &entity.Receipt{
		ID:      uuid.New(),
		Vendor:  data.Vendor,
		TxDate:  data.Date,
		Total:   data.Total,
		IsValid: isValid,
		RawText: data.RawText,
	}
	f.saved = append(f.saved, rec)
	return rec, nil
}

func (f *fakeReceiptsRepo) GetByID(context.Context, uuid.UUID) (*entity.Receipt, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeReceiptsRepo) ListReceipts(context.Context, repository.ListFilter) ([]*entity.Receipt, error) {
	return f.saved, nil
}

type failingExtractor struct{}

func (failingExtractor) ExtractFields(context.Context, string) (fields.ReceiptData, error) {
	return fields.ReceiptData{}, errors.New("boom")
}

func TestParseStageRun(t *testing.T) {
	ctx := context.Background()

	t.Run("queued job ends up parsed with a linked receipt", func(t *testing.T) {
		jobs := newFakeJobsRepo()
		recs := &fakeReceiptsRepo{}
		stage := NewParseStage(nil, jobs, recs, extract.NewHeuristicAdapter(nil))

		job, err := jobs.Create(ctx, "Joe's Diner\nDate: 01/02/2024\nTotal $42.50")
		require.NoError(t, err)

		gotID, err := stage.Run(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, job.ID, gotID)

		stored := jobs.jobs[job.ID]
		assert.Equal(t, string(constants.JobStatusParsed), stored.Status)
		require.NotNil(t, stored.ReceiptID)
		require.Len(t, recs.saved, 1)
		assert.Equal(t, *stored.ReceiptID, recs.saved[0].ID)
		assert.True(t, recs.saved[0].IsValid)
	})

	t.Run("incomplete text is persisted as invalid", func(t *testing.T) {
		jobs := newFakeJobsRepo()
		recs := &fakeReceiptsRepo{}
		stage := NewParseStage(nil, jobs, recs, extract.NewHeuristicAdapter(nil))

		job, err := jobs.Create(ctx, "Joe's Diner\nno date, no total")
		require.NoError(t, err)

		_, err = stage.Run(ctx, job.ID)
		require.NoError(t, err)
		require.Len(t, recs.saved, 1)
		assert.False(t, recs.saved[0].IsValid)
		assert.Equal(t, string(constants.JobStatusParsed), jobs.jobs[job.ID].Status)
	})

	t.Run("extractor failure marks the job failed", func(t *testing.T) {
		jobs := newFakeJobsRepo()
		recs := &fakeReceiptsRepo{}
		stage := NewParseStage(nil, jobs, recs, failingExtractor{})

		job, err := jobs.Create(ctx, "anything")
		require.NoError(t, err)

		_, err = stage.Run(ctx, job.ID)
		require.Error(t, err)
		stored := jobs.jobs[job.ID]
		assert.Equal(t, string(constants.JobStatusFailed), stored.Status)
		require.NotNil(t, stored.ErrorMessage)
		assert.Equal(t, "boom", *stored.ErrorMessage)
		assert.Empty(t, recs.saved)
	})

	t.Run("non-queued job is rejected", func(t *testing.T) {
		jobs := newFakeJobsRepo()
		recs := &fakeReceiptsRepo{}
		stage := NewParseStage(nil, jobs, recs, extract.NewHeuristicAdapter(nil))

		job, err := jobs.Create(ctx, "anything")
		require.NoError(t, err)
		jobs.jobs[job.ID].Status = string(constants.JobStatusParsed)

		_, err = stage.Run(ctx, job.ID)
		assert.Error(t, err)
	})

	t.Run("unknown job", func(t *testing.T) {
		stage := NewParseStage(nil, newFakeJobsRepo(), &fakeReceiptsRepo{}, extract.NewHeuristicAdapter(nil))
		_, err := stage.Run(ctx, uuid.New())
		assert.Error(t, err)
	})
}
