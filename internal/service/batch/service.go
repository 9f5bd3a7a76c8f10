package batch

import (
	"context"
	"log/slog"

	"github.com/prakura/hrms-backend-go/internal/domain/batch"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
	"github.com/prakura/hrms-backend-go/internal/service/facade"
)

const entity = "batch"

type BatchServiceImpl struct {
	batchRepo batch.BatchRepository
	rt        facade.Runtime
}

func NewBatchService(batchRepo batch.BatchRepository, rt facade.Runtime) batch.BatchService {
	return &BatchServiceImpl{batchRepo: batchRepo, rt: rt}
}

// ListBatches implements batch.BatchService.
func (s *BatchServiceImpl) ListBatches(ctx context.Context, filter batch.BatchFilter) (_ []batch.Batch, err error) {
	done, err := s.rt.Begin(ctx, entity, "list")
	if err != nil {
		return nil, err
	}
	defer func() { done(err) }()

	return s.batchRepo.List(ctx, filter)
}

// GetBatch implements batch.BatchService.
func (s *BatchServiceImpl) GetBatch(ctx context.Context, id string) (_ batch.Batch, err error) {
	done, err := s.rt.Begin(ctx, entity, "get")
	if err != nil {
		return batch.Batch{}, err
	}
	defer func() { done(err) }()

	return s.batchRepo.GetByID(ctx, id)
}

// CreateBatch implements batch.BatchService.
func (s *BatchServiceImpl) CreateBatch(ctx context.Context, req batch.CreateBatchRequest) (_ batch.Batch, err error) {
	done, err := s.rt.Begin(ctx, entity, "create")
	if err != nil {
		return batch.Batch{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return batch.Batch{}, err
	}

	created, err := s.batchRepo.Create(ctx, req.ToBatch())
	if err != nil {
		return batch.Batch{}, err
	}
	slog.Info("Training batch created", "batch_id", created.ID, "code", created.Code, "trainer_id", created.TrainerID)
	return created, nil
}

// UpdateBatch implements batch.BatchService.
func (s *BatchServiceImpl) UpdateBatch(ctx context.Context, req batch.UpdateBatchRequest) (_ batch.Batch, err error) {
	done, err := s.rt.Begin(ctx, entity, "update")
	if err != nil {
		return batch.Batch{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return batch.Batch{}, err
	}
	return s.batchRepo.Update(ctx, req.ID, req)
}

// DeleteBatch implements batch.BatchService. Interns keep their batch id.
func (s *BatchServiceImpl) DeleteBatch(ctx context.Context, id string) (err error) {
	done, err := s.rt.Begin(ctx, entity, "delete")
	if err != nil {
		return err
	}
	defer func() { done(err) }()

	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	return s.batchRepo.Delete(ctx, id)
}
