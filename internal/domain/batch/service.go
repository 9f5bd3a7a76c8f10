package batch

import "context"

type BatchService interface {
	ListBatches(ctx context.Context, filter BatchFilter) ([]Batch, error)
	GetBatch(ctx context.Context, id string) (Batch, error)
	CreateBatch(ctx context.Context, req CreateBatchRequest) (Batch, error)
	UpdateBatch(ctx context.Context, req UpdateBatchRequest) (Batch, error)
	DeleteBatch(ctx context.Context, id string) error
}
