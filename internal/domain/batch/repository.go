package batch

import "context"

type BatchRepository interface {
	List(ctx context.Context, filter BatchFilter) ([]Batch, error)
	GetByID(ctx context.Context, id string) (Batch, error)
	// Create assigns the ID and code, and copies the trainer's name when a
	// trainer ID is set.
	Create(ctx context.Context, newBatch Batch) (Batch, error)
	Update(ctx context.Context, id string, req UpdateBatchRequest) (Batch, error)
	Delete(ctx context.Context, id string) error
}
