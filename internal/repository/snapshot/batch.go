package snapshot

import (
	"context"
	"strconv"
	"time"

	"github.com/prakura/hrms-backend-go/internal/domain/batch"
	"github.com/prakura/hrms-backend-go/internal/domain/faculty"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
)

type batchRepositoryImpl struct {
	db  *DB
	now func() time.Time
}

func NewBatchRepository(db *DB) batch.BatchRepository {
	return &batchRepositoryImpl{db: db, now: time.Now}
}

func (r *batchRepositoryImpl) List(ctx context.Context, f batch.BatchFilter) ([]batch.Batch, error) {
	var out []batch.Batch
	err := r.db.View(ctx, func(s Snapshot) error {
		out = filter(s.Batches, f.Matches)
		return nil
	})
	return out, err
}

func (r *batchRepositoryImpl) GetByID(ctx context.Context, id string) (batch.Batch, error) {
	var out batch.Batch
	err := r.db.View(ctx, func(s Snapshot) error {
		i := indexOf(s.Batches, func(b batch.Batch) bool { return b.ID == id })
		if i < 0 {
			return batch.ErrBatchNotFound
		}
		out = s.Batches[i]
		return nil
	})
	return out, err
}

func (r *batchRepositoryImpl) Create(ctx context.Context, newBatch batch.Batch) (batch.Batch, error) {
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		if err := assignTrainer(s.Faculties, &newBatch, newBatch.TrainerID); err != nil {
			return err
		}
		newBatch.ID = newID()
		newBatch.Code = r.nextCode(s.Batches, newBatch.StartDate)
		s.Batches = append(s.Batches, newBatch)
		return nil
	})
	if err != nil {
		return batch.Batch{}, err
	}
	return newBatch, nil
}

func (r *batchRepositoryImpl) Update(ctx context.Context, id string, req batch.UpdateBatchRequest) (batch.Batch, error) {
	var out batch.Batch
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		i := indexOf(s.Batches, func(b batch.Batch) bool { return b.ID == id })
		if i < 0 {
			return batch.ErrBatchNotFound
		}
		b := s.Batches[i]
		previousTrainer := b.TrainerID
		req.Apply(&b)
		if b.EndDate != "" && (req.StartDate != nil || req.EndDate != nil) {
			var errs validator.ValidationErrors
			validator.DateRange(&errs, "startDate", b.StartDate, "endDate", b.EndDate)
			if err := errs.Err(); err != nil {
				return err
			}
		}
		if b.TrainerID != previousTrainer {
			if err := assignTrainer(s.Faculties, &b, b.TrainerID); err != nil {
				return err
			}
		}
		s.Batches[i] = b
		out = b
		return nil
	})
	return out, err
}

func (r *batchRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(s *Snapshot) error {
		if !remove(&s.Batches, func(b batch.Batch) bool { return b.ID == id }) {
			return errUnchanged
		}
		return nil
	})
}

// assignTrainer copies the faculty's current name onto b. An empty id clears
// the assignment.
func assignTrainer(faculties []faculty.Faculty, b *batch.Batch, trainerID string) error {
	if trainerID == "" {
		b.TrainerID, b.TrainerName = "", ""
		return nil
	}
	i := indexOf(faculties, func(f faculty.Faculty) bool { return f.ID == trainerID })
	if i < 0 {
		return batch.ErrTrainerNotFound
	}
	b.TrainerID = trainerID
	b.TrainerName = faculties[i].Name
	return nil
}

// nextCode numbers batches per start year: BATCH-2024-01, BATCH-2024-02, ...
func (r *batchRepositoryImpl) nextCode(existing []batch.Batch, startDate string) string {
	year := r.now().Year()
	if start, ok := validator.IsValidDate(startDate); ok {
		year = start.Year()
	}
	prefix := "BATCH-" + strconv.Itoa(year) + "-"
	seq := len(filter(existing, func(b batch.Batch) bool {
		return len(b.Code) > len(prefix) && b.Code[:len(prefix)] == prefix
	})) + 1
	for {
		code := batch.CodeFor(year, seq)
		if indexOf(existing, func(b batch.Batch) bool { return b.Code == code }) < 0 {
			return code
		}
		seq++
	}
}
