package snapshot

import (
	"context"

	"github.com/prakura/hrms-backend-go/internal/domain/intern"
)

type internRepositoryImpl struct {
	db *DB
}

func NewInternRepository(db *DB) intern.InternRepository {
	return &internRepositoryImpl{db: db}
}

func (r *internRepositoryImpl) List(ctx context.Context, f intern.InternFilter) ([]intern.Intern, error) {
	var out []intern.Intern
	err := r.db.View(ctx, func(s Snapshot) error {
		out = filter(s.Interns, f.Matches)
		return nil
	})
	return out, err
}

func (r *internRepositoryImpl) GetByID(ctx context.Context, id string) (intern.Intern, error) {
	var out intern.Intern
	err := r.db.View(ctx, func(s Snapshot) error {
		i := indexOf(s.Interns, func(in intern.Intern) bool { return in.ID == id })
		if i < 0 {
			return intern.ErrInternNotFound
		}
		out = s.Interns[i]
		return nil
	})
	return out, err
}

func (r *internRepositoryImpl) Create(ctx context.Context, newIntern intern.Intern) (intern.Intern, error) {
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		newIntern.ID = newID()
		s.Interns = append(s.Interns, newIntern)
		return nil
	})
	if err != nil {
		return intern.Intern{}, err
	}
	return newIntern, nil
}

func (r *internRepositoryImpl) Update(ctx context.Context, id string, req intern.UpdateInternRequest) (intern.Intern, error) {
	var out intern.Intern
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		i := indexOf(s.Interns, func(in intern.Intern) bool { return in.ID == id })
		if i < 0 {
			return intern.ErrInternNotFound
		}
		req.Apply(&s.Interns[i])
		out = s.Interns[i]
		return nil
	})
	return out, err
}

func (r *internRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(s *Snapshot) error {
		if !remove(&s.Interns, func(in intern.Intern) bool { return in.ID == id }) {
			return errUnchanged
		}
		return nil
	})
}
