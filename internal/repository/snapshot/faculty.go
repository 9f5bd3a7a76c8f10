package snapshot

import (
	"context"

	"github.com/prakura/hrms-backend-go/internal/domain/faculty"
)

// Faculty writes never touch batches: a renamed trainer keeps its old name on
// existing batches and a deleted one stays referenced by them.
type facultyRepositoryImpl struct {
	db *DB
}

func NewFacultyRepository(db *DB) faculty.FacultyRepository {
	return &facultyRepositoryImpl{db: db}
}

func (r *facultyRepositoryImpl) List(ctx context.Context, f faculty.FacultyFilter) ([]faculty.Faculty, error) {
	var out []faculty.Faculty
	err := r.db.View(ctx, func(s Snapshot) error {
		out = filter(s.Faculties, f.Matches)
		return nil
	})
	return out, err
}

func (r *facultyRepositoryImpl) GetByID(ctx context.Context, id string) (faculty.Faculty, error) {
	var out faculty.Faculty
	err := r.db.View(ctx, func(s Snapshot) error {
		i := indexOf(s.Faculties, func(f faculty.Faculty) bool { return f.ID == id })
		if i < 0 {
			return faculty.ErrFacultyNotFound
		}
		out = s.Faculties[i]
		return nil
	})
	return out, err
}

func (r *facultyRepositoryImpl) Create(ctx context.Context, newFaculty faculty.Faculty) (faculty.Faculty, error) {
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		newFaculty.ID = newID()
		s.Faculties = append(s.Faculties, newFaculty)
		return nil
	})
	if err != nil {
		return faculty.Faculty{}, err
	}
	return newFaculty, nil
}

func (r *facultyRepositoryImpl) Update(ctx context.Context, id string, req faculty.UpdateFacultyRequest) (faculty.Faculty, error) {
	return r.modify(ctx, id, req.Apply)
}

func (r *facultyRepositoryImpl) ToggleStatus(ctx context.Context, id string) (faculty.Faculty, error) {
	return r.modify(ctx, id, func(f *faculty.Faculty) {
		f.Status = f.Status.Toggle()
	})
}

func (r *facultyRepositoryImpl) modify(ctx context.Context, id string, change func(*faculty.Faculty)) (faculty.Faculty, error) {
	var out faculty.Faculty
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		i := indexOf(s.Faculties, func(f faculty.Faculty) bool { return f.ID == id })
		if i < 0 {
			return faculty.ErrFacultyNotFound
		}
		change(&s.Faculties[i])
		out = s.Faculties[i]
		return nil
	})
	return out, err
}

func (r *facultyRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(s *Snapshot) error {
		if !remove(&s.Faculties, func(f faculty.Faculty) bool { return f.ID == id }) {
			return errUnchanged
		}
		return nil
	})
}
