package faculty

import "context"

type FacultyRepository interface {
	List(ctx context.Context, filter FacultyFilter) ([]Faculty, error)
	GetByID(ctx context.Context, id string) (Faculty, error)
	Create(ctx context.Context, newFaculty Faculty) (Faculty, error)
	Update(ctx context.Context, id string, req UpdateFacultyRequest) (Faculty, error)
	// ToggleStatus flips ACTIVE and INACTIVE in a single write.
	ToggleStatus(ctx context.Context, id string) (Faculty, error)
	Delete(ctx context.Context, id string) error
}
