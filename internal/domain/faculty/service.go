package faculty

import "context"

type FacultyService interface {
	ListFaculties(ctx context.Context, filter FacultyFilter) ([]Faculty, error)
	GetFaculty(ctx context.Context, id string) (Faculty, error)
	CreateFaculty(ctx context.Context, req CreateFacultyRequest) (Faculty, error)
	UpdateFaculty(ctx context.Context, req UpdateFacultyRequest) (Faculty, error)
	ToggleFacultyStatus(ctx context.Context, id string) (Faculty, error)
	DeleteFaculty(ctx context.Context, id string) error
}
