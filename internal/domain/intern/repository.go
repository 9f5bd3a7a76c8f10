package intern

import "context"

type InternRepository interface {
	List(ctx context.Context, filter InternFilter) ([]Intern, error)
	GetByID(ctx context.Context, id string) (Intern, error)
	Create(ctx context.Context, newIntern Intern) (Intern, error)
	Update(ctx context.Context, id string, req UpdateInternRequest) (Intern, error)
	Delete(ctx context.Context, id string) error
}
