package intern

import "context"

type InternService interface {
	ListInterns(ctx context.Context, filter InternFilter) ([]Intern, error)
	GetIntern(ctx context.Context, id string) (Intern, error)
	CreateIntern(ctx context.Context, req CreateInternRequest) (Intern, error)
	UpdateIntern(ctx context.Context, req UpdateInternRequest) (Intern, error)
	DeleteIntern(ctx context.Context, id string) error
}
