package intern

import (
	"context"

	"github.com/prakura/hrms-backend-go/internal/domain/intern"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
	"github.com/prakura/hrms-backend-go/internal/service/facade"
)

const entity = "intern"

type InternServiceImpl struct {
	internRepo intern.InternRepository
	rt         facade.Runtime
}

func NewInternService(internRepo intern.InternRepository, rt facade.Runtime) intern.InternService {
	return &InternServiceImpl{internRepo: internRepo, rt: rt}
}

func (s *InternServiceImpl) ListInterns(ctx context.Context, filter intern.InternFilter) (_ []intern.Intern, err error) {
	done, err := s.rt.Begin(ctx, entity, "list")
	if err != nil {
		return nil, err
	}
	defer func() { done(err) }()

	return s.internRepo.List(ctx, filter)
}

func (s *InternServiceImpl) GetIntern(ctx context.Context, id string) (_ intern.Intern, err error) {
	done, err := s.rt.Begin(ctx, entity, "get")
	if err != nil {
		return intern.Intern{}, err
	}
	defer func() { done(err) }()

	return s.internRepo.GetByID(ctx, id)
}

func (s *InternServiceImpl) CreateIntern(ctx context.Context, req intern.CreateInternRequest) (_ intern.Intern, err error) {
	done, err := s.rt.Begin(ctx, entity, "create")
	if err != nil {
		return intern.Intern{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return intern.Intern{}, err
	}
	return s.internRepo.Create(ctx, req.ToIntern())
}

func (s *InternServiceImpl) UpdateIntern(ctx context.Context, req intern.UpdateInternRequest) (_ intern.Intern, err error) {
	done, err := s.rt.Begin(ctx, entity, "update")
	if err != nil {
		return intern.Intern{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return intern.Intern{}, err
	}
	return s.internRepo.Update(ctx, req.ID, req)
}

func (s *InternServiceImpl) DeleteIntern(ctx context.Context, id string) (err error) {
	done, err := s.rt.Begin(ctx, entity, "delete")
	if err != nil {
		return err
	}
	defer func() { done(err) }()

	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	return s.internRepo.Delete(ctx, id)
}
