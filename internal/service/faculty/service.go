package faculty

import (
	"context"
	"log/slog"

	"github.com/prakura/hrms-backend-go/internal/domain/faculty"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
	"github.com/prakura/hrms-backend-go/internal/service/facade"
)

const entity = "faculty"

type FacultyServiceImpl struct {
	facultyRepo faculty.FacultyRepository
	rt          facade.Runtime
}

func NewFacultyService(facultyRepo faculty.FacultyRepository, rt facade.Runtime) faculty.FacultyService {
	return &FacultyServiceImpl{facultyRepo: facultyRepo, rt: rt}
}

func (s *FacultyServiceImpl) ListFaculties(ctx context.Context, filter faculty.FacultyFilter) (_ []faculty.Faculty, err error) {
	done, err := s.rt.Begin(ctx, entity, "list")
	if err != nil {
		return nil, err
	}
	defer func() { done(err) }()

	return s.facultyRepo.List(ctx, filter)
}

func (s *FacultyServiceImpl) GetFaculty(ctx context.Context, id string) (_ faculty.Faculty, err error) {
	done, err := s.rt.Begin(ctx, entity, "get")
	if err != nil {
		return faculty.Faculty{}, err
	}
	defer func() { done(err) }()

	return s.facultyRepo.GetByID(ctx, id)
}

func (s *FacultyServiceImpl) CreateFaculty(ctx context.Context, req faculty.CreateFacultyRequest) (_ faculty.Faculty, err error) {
	done, err := s.rt.Begin(ctx, entity, "create")
	if err != nil {
		return faculty.Faculty{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return faculty.Faculty{}, err
	}
	return s.facultyRepo.Create(ctx, req.ToFaculty())
}

func (s *FacultyServiceImpl) UpdateFaculty(ctx context.Context, req faculty.UpdateFacultyRequest) (_ faculty.Faculty, err error) {
	done, err := s.rt.Begin(ctx, entity, "update")
	if err != nil {
		return faculty.Faculty{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return faculty.Faculty{}, err
	}
	return s.facultyRepo.Update(ctx, req.ID, req)
}

func (s *FacultyServiceImpl) ToggleFacultyStatus(ctx context.Context, id string) (_ faculty.Faculty, err error) {
	done, err := s.rt.Begin(ctx, entity, "toggle_status")
	if err != nil {
		return faculty.Faculty{}, err
	}
	defer func() { done(err) }()

	updated, err := s.facultyRepo.ToggleStatus(ctx, id)
	if err != nil {
		return faculty.Faculty{}, err
	}
	slog.Info("Faculty status toggled", "faculty_id", id, "status", updated.Status)
	return updated, nil
}

func (s *FacultyServiceImpl) DeleteFaculty(ctx context.Context, id string) (err error) {
	done, err := s.rt.Begin(ctx, entity, "delete")
	if err != nil {
		return err
	}
	defer func() { done(err) }()

	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	return s.facultyRepo.Delete(ctx, id)
}
