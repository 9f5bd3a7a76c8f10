package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/prakura/hrms-backend-go/internal/domain/leave"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
	"github.com/prakura/hrms-backend-go/internal/service/facade"
)

const entity = "leave"

type LeaveServiceImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
	rt               facade.Runtime
	now              func() time.Time
}

func NewLeaveService(leaveRequestRepo leave.LeaveRequestRepository, rt facade.Runtime) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRequestRepo: leaveRequestRepo,
		rt:               rt,
		now:              time.Now,
	}
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (_ []leave.LeaveRequest, err error) {
	done, err := s.rt.Begin(ctx, entity, "list")
	if err != nil {
		return nil, err
	}
	defer func() { done(err) }()

	return s.leaveRequestRepo.List(ctx, filter)
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (_ leave.LeaveRequest, err error) {
	done, err := s.rt.Begin(ctx, entity, "get")
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	defer func() { done(err) }()

	return s.leaveRequestRepo.GetByID(ctx, id)
}

// ApplyLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) ApplyLeave(ctx context.Context, req leave.ApplyLeaveRequest) (_ leave.LeaveRequest, err error) {
	done, err := s.rt.Begin(ctx, entity, "apply")
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.leaveRequestRepo.Create(ctx, req.ToLeaveRequest(s.now()))
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	slog.Info("Leave request submitted", "leave_id", created.ID, "employee_id", created.EmployeeID, "days", created.Days)
	return created, nil
}

// UpdateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveRequest(ctx context.Context, req leave.UpdateLeaveRequestRequest) (_ leave.LeaveRequest, err error) {
	done, err := s.rt.Begin(ctx, entity, "update")
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	return s.leaveRequestRepo.Update(ctx, req.ID, req)
}

// ApproveLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.decide(ctx, "approve", id, leave.LeaveRequestStatusApproved)
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return s.decide(ctx, "reject", id, leave.LeaveRequestStatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, operation, id string, status leave.LeaveRequestStatus) (_ leave.LeaveRequest, err error) {
	done, err := s.rt.Begin(ctx, entity, operation)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	defer func() { done(err) }()

	next := string(status)
	req := leave.UpdateLeaveRequestRequest{ID: id, Status: &next}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	updated, err := s.leaveRequestRepo.Update(ctx, id, req)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	slog.Info("Leave request decided", "leave_id", id, "status", updated.Status)
	return updated, nil
}

// DeleteLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, id string) (err error) {
	done, err := s.rt.Begin(ctx, entity, "delete")
	if err != nil {
		return err
	}
	defer func() { done(err) }()

	if validator.IsEmpty(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	return s.leaveRequestRepo.Delete(ctx, id)
}
