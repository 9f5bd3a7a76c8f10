package leave

import "context"

type LeaveRequestRepository interface {
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Create(ctx context.Context, newRequest LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequestRequest) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}
