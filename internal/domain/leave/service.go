package leave

import (
	"context"
)

type LeaveService interface {
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequest, error)
	ApplyLeave(ctx context.Context, req ApplyLeaveRequest) (LeaveRequest, error)
	UpdateLeaveRequest(ctx context.Context, req UpdateLeaveRequestRequest) (LeaveRequest, error)
	ApproveLeaveRequest(ctx context.Context, id string) (LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, id string) (LeaveRequest, error)
	DeleteLeaveRequest(ctx context.Context, id string) error
}
