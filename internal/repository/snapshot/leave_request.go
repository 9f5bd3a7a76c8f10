package snapshot

import (
	"context"

	"github.com/prakura/hrms-backend-go/internal/domain/leave"
)

type leaveRequestRepositoryImpl struct {
	db *DB
}

func NewLeaveRequestRepository(db *DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, f leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	err := r.db.View(ctx, func(s Snapshot) error {
		out = filter(s.Leaves, f.Matches)
		return nil
	})
	return out, err
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	var out leave.LeaveRequest
	err := r.db.View(ctx, func(s Snapshot) error {
		i := indexOf(s.Leaves, func(l leave.LeaveRequest) bool { return l.ID == id })
		if i < 0 {
			return leave.ErrLeaveRequestNotFound
		}
		out = s.Leaves[i]
		return nil
	})
	return out, err
}

// Create stores the request at the head of the collection, newest first.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		newRequest.ID = newID()
		s.Leaves = append([]leave.LeaveRequest{newRequest}, s.Leaves...)
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return newRequest, nil
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, id string, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequest, error) {
	var out leave.LeaveRequest
	err := r.db.WithTransaction(ctx, func(s *Snapshot) error {
		i := indexOf(s.Leaves, func(l leave.LeaveRequest) bool { return l.ID == id })
		if i < 0 {
			return leave.ErrLeaveRequestNotFound
		}
		if err := req.Apply(&s.Leaves[i]); err != nil {
			return err
		}
		out = s.Leaves[i]
		return nil
	})
	return out, err
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithTransaction(ctx, func(s *Snapshot) error {
		if !remove(&s.Leaves, func(l leave.LeaveRequest) bool { return l.ID == id }) {
			return errUnchanged
		}
		return nil
	})
}
