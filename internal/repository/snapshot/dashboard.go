package snapshot

import (
	"context"
	"time"

	"github.com/prakura/hrms-backend-go/internal/domain/attendance"
	"github.com/prakura/hrms-backend-go/internal/domain/batch"
	"github.com/prakura/hrms-backend-go/internal/domain/dashboard"
	"github.com/prakura/hrms-backend-go/internal/domain/faculty"
	"github.com/prakura/hrms-backend-go/internal/domain/leave"
	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
)

type dashboardRepositoryImpl struct {
	db *DB
}

func NewDashboardRepository(db *DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) GetStats(ctx context.Context, day time.Time) (dashboard.Stats, error) {
	date := day.Format(validator.DateLayout)
	stats := dashboard.Stats{Date: date}

	err := r.db.View(ctx, func(s Snapshot) error {
		stats.TotalEmployees = len(s.Employees)
		for _, a := range s.Attendance {
			if a.Date != date || a.Status == attendance.StatusAbsent {
				continue
			}
			stats.PresentToday++
			if a.Status == attendance.StatusLate {
				stats.LateToday++
			}
		}
		for _, l := range s.Leaves {
			switch {
			case l.Status == leave.LeaveRequestStatusPending:
				stats.PendingLeaves++
			case l.Status == leave.LeaveRequestStatusApproved && l.Covers(date):
				stats.OnLeaveToday++
			}
		}

		active := make(map[string]bool)
		for _, b := range s.Batches {
			if b.Status == batch.StatusActive {
				stats.ActiveBatches++
				active[b.ID] = true
			}
		}
		for _, in := range s.Interns {
			if active[in.BatchID] {
				stats.ActiveInterns++
			}
		}
		for _, f := range s.Faculties {
			if f.Status == faculty.StatusActive {
				stats.ActiveFaculties++
			}
		}
		return nil
	})
	if err != nil {
		return dashboard.Stats{}, err
	}
	return stats, nil
}
