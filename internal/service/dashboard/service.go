package dashboard

import (
	"context"
	"time"

	"github.com/prakura/hrms-backend-go/internal/domain/dashboard"
	"github.com/prakura/hrms-backend-go/internal/service/facade"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	rt            facade.Runtime
	location      *time.Location
	now           func() time.Time
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository, rt facade.Runtime, location *time.Location) dashboard.DashboardService {
	if location == nil {
		location = time.Local
	}
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		rt:            rt,
		location:      location,
		now:           time.Now,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (_ dashboard.Stats, err error) {
	done, err := s.rt.Begin(ctx, "dashboard", "stats")
	if err != nil {
		return dashboard.Stats{}, err
	}
	defer func() { done(err) }()

	return s.dashboardRepo.GetStats(ctx, s.now().In(s.location))
}
