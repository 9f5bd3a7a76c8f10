package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	// GetStats counts everything from one consistent snapshot. day selects
	// the attendance and leave figures.
	GetStats(ctx context.Context, day time.Time) (Stats, error)
}
