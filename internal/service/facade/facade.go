package facade

import (
	"context"

	"github.com/prakura/hrms-backend-go/internal/pkg/latency"
	"github.com/prakura/hrms-backend-go/internal/pkg/metrics"
)

// Runtime is what every service operation goes through before touching the
// store: the simulated network delay and the operation metrics.
type Runtime struct {
	Latency *latency.Simulator
	Metrics *metrics.Metrics
}

// Begin waits out the simulated delay and starts the operation timer. The
// returned func must be called with the operation's final error.
func (rt Runtime) Begin(ctx context.Context, entity, operation string) (func(err error), error) {
	done := rt.Metrics.Track(entity, operation)
	if err := rt.Latency.Wait(ctx); err != nil {
		done(err)
		return nil, err
	}
	return done, nil
}
