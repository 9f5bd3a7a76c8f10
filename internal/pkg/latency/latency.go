package latency

import (
	"context"
	"math/rand/v2"
	"time"
)

// Simulator delays calls by a random duration in [min, max]. A nil or zero
// Simulator returns immediately.
type Simulator struct {
	min, max time.Duration
}

func New(min, max time.Duration) *Simulator {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return &Simulator{min: min, max: max}
}

// Wait sleeps for the simulated delay or until ctx is done.
func (s *Simulator) Wait(ctx context.Context) error {
	d := s.next()
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Simulator) next() time.Duration {
	if s == nil || s.max <= 0 {
		return 0
	}
	if s.max == s.min {
		return s.min
	}
	return s.min + rand.N(s.max-s.min+1)
}
