package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// IntervalScheduler paces a sequential loop with a fixed delay between runs.
// Unlike a cron engine it never starts a run while the previous one is active.
type IntervalScheduler struct {
	schedule cron.Schedule
	logger   *logrus.Logger
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

// NewIntervalScheduler creates a scheduler firing every interval.
// Intervals below one second are rounded up to one second.
func NewIntervalScheduler(interval time.Duration, logger *logrus.Logger) *IntervalScheduler {
	return &IntervalScheduler{
		schedule: cron.Every(interval),
		logger:   logger,
		now:      time.Now,
		after:    time.After,
	}
}

// Next returns the time of the run following t.
func (s *IntervalScheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Wait blocks until the next run is due or ctx is done.
func (s *IntervalScheduler) Wait(ctx context.Context) error {
	now := s.now()
	next := s.Next(now)
	s.logger.Debugf("Next status check at %s", next.Format(time.DateTime))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.after(next.Sub(now)):
		return nil
	}
}
