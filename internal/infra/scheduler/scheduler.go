package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one poll cycle. It must return before the next wait begins.
type Job func(ctx context.Context)

// PollScheduler runs a job right away and then once per schedule tick. Jobs
// never overlap: the wait for the next tick starts only after the job returns.
type PollScheduler struct {
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
}

// ParseSchedule accepts a Go duration ("10m") for a fixed wait between cycles,
// or a standard cron expression or descriptor ("*/10 * * * *", "@every 10m").
func ParseSchedule(spec string) (cron.Schedule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("empty schedule")
	}
	if d, err := time.ParseDuration(spec); err == nil {
		if d < time.Second {
			return nil, fmt.Errorf("poll period %s is shorter than one second", d)
		}
		return cron.Every(d), nil
	}
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return sched, nil
}

func NewPollScheduler(spec string, logger *logrus.Entry) (*PollScheduler, error) {
	sched, err := ParseSchedule(spec)
	if err != nil {
		return nil, err
	}
	return &PollScheduler{
		schedule: sched,
		logger:   logger.WithField("component", "scheduler"),
		now:      time.Now,
	}, nil
}

// Run blocks until ctx is cancelled and returns ctx.Err().
func (s *PollScheduler) Run(ctx context.Context, job Job) error {
	s.logger.Info("Poll scheduler started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		job(ctx)

		next := s.schedule.Next(s.now())
		wait := next.Sub(s.now())
		if wait < 0 {
			wait = 0
		}
		s.logger.WithField("next_run", next.Format(time.RFC3339)).Debug("Waiting for next poll")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Poll scheduler stopped")
			return ctx.Err()
		case <-timer.C:
		}
	}
}
