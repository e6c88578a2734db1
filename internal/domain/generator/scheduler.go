package generator

import (
	"context"
	"time"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

// Locker guards a generation run so that only one process executes it when
// several replicas are deployed. A nil Locker means no coordination.
type Locker interface {
	// TryLock attempts to take the named lock for ttl. Returns false when
	// another holder has it.
	TryLock(ctx context.Context, name string, ttl time.Duration) (bool, error)
}

// SchedulerConfig holds the nightly trigger configuration.
type SchedulerConfig struct {
	// Hour/Minute is the local wall-clock fire time, shortly after midnight.
	Hour   int
	Minute int

	// Location is the business timezone the calendar day is cut in.
	Location *time.Location

	// LockTTL bounds how long the run lock is held. Zero defaults to 10m.
	LockTTL time.Duration
}

// Scheduler is the thin periodic adapter around Runner. It owns no
// generation logic: it computes the next fire time, optionally takes the
// distributed lock, and calls Run for the new day.
type Scheduler struct {
	runner *Runner
	locker Locker
	cfg    SchedulerConfig
}

// NewScheduler creates a nightly generation scheduler.
func NewScheduler(runner *Runner, locker Locker, cfg SchedulerConfig) *Scheduler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 10 * time.Minute
	}
	return &Scheduler{
		runner: runner,
		locker: locker,
		cfg:    cfg,
	}
}

const generationLockName = "daily-record-generation"

// Start runs the scheduler loop until ctx is cancelled. Call in a goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	logger.Info(ctx, "generation scheduler started",
		"fire_hour", s.cfg.Hour,
		"fire_minute", s.cfg.Minute,
		"timezone", s.cfg.Location.String(),
	)

	for {
		timer := time.NewTimer(s.untilNextFire(time.Now().In(s.cfg.Location)))
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info(ctx, "generation scheduler stopped")
			return
		case now := <-timer.C:
			s.fire(ctx, now.In(s.cfg.Location))
		}
	}
}

// fire runs generation for the current day. The recurring path only logs;
// nothing downstream awaits its return value.
func (s *Scheduler) fire(ctx context.Context, now time.Time) {
	target := types.Day(now)

	if s.locker != nil {
		ok, err := s.locker.TryLock(ctx, generationLockName, s.cfg.LockTTL)
		if err != nil {
			logger.Error(ctx, "generation lock failed, running without coordination", "error", err)
		} else if !ok {
			logger.Info(ctx, "generation already running elsewhere, skipping",
				"date", types.FormatDay(target))
			return
		}
	}

	report, err := s.runner.Run(ctx, target)
	if err != nil {
		logger.Error(ctx, "nightly generation run failed",
			"date", types.FormatDay(target),
			"error", err,
		)
		return
	}

	logger.Info(ctx, "nightly generation complete",
		"date", types.FormatDay(target),
		"total_created", report.TotalCreated,
	)
}

// untilNextFire computes the wait until the next configured fire time,
// always in the future.
func (s *Scheduler) untilNextFire(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.cfg.Hour, s.cfg.Minute, 0, 0, s.cfg.Location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
