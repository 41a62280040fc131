package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks
type dueEnqueuer interface {
	EnqueueDueReminders(ctx context.Context, now time.Time) (int, error)
}

type overdueSweeper interface {
	SweepOverdue(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler periodically enqueues due reminders.
//
// Ticks never overlap: a tick firing while the previous one still runs is skipped.
type Scheduler struct {
	cron    *cron.Cron
	enqueue dueEnqueuer
	sweep   overdueSweeper
	running atomic.Bool
	now     func() time.Time
}

func New(enqueue dueEnqueuer, sweep overdueSweeper) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLogger{}))),
		enqueue: enqueue,
		sweep:   sweep,
		now:     time.Now,
	}
}

// cronLogger routes cron's own messages, including recovered job panics, to zlog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zlog.Logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zlog.Logger.Error().Err(err).Fields(keysAndValues).Msg("scheduled job " + msg)
}

// Tick runs one scan. Errors are logged, never returned, so a failing tick
// does not stop the next one.
func (s *Scheduler) Tick(ctx context.Context) {
	if !s.running.CompareAndSwap(false, true) {
		zlog.Logger.Warn().Msg("previous scheduler tick still running, skipping")
		return
	}
	defer s.running.Store(false)

	now := s.now()

	count, err := s.enqueue.EnqueueDueReminders(ctx, now)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to enqueue due reminders")
	} else if count > 0 {
		zlog.Logger.Info().Int("count", count).Msg("due reminders enqueued")
	}

	// The sweeper logs its own count.
	if _, err := s.sweep.SweepOverdue(ctx, now); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to sweep overdue reminders")
	}
}

// Every registers an extra periodic job.
func (s *Scheduler) Every(spec string, fn func()) error {
	if _, err := s.cron.AddFunc(spec, fn); err != nil {
		return fmt.Errorf("schedule %q: %w", spec, err)
	}

	return nil
}

// Schedule runs Tick on spec once the scheduler is started.
func (s *Scheduler) Schedule(ctx context.Context, spec string) error {
	if err := s.Every(spec, func() { s.Tick(ctx) }); err != nil {
		return err
	}

	zlog.Logger.Info().Str("cron", spec).Msg("due reminder scan scheduled")

	return nil
}

// Start starts the cron runner in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	zlog.Logger.Print("scheduler started")
}

// Stop stops the runner and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	zlog.Logger.Print("scheduler stopped")
}
