// Package jobs runs periodic background work on a gocron scheduler.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Task is a unit of periodic work. The context is cancelled when the scheduler stops.
type Task func(ctx context.Context) error

// Scheduler wraps gocron with zap logging and a shared cancellation context.
type Scheduler struct {
	cron   gocron.Scheduler
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
}

// NewScheduler builds an idle scheduler.
func NewScheduler(logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cron, err := gocron.NewScheduler(gocron.WithLogger(zapAdapter{logger.Sugar()}))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{cron: cron, logger: logger, ctx: ctx, cancel: cancel}, nil
}

// Every registers task to run immediately on start and then every interval.
// A run that overlaps the previous one is skipped.
func (s *Scheduler) Every(name string, interval time.Duration, task Task) error {
	if interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive, got %s", name, interval)
	}
	if task == nil {
		return fmt.Errorf("job %s: task is nil", name)
	}

	_, err := s.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.run(name, task) }),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("schedule job %s: %w", name, err)
	}
	s.logger.Info("job scheduled", zap.String("job", name), zap.Duration("interval", interval))
	return nil
}

func (s *Scheduler) run(name string, task Task) {
	start := time.Now()
	if err := task(s.ctx); err != nil {
		s.logger.Warn("job failed", zap.String("job", name), zap.Error(err))
		return
	}
	s.logger.Debug("job completed", zap.String("job", name), zap.Duration("duration", time.Since(start)))
}

// Start begins executing registered jobs. Safe to call once.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.cron.Start()
	s.started = true
	s.logger.Info("scheduler started", zap.Int("jobs", len(s.cron.Jobs())))
}

// Stop cancels in-flight tasks and waits for the scheduler to drain.
func (s *Scheduler) Stop() error {
	s.cancel()
	if err := s.cron.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	s.logger.Info("scheduler stopped")
	return nil
}

type zapAdapter struct {
	l *zap.SugaredLogger
}

func (a zapAdapter) Debug(msg string, args ...any) { a.l.Debugw(msg, args...) }
func (a zapAdapter) Error(msg string, args ...any) { a.l.Errorw(msg, args...) }
func (a zapAdapter) Info(msg string, args ...any)  { a.l.Infow(msg, args...) }
func (a zapAdapter) Warn(msg string, args ...any)  { a.l.Warnw(msg, args...) }
