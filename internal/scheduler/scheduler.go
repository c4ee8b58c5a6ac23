// Package scheduler drives the periodic due check.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pathakanu/myStreak/internal/metrics"
	"github.com/pathakanu/myStreak/internal/reminder"
	"github.com/robfig/cron/v3"
)

// DefaultTick is the cadence of the due-check timer.
const DefaultTick = time.Minute

// Checker runs one due check at the given instant.
type Checker interface {
	CheckDue(ctx context.Context, now time.Time) (reminder.CheckResult, error)
}

// Scheduler fires a due check on a fixed cadence.
type Scheduler struct {
	checker Checker
	cron    *cron.Cron
	every   time.Duration
	now     func() time.Time
	logger  *log.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	ctx     context.Context
	started bool
}

// Option customises a Scheduler.
type Option func(*Scheduler)

// WithClock replaces time.Now for tick timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithEvery changes the tick cadence.
func WithEvery(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.every = d
		}
	}
}

// WithLocation sets the cron location.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) {
		if loc != nil {
			s.cron = newCron(loc, s.logger)
		}
	}
}

// WithMetrics records tick outcomes.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scheduler) { s.metrics = m }
}

// New creates a scheduler for checker. It does not start the timer.
func New(checker Checker, logger *log.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		checker: checker,
		every:   DefaultTick,
		now:     time.Now,
		logger:  logger,
		ctx:     context.Background(),
	}
	s.cron = newCron(time.Local, logger)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newCron(loc *time.Location, logger *log.Logger) *cron.Cron {
	return cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))),
	)
}

// Start registers the tick job and starts the timer.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	spec := fmt.Sprintf("@every %s", s.every)
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return fmt.Errorf("scheduler: register tick %q: %w", spec, err)
	}
	s.cron.Start()
	s.started = true
	s.logger.Printf("scheduler: started, checking every %s", s.every)
	return nil
}

// Stop halts the timer and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	wasStarted := s.started
	s.started = false
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	if wasStarted {
		s.logger.Printf("scheduler: stopped")
	}
}

// Run starts the timer and blocks until ctx is cancelled. The timer is
// released before Run returns.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	defer s.Stop()
	if err := s.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

func (s *Scheduler) tick() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	if _, err := s.Tick(ctx); err != nil {
		s.logger.Printf("scheduler: %v", err)
	}
}

// Tick runs one due check at the scheduler's current time.
func (s *Scheduler) Tick(ctx context.Context) (reminder.CheckResult, error) {
	result, err := s.checker.CheckDue(ctx, s.now())

	switch {
	case !result.Scanned:
		s.metrics.ObserveScan(metrics.ScanSkipped)
	case result.Alert != nil:
		s.metrics.ObserveScan(metrics.ScanAlert)
		s.logger.Printf("scheduler: %d reminder(s) due, alerting %q", result.Due, result.Alert.Message)
	default:
		s.metrics.ObserveScan(metrics.ScanIdle)
	}
	if err != nil {
		return result, fmt.Errorf("due check: %w", err)
	}
	return result, nil
}
