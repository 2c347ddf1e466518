// Package scheduler runs the clinic's periodic jobs in-process. Every job is
// also reachable over HTTP so an external scheduler can drive it instead.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"clinic-booking/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type Job struct {
	Name string
	// Schedule is a standard five-field cron spec or a descriptor such as
	// "@every 10m". Empty disables the job.
	Schedule string
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
}

// New evaluates schedules in loc and bounds each run by timeout. Overlapping
// runs of the same job are skipped.
func New(loc *time.Location, timeout time.Duration) *Scheduler {
	logger := slogAdapter{logger: slog.Default().With("component", "scheduler")}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Add registers job. It reports whether the job was scheduled.
func (s *Scheduler) Add(job Job) (bool, error) {
	if job.Schedule == "" {
		slog.Info("scheduled job disabled", "job", job.Name)
		return false, nil
	}
	_, err := s.cron.AddFunc(job.Schedule, func() { s.run(job) })
	if err != nil {
		return false, errs.Wrapf(err, "invalid schedule %q for job %s", job.Schedule, job.Name)
	}
	slog.Info("scheduled job registered", "job", job.Name, "schedule", job.Schedule)
	return true, nil
}

func (s *Scheduler) run(job Job) {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	started := time.Now()
	if err := job.Run(ctx); err != nil {
		slog.Error("scheduled job failed", "job", job.Name, "error", err.Error(), "duration", time.Since(started))
		return
	}
	slog.Debug("scheduled job finished", "job", job.Name, "duration", time.Since(started))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs, cancels the running ones and waits for them until
// ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	s.cancel()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Info(msg string, keysAndValues ...any) {
	a.logger.Debug(msg, keysAndValues...)
}

func (a slogAdapter) Error(err error, msg string, keysAndValues ...any) {
	a.logger.Error(msg, append(keysAndValues, "error", err)...)
}
