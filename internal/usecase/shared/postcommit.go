package shared

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a best-effort side effect that runs after the primary transaction
// committed. Its error is logged and never reaches the primary caller.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// PostCommit collects tasks during a command and hands them to a runner once
// the command's writes are durable.
type PostCommit struct {
	tasks []Task
}

func (p *PostCommit) Add(name string, run func(ctx context.Context) error) {
	p.tasks = append(p.tasks, Task{Name: name, Run: run})
}

func (p *PostCommit) Len() int {
	return len(p.tasks)
}

// Drain passes the queued tasks to runner and empties the list.
func (p *PostCommit) Drain(ctx context.Context, runner TaskRunner) {
	if len(p.tasks) == 0 {
		return
	}
	tasks := p.tasks
	p.tasks = nil
	runner.Run(ctx, tasks)
}

type TaskRunner interface {
	Run(ctx context.Context, tasks []Task)
}

// BackgroundRunner runs tasks on a goroutine detached from the request so a
// finished HTTP response does not cancel them. Wait blocks until in-flight
// tasks are done and is called on shutdown.
type BackgroundRunner struct {
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewBackgroundRunner(logger *slog.Logger, timeout time.Duration) *BackgroundRunner {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BackgroundRunner{logger: logger, timeout: timeout}
}

func (r *BackgroundRunner) Run(ctx context.Context, tasks []Task) {
	detached := context.WithoutCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		runAll(detached, r.logger, r.timeout, tasks)
	}()
}

func (r *BackgroundRunner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InlineRunner runs tasks synchronously on the caller's goroutine.
type InlineRunner struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

func (r InlineRunner) Run(ctx context.Context, tasks []Task) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runAll(ctx, logger, r.Timeout, tasks)
}

func runAll(ctx context.Context, logger *slog.Logger, timeout time.Duration, tasks []Task) {
	for _, t := range tasks {
		runOne(ctx, logger, timeout, t)
	}
}

func runOne(ctx context.Context, logger *slog.Logger, timeout time.Duration, t Task) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("post-commit task panicked", "task", t.Name, "panic", rec)
		}
	}()
	if err := t.Run(ctx); err != nil {
		logger.Warn("post-commit task failed", "task", t.Name, "error", err.Error())
	}
}
