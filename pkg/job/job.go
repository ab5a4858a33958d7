package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type task struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Service runs registered tasks on their own tickers until the start context is done.
type Service struct {
	l     *slog.Logger
	tasks []task
	wg    *sync.WaitGroup
}

func NewService(l *slog.Logger) *Service {
	return &Service{
		l:  l.WithGroup("job"),
		wg: &sync.WaitGroup{},
	}
}

func (s *Service) RegisterJob(name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	return s.TryRegisterJob(true, name, interval, fn)
}

// TryRegisterJob skips the task when it is disabled or has no positive interval.
func (s *Service) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn func(ctx context.Context) error) *Service {
	if !isEnabled || interval <= 0 {
		s.l.Info("job disabled", "name", name)
		return s
	}

	s.tasks = append(s.tasks, task{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Service) Jobs() []string {
	names := make([]string, 0, len(s.tasks))
	for _, t := range s.tasks {
		names = append(names, t.name)
	}

	return names
}

func (s *Service) Start(ctx context.Context) {
	for _, t := range s.tasks {
		s.wg.Add(1)

		go s.run(ctx, t)
	}
}

func (s *Service) run(ctx context.Context, t task) {
	defer s.wg.Done()

	l := s.l.With("name", t.name)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		started := time.Now()

		err := s.withRecover(ctx, l, t)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job done", "took", time.Since(started).String())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Service) withRecover(ctx context.Context, l *slog.Logger, t task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "job panic", "error", r, "stack", string(debug.Stack()))
		}
	}()

	return t.fn(ctx)
}

// Stop waits for running tasks to return. Cancel the start context first.
func (s *Service) Stop() {
	s.wg.Wait()
}
