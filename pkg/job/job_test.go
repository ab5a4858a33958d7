package job_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/staff/pkg/job"
)

func TestService_RunsUntilCancelled(t *testing.T) {
	t.Parallel()

	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	var ok, failed, panicked atomic.Int32

	s := job.NewService(l).
		RegisterJob("ok", 10*time.Millisecond, func(context.Context) error {
			ok.Add(1)
			return nil
		}).
		RegisterJob("failed", 10*time.Millisecond, func(context.Context) error {
			failed.Add(1)
			return errors.New("boom")
		}).
		RegisterJob("panicked", 10*time.Millisecond, func(context.Context) error {
			panicked.Add(1)
			panic("boom")
		}).
		TryRegisterJob(false, "disabled", time.Millisecond, func(context.Context) error {
			t.Error("disabled job must not run")
			return nil
		}).
		TryRegisterJob(true, "zero interval", 0, func(context.Context) error {
			t.Error("job without interval must not run")
			return nil
		})

	require.Equal(t, []string{"ok", "failed", "panicked"}, s.Jobs())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	require.Eventually(t, func() bool {
		return ok.Load() >= 2 && failed.Load() >= 2 && panicked.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Stop()

	stopped := ok.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, stopped, ok.Load())
}
