package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(opts ...Option) *App {
	return New(append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)...)
}

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := newTestApp()
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run returns error", func(t *testing.T) {
		app := newTestApp()
		want := errors.New("run failed")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
	})

	t.Run("hooks run in reverse order when the context is canceled", func(t *testing.T) {
		app := newTestApp()
		var mu sync.Mutex
		var order []string
		for _, name := range []string{"database", "nats", "http server"} {
			app.AddShutdownHook(name, func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"http server", "nats", "database"}, order)
	})

	t.Run("hooks also run after run returns", func(t *testing.T) {
		app := newTestApp()
		closed := false
		app.AddShutdownHook("database", func(ctx context.Context) error {
			closed = true
			return nil
		})

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		require.NoError(t, err)
		assert.True(t, closed)
	})

	t.Run("hook errors are joined with the run error", func(t *testing.T) {
		app := newTestApp()
		runErr := errors.New("run failed")
		hookErr := errors.New("close failed")
		app.AddShutdownHook("database", func(ctx context.Context) error {
			return hookErr
		})

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return runErr
		})
		assert.ErrorIs(t, err, runErr)
		assert.ErrorIs(t, err, hookErr)
		assert.Contains(t, err.Error(), "database > close failed")
	})

	t.Run("hooks get a live context bounded by the timeout", func(t *testing.T) {
		app := newTestApp(WithShutdownTimeout(time.Second))
		var hookCtxErr error
		var hasDeadline bool
		app.AddShutdownHook("http server", func(ctx context.Context) error {
			hookCtxErr = ctx.Err()
			_, hasDeadline = ctx.Deadline()
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.NoError(t, hookCtxErr)
		assert.True(t, hasDeadline)
	})

	t.Run("hook registered from inside run", func(t *testing.T) {
		app := newTestApp()
		hookCalled := false

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.AddShutdownHook("late", func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})
}
