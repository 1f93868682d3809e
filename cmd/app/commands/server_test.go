package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	startErr    error
	shutdownErr error
	stop        chan struct{}
	shutdowns   atomic.Int32
}

func newFakeServer(startErr error) *fakeServer {
	return &fakeServer{startErr: startErr, stop: make(chan struct{})}
}

func (f *fakeServer) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stop
	return nil
}

func (f *fakeServer) Shutdown(ctx context.Context) error {
	if f.shutdowns.Add(1) == 1 {
		close(f.stop)
	}
	return f.shutdownErr
}

func TestServe(t *testing.T) {
	logger := slog.Default()

	t.Run("stops-on-cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		api, metrics := newFakeServer(nil), newFakeServer(nil)

		done := make(chan error, 1)
		go func() { done <- serve(ctx, logger, time.Second, api, metrics) }()

		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("serve did not return after cancel")
		}
		assert.Equal(t, int32(1), api.shutdowns.Load())
		assert.Equal(t, int32(1), metrics.shutdowns.Load())
	})

	t.Run("start-failure-shuts-down-others", func(t *testing.T) {
		api, metrics := newFakeServer(errors.New("address in use")), newFakeServer(nil)

		err := serve(context.Background(), logger, time.Second, api, metrics)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address in use")
		assert.Equal(t, int32(1), metrics.shutdowns.Load())
	})

	t.Run("shutdown-error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		api := newFakeServer(nil)
		api.shutdownErr = errors.New("deadline exceeded")
		cancel()

		err := serve(ctx, logger, time.Second, api)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "shutdown: deadline exceeded")
	})
}
