package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case <-ch:
			cancel()
		}
	}()

	return ctx, cancel
}

// Gracefully blocks until ctx is done, then runs stop with a fresh context bounded by timeout.
func Gracefully(ctx context.Context, timeout time.Duration, stop func(context.Context) error) error {
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return stop(stopCtx)
}

type Stopper interface {
	GracefulStop()
	Stop()
}

var ErrForced = errors.New("graceful stop timed out, forced stop")

// Stop drains s and falls back to a hard stop when ctx expires first.
func Stop(s Stopper) func(context.Context) error {
	return func(ctx context.Context) error {
		stopped := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(stopped)
		}()

		select {
		case <-ctx.Done():
			s.Stop()
			<-stopped
			return ErrForced
		case <-stopped:
			return nil
		}
	}
}
