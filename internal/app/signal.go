package app

import (
	"context"
	"os/signal"
	"syscall"
)

// runUntilSignal runs loop until SIGINT/SIGTERM cancels its context, and
// returns once loop has returned.
func runUntilSignal(loop func(ctx context.Context)) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		loop(ctx)
	}()

	select {
	case <-ctx.Done():
		<-done
	case <-done:
	}
}
