package util

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// InterruptContext returns a context cancelled on SIGINT or SIGTERM. A
// second signal exits immediately.
func InterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sig := make(chan os.Signal, 2)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sig:
			fmt.Fprintln(os.Stderr, "\nInterrupt received. Cancelling...")
			cancel()
		case <-ctx.Done():
			signal.Stop(sig)
			return
		}

		<-sig
		fmt.Fprintln(os.Stderr, "\nExiting due to interrupt.")
		os.Exit(1)
	}()

	return ctx, func() {
		signal.Stop(sig)
		cancel()
	}
}
