package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
)

// notifyContext returns a context canceled by the first shutdown signal.
// A second signal exits at once, for conversions stuck on slow I/O.
func notifyContext(parent context.Context, stderr io.Writer) (context.Context, context.CancelFunc) {
	return watchSignals(parent, stderr, shutdownSignals, os.Exit)
}

func watchSignals(parent context.Context, stderr io.Writer, sigs []os.Signal, exit func(int)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, sigs...)

	done := make(chan struct{})
	go func() {
		select {
		case sig := <-ch:
			fmt.Fprintf(stderr, "received %v, stopping (repeat to force)\n", sig)
			cancel()
		case <-done:
			return
		}
		select {
		case <-ch:
			exit(ExitGeneral)
		case <-done:
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
			cancel()
		})
	}
	return ctx, stop
}
