//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop a running conversion.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
