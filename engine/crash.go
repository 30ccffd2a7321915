package engine

import (
	"fmt"
	"os"
	"runtime/debug"
)

// cleanup restores the terminal before crash output. Injected by the
// shell before any engine goroutine starts so the engine stays
// independent of the render backend.
var cleanup func()

// SetCrashCleanup registers the terminal restore hook. Must be called
// before Start.
func SetCrashCleanup(fn func()) {
	cleanup = fn
}

// HandleCrash is the unified panic handler that restores the terminal
// and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if cleanup != nil {
		cleanup()
	}

	// Force flush stdout/stderr before printing to stderr
	os.Stdout.Sync()
	os.Stderr.Sync()

	// Use \r\n for raw mode compatibility
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on
// crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
