package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu      sync.Mutex
	crashCleanup func()
	crashOut     io.Writer = os.Stderr
	crashExit              = os.Exit
)

// SetCrashCleanup registers the function run before the crash report is printed
// Main registers screen finalization here so the report lands on a sane terminal
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	out := crashOut
	exit := crashExit
	crashMu.Unlock()

	if cleanup != nil {
		func() {
			// A failing cleanup must not hide the original panic
			defer func() { _ = recover() }()
			cleanup()
		}()
	}

	fmt.Fprintf(out, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
