// Package logger provides verbose diagnostics for the calendar puller.
// Messages are written to stderr only when verbose mode is enabled with
// --verbose, so the default output stays limited to the HTML index on
// stdout and one progress line per calendar on stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs request-level detail such as encoded queries.
func Debug(format string, args ...any) {
	printf("[DEBUG] "+format+"\n", args...)
}

// Info logs run-level events.
func Info(format string, args ...any) {
	printf("[INFO] "+format+"\n", args...)
}

// Warn logs recoverable problems.
func Warn(format string, args ...any) {
	printf("[WARN] "+format+"\n", args...)
}

// Section prints a phase header.
func Section(name string) {
	printf("\n=== %s ===\n", name)
}

func printf(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, format, args...)
	}
}
