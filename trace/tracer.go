// Package trace provides optional execution tracing for the evaluator:
// operator call/return/error events written to an io.Writer, filterable
// by operator name glob. Disabled by default and free when disabled.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Tracer logs operator dispatch events during evaluation.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance, nil (and therefore a no-op) until Init is called.
var globalTracer *Tracer

// Init installs the process-wide tracer. A nil writer defaults to os.Stderr.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{enabled: enabled, filters: filters, writer: writer}
}

// IsEnabled reports whether the global tracer is installed and enabled.
func IsEnabled() bool {
	return globalTracer != nil && globalTracer.enabled
}

// matchesFilter reports whether opName matches any configured glob filter;
// an empty filter set matches everything.
func (t *Tracer) matchesFilter(opName string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, opName); matched {
			return true
		}
	}
	return false
}

// Call logs the entry into an operator, with its evaluation path and
// unevaluated argument count.
func (t *Tracer) Call(path string, opName string, argCount int) {
	if !t.enabled || !t.matchesFilter(opName) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] CALL %s:%s argc=%d\n", path, opName, argCount)
}

// Return logs an operator's successful result.
func (t *Tracer) Return(path string, opName string, result string) {
	if !t.enabled || !t.matchesFilter(opName) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] RETURN %s:%s => %s\n", path, opName, result)
}

// Error logs an operator's failure.
func (t *Tracer) Error(path string, opName string, errStr string) {
	if !t.enabled || !t.matchesFilter(opName) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] ERROR %s:%s %s\n", path, opName, errStr)
}

// Tail logs a trampoline step (§4.6): the loop rewriting expr/ctx for an
// `if` branch, a `let` body, or a `call` target instead of recursing.
func (t *Tracer) Tail(path string, form string, detail string) {
	if !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if detail != "" {
		fmt.Fprintf(t.writer, "[TRACE]   TAIL %s %s %s\n", path, form, detail)
	} else {
		fmt.Fprintf(t.writer, "[TRACE]   TAIL %s %s\n", path, form)
	}
}

// Global convenience wrappers mirroring the per-instance methods; each is a
// no-op until Init has installed a tracer.

func Call(path, opName string, argCount int) {
	if globalTracer != nil {
		globalTracer.Call(path, opName, argCount)
	}
}

func Return(path, opName, result string) {
	if globalTracer != nil {
		globalTracer.Return(path, opName, result)
	}
}

func Error(path, opName, errStr string) {
	if globalTracer != nil {
		globalTracer.Error(path, opName, errStr)
	}
}

func Tail(path, form, detail string) {
	if globalTracer != nil {
		globalTracer.Tail(path, form, detail)
	}
}
