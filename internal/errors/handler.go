// Package errors provides error reporting for the CLI and the demo TUI.
package errors

import (
	"sync"
)

// ErrorHandler is the interface for error handling.
// Different implementations can handle errors differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console sink the CLI handler writes through.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler handles errors by printing through the colors package.
// Error reporting is guarded against re-entry: a failure raised while
// another error is being reported prints directly instead of recursing.
type CLIHandler struct {
	colors ColorOutput

	mu        sync.Mutex
	reporting bool
}

func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

func (h *CLIHandler) Error(msg string) {
	if !h.beginReport() {
		// Nested failure while reporting; print without re-arming.
		h.colors.Error(msg)
		return
	}
	defer h.endReport()

	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.colors.Success(msg)
}

// beginReport marks an error report in progress. It returns false when
// one is already active, in which case the caller must not endReport.
func (h *CLIHandler) beginReport() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.reporting {
		return false
	}
	h.reporting = true
	return true
}

func (h *CLIHandler) endReport() {
	h.mu.Lock()
	h.reporting = false
	h.mu.Unlock()
}
