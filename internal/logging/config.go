// Package logging provides structured file logging for tabstrip.
package logging

import (
	"os"
	"path/filepath"

	"github.com/cristianoliveira/tabstrip/internal/config"
)

// Config holds logging configuration.
type Config struct {
	// Enabled determines whether logging is active.
	Enabled bool
	// Level is the minimum log level to record.
	Level string
	// MaxFiles is the maximum number of log files to retain.
	MaxFiles int
	// Command is the name of the command being executed.
	Command string
	// PID is the process ID.
	PID int
}

// FromGlobalConfig builds a logging Config from the loaded
// configuration, stamped with the current command name and pid.
func FromGlobalConfig() Config {
	return Config{
		Enabled:  config.GetBool("logging_enabled", false),
		Level:    config.Get("logging_level", "info"),
		MaxFiles: config.GetInt("logging_max_files", 10),
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// LogDir returns the directory for log files: logs under the state
// directory when writable, else under the system temp directory.
func LogDir() (string, error) {
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		dir := filepath.Join(stateDir, "logs")
		if err := os.MkdirAll(dir, 0700); err == nil && dirWritable(dir) {
			return dir, nil
		}
	}
	fallback := filepath.Join(os.TempDir(), "tabstrip", "logs")
	if err := os.MkdirAll(fallback, 0700); err != nil {
		return "", err
	}
	return fallback, nil
}

// dirWritable proves write access by creating and removing a probe file.
func dirWritable(dir string) bool {
	probe := filepath.Join(dir, ".write_test")
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}
