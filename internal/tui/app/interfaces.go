// Package app provides TUI application adapters for command wiring.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/tabstrip/internal/settings"
)

// ProgramRunner defines the interface for running a bubbletea program.
// This abstraction allows for easier testing and swapping of implementations.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model.
	Run(model tea.Model) error
}

// DefaultProgramRunner is the default implementation of ProgramRunner
// that wraps tea.NewProgram with standard options.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program with the given model.
// It uses tea.WithAltScreen and tea.WithMouseCellMotion options by default.
func (r *DefaultProgramRunner) Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}

// SettingsLoader defines the interface for loading settings.
// This abstraction allows for easier testing and swapping of implementations.
type SettingsLoader interface {
	// Load loads and returns the settings.
	Load() (*settings.Settings, error)
}

// DefaultSettingsLoader is the default implementation of SettingsLoader
// that wraps settings.Load for production use.
type DefaultSettingsLoader struct{}

// NewDefaultSettingsLoader creates a new DefaultSettingsLoader.
func NewDefaultSettingsLoader() *DefaultSettingsLoader {
	return &DefaultSettingsLoader{}
}

// Load loads settings using the settings package's Load function.
func (l *DefaultSettingsLoader) Load() (*settings.Settings, error) {
	return settings.Load()
}
