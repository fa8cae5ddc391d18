// Package app provides TUI application adapters for command wiring.
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/tabstrip/internal/colors"
	"github.com/cristianoliveira/tabstrip/internal/settings"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
	"github.com/cristianoliveira/tabstrip/internal/tui/state"
)

// Model defines the narrow TUI model surface used by command wiring.
type Model interface {
	tea.Model
	SetLoadedSettings(loadedSettings *settings.Settings)
	FromState(settingsState settings.TUIState) error
}

// Client defines dependencies needed by the demo command.
type Client interface {
	LoadSettings() (*settings.Settings, error)
	CreateModel(specs []tabs.Spec) (Model, error)
	RunProgram(model Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	programRunner  ProgramRunner
	settingsLoader SettingsLoader
}

// NewDefaultClient creates a default TUI client adapter.
// If programRunner is nil, a DefaultProgramRunner will be used.
// If settingsLoader is nil, a DefaultSettingsLoader will be used.
func NewDefaultClient(programRunner ProgramRunner, settingsLoader SettingsLoader) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	if settingsLoader == nil {
		settingsLoader = NewDefaultSettingsLoader()
	}
	return &DefaultClient{
		programRunner:  programRunner,
		settingsLoader: settingsLoader,
	}
}

// LoadSettings loads persisted settings using the injected SettingsLoader.
func (d *DefaultClient) LoadSettings() (*settings.Settings, error) {
	return d.settingsLoader.Load()
}

// CreateModel builds a TUI model driving a live strip configured with the
// given tab specs.
func (d *DefaultClient) CreateModel(specs []tabs.Spec) (Model, error) {
	return state.NewModel(specs)
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
func (d *DefaultClient) RunProgram(model Model) error {
	err := d.programRunner.Run(model)
	if err != nil {
		colors.Error(fmt.Sprintf("Error running TUI: %v", err))
		return err
	}
	return nil
}
