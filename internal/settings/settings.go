// Package settings provides demo TUI user preferences persistence.
package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cristianoliveira/tabstrip/internal/config"
)

// Strip position constants.
const (
	PositionTop    = "top"
	PositionBottom = "bottom"
)

// Status footer format constants.
const (
	StatusFormatCompact   = "compact"
	StatusFormatDetailed  = "detailed"
	StatusFormatCountOnly = "count-only"
)

// Quick-switch matcher constants.
const (
	MatcherSubstring = "substring"
	MatcherToken     = "token"
	MatcherRegex     = "regex"
)

// Display toggle constants.
const (
	DisplayShow = "show"
	DisplayHide = "hide"
)

// Settings holds demo TUI user preferences persisted to disk.
//
// JSON Schema:
//
//	{
//	  "position": "top",
//	  "statusFormat": "compact",
//	  "matcher": "substring",
//	  "titles": "show",
//	  "badges": "show"
//	}
//
// Settings are stored at ~/.config/tabstrip/settings.json
type Settings struct {
	// Position places the strip bar at the top or bottom of the screen.
	// Empty string means use the default position (top).
	// Valid values: "top", "bottom".
	Position string `json:"position"`

	// StatusFormat selects the footer status line rendering.
	// Empty string means use the default format (compact).
	// Valid values: "compact", "detailed", "count-only".
	StatusFormat string `json:"statusFormat"`

	// Matcher selects the quick-switch search strategy.
	// Empty string means use the default matcher (substring).
	// Valid values: "substring", "token", "regex".
	Matcher string `json:"matcher"`

	// Titles toggles tab titles next to glyphs.
	// Empty string means use the default (show).
	// Valid values: "show", "hide".
	Titles string `json:"titles"`

	// Badges toggles badge rendering on tab cells.
	// Empty string means use the default (show).
	// Valid values: "show", "hide".
	Badges string `json:"badges"`
}

// DefaultSettings returns settings with all default values.
func DefaultSettings() *Settings {
	return &Settings{
		Position:     PositionTop,
		StatusFormat: StatusFormatCompact,
		Matcher:      MatcherSubstring,
		Titles:       DisplayShow,
		Badges:       DisplayShow,
	}
}

// Load reads settings from the config directory.
// If the settings file does not exist, returns default settings.
func Load() (*Settings, error) {
	config.Load()
	settingsPath := getSettingsPath()

	// If file doesn't exist, return defaults
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		return DefaultSettings(), nil
	}

	// Read and parse settings file
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	// Validate settings
	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Save writes settings to the config directory.
// Creates the config directory if it doesn't exist.
func Save(settings *Settings) error {
	// Load config to ensure config_dir is set
	config.Load()

	// Validate settings before saving
	if err := validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// Create config directory if needed
	configDir := config.Get("config_dir", "")
	if configDir == "" {
		return fmt.Errorf("config_dir not configured")
	}
	if err := os.MkdirAll(configDir, config.FileModeDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal settings to JSON with indentation for readability
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// Write to settings file
	settingsPath := getSettingsPath()
	if err := os.WriteFile(settingsPath, data, config.FileModeFile); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Reset writes default settings to disk and returns them.
func Reset() (*Settings, error) {
	settings := DefaultSettings()
	if err := Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
