package state

import (
	"fmt"

	"github.com/cristianoliveira/tabstrip/internal/colors"
	"github.com/cristianoliveira/tabstrip/internal/settings"
)

// saveSettings extracts current settings from model and saves to disk.
func (m *Model) saveSettings() error {
	// Extract current settings state
	state := m.ToState()
	colors.Debug("Saving settings from TUI state")
	if err := m.ensureSettingsService().save(state); err != nil {
		return err
	}
	m.loadedSettings = state.ToSettings()
	return nil
}

// SaveSettings is the public version of saveSettings.
func (m *Model) SaveSettings() error {
	return m.saveSettings()
}

// SetLoadedSettings seeds the model with settings loaded from disk so
// unchanged values are not rewritten on save.
func (m *Model) SetLoadedSettings(loaded *settings.Settings) {
	m.ensureSettingsService().setLoadedSettings(loaded)
	m.loadedSettings = loaded
}

// ToState converts the current Model state to a TUIState for persistence.
func (m *Model) ToState() settings.TUIState {
	return m.ensureSettingsService().toState(m.position, m.statusFormat, m.matcher, m.titles, m.badges)
}

// FromState applies settings from TUIState to the Model.
// Supports partial updates - only updates non-empty fields.
// Returns an error if the settings are invalid.
func (m *Model) FromState(state settings.TUIState) error {
	if err := m.ensureSettingsService().fromState(state, &m.position, &m.statusFormat, &m.matcher, &m.titles, &m.badges); err != nil {
		return err
	}

	m.searchProvider = providerForMatcher(m.matcher)
	return nil
}

// GetPosition returns the current strip position setting.
func (m *Model) GetPosition() string {
	return m.position
}

// SetPosition sets the strip position setting.
func (m *Model) SetPosition(position string) error {
	if position != settings.PositionTop && position != settings.PositionBottom {
		return fmt.Errorf("invalid position value: %s", position)
	}

	if m.position == position {
		return nil // Already set
	}

	m.position = position
	return nil
}

// GetMatcher returns the current quick-switch matcher setting.
func (m *Model) GetMatcher() string {
	return m.matcher
}

// SetMatcher sets the quick-switch matcher and rebuilds the provider.
func (m *Model) SetMatcher(matcher string) error {
	switch matcher {
	case settings.MatcherSubstring, settings.MatcherToken, settings.MatcherRegex:
	default:
		return fmt.Errorf("invalid matcher value: %s", matcher)
	}

	if m.matcher == matcher {
		return nil // Already set
	}

	m.matcher = matcher
	m.searchProvider = providerForMatcher(matcher)
	return nil
}

func (m *Model) ensureSettingsService() *settingsService {
	if m.settingsSvc == nil {
		m.settingsSvc = newSettingsService()
		if m.loadedSettings != nil {
			m.settingsSvc.setLoadedSettings(m.loadedSettings)
		}
	}

	return m.settingsSvc
}
