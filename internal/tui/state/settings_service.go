package state

import (
	"fmt"
	"reflect"

	"github.com/cristianoliveira/tabstrip/internal/settings"
)

type settingsService struct {
	loadedSettings *settings.Settings
}

func newSettingsService() *settingsService {
	return &settingsService{}
}

func (s *settingsService) setLoadedSettings(loaded *settings.Settings) {
	s.loadedSettings = loaded
}

func (s *settingsService) toState(position, statusFormat, matcher, titles, badges string) settings.TUIState {
	return settings.TUIState{
		Position:     position,
		StatusFormat: statusFormat,
		Matcher:      matcher,
		Titles:       titles,
		Badges:       badges,
	}
}

func (s *settingsService) fromState(state settings.TUIState, position, statusFormat, matcher, titles, badges *string) error {
	candidate := state.ToSettings()
	if err := settings.Validate(candidate); err != nil {
		return err
	}

	if state.Position != "" {
		*position = state.Position
	}
	if state.StatusFormat != "" {
		*statusFormat = state.StatusFormat
	}
	if state.Matcher != "" {
		*matcher = state.Matcher
	}
	if state.Titles != "" {
		*titles = state.Titles
	}
	if state.Badges != "" {
		*badges = state.Badges
	}

	return nil
}

func (s *settingsService) save(state settings.TUIState) error {
	nextSettings := state.ToSettings()
	if s.loadedSettings != nil && reflect.DeepEqual(*s.loadedSettings, *nextSettings) {
		return nil
	}

	if err := settings.Save(nextSettings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.loadedSettings = nextSettings
	return nil
}
