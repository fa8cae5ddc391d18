package settings

// TUIState represents the demo TUI model state that can be persisted.
// This DTO pattern avoids tight coupling between internal/settings and internal/tui packages.
type TUIState struct {
	// Position places the strip bar at the top or bottom of the screen.
	Position string

	// StatusFormat specifies the footer status line rendering.
	StatusFormat string

	// Matcher specifies the quick-switch search strategy.
	Matcher string

	// Titles toggles tab titles next to glyphs: "show" or "hide".
	Titles string

	// Badges toggles badge rendering: "show" or "hide".
	Badges string
}

// FromSettings converts Settings to TUIState.
func FromSettings(s *Settings) TUIState {
	if s == nil {
		return TUIState{}
	}
	return TUIState{
		Position:     s.Position,
		StatusFormat: s.StatusFormat,
		Matcher:      s.Matcher,
		Titles:       s.Titles,
		Badges:       s.Badges,
	}
}

// ToSettings converts TUIState to Settings.
// Returns a Settings struct with the values from TUIState.
// If values are empty, they will use defaults when loaded/saved.
func (t TUIState) ToSettings() *Settings {
	return &Settings{
		Position:     t.Position,
		StatusFormat: t.StatusFormat,
		Matcher:      t.Matcher,
		Titles:       t.Titles,
		Badges:       t.Badges,
	}
}

// IsEmpty returns true if all fields in TUIState are empty.
func (t TUIState) IsEmpty() bool {
	return t.Position == "" &&
		t.StatusFormat == "" &&
		t.Matcher == "" &&
		t.Titles == "" &&
		t.Badges == ""
}
