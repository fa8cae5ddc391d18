package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings *Settings
		want     TUIState
	}{
		{
			name:     "nil settings",
			settings: nil,
			want:     TUIState{},
		},
		{
			name:     "default settings",
			settings: DefaultSettings(),
			want: TUIState{
				Position:     PositionTop,
				StatusFormat: StatusFormatCompact,
				Matcher:      MatcherSubstring,
				Titles:       DisplayShow,
				Badges:       DisplayShow,
			},
		},
		{
			name: "custom settings",
			settings: &Settings{
				Position:     PositionBottom,
				StatusFormat: StatusFormatDetailed,
				Matcher:      MatcherRegex,
				Titles:       DisplayHide,
				Badges:       DisplayHide,
			},
			want: TUIState{
				Position:     PositionBottom,
				StatusFormat: StatusFormatDetailed,
				Matcher:      MatcherRegex,
				Titles:       DisplayHide,
				Badges:       DisplayHide,
			},
		},
		{
			name:     "empty settings",
			settings: &Settings{},
			want:     TUIState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromSettings(tt.settings)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToSettings(t *testing.T) {
	tests := []struct {
		name  string
		state TUIState
		want  *Settings
	}{
		{
			name:  "empty state",
			state: TUIState{},
			want:  &Settings{},
		},
		{
			name: "custom state",
			state: TUIState{
				Position:     PositionBottom,
				StatusFormat: StatusFormatCountOnly,
				Matcher:      MatcherToken,
				Titles:       DisplayShow,
				Badges:       DisplayHide,
			},
			want: &Settings{
				Position:     PositionBottom,
				StatusFormat: StatusFormatCountOnly,
				Matcher:      MatcherToken,
				Titles:       DisplayShow,
				Badges:       DisplayHide,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.ToSettings()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		state TUIState
		want  bool
	}{
		{
			name:  "completely empty",
			state: TUIState{},
			want:  true,
		},
		{
			name: "has position",
			state: TUIState{
				Position: PositionBottom,
			},
			want: false,
		},
		{
			name: "has statusFormat",
			state: TUIState{
				StatusFormat: StatusFormatDetailed,
			},
			want: false,
		},
		{
			name: "has matcher",
			state: TUIState{
				Matcher: MatcherRegex,
			},
			want: false,
		},
		{
			name: "has titles",
			state: TUIState{
				Titles: DisplayHide,
			},
			want: false,
		},
		{
			name: "has badges",
			state: TUIState{
				Badges: DisplayHide,
			},
			want: false,
		},
		{
			name: "all fields populated",
			state: TUIState{
				Position:     PositionTop,
				StatusFormat: StatusFormatCompact,
				Matcher:      MatcherSubstring,
				Titles:       DisplayShow,
				Badges:       DisplayShow,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.state.IsEmpty()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTripConversion(t *testing.T) {
	tests := []struct {
		name     string
		settings *Settings
	}{
		{
			name:     "default settings",
			settings: DefaultSettings(),
		},
		{
			name: "custom settings",
			settings: &Settings{
				Position:     PositionBottom,
				StatusFormat: StatusFormatDetailed,
				Matcher:      MatcherRegex,
				Titles:       DisplayHide,
				Badges:       DisplayHide,
			},
		},
		{
			name: "partial settings",
			settings: &Settings{
				Matcher: MatcherToken,
				Badges:  DisplayHide,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Settings -> TUIState -> Settings
			state := FromSettings(tt.settings)
			result := state.ToSettings()

			assert.Equal(t, tt.settings, result)
		})
	}
}
