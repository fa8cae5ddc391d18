package state

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/tabstrip/internal/config"
	"github.com/cristianoliveira/tabstrip/internal/settings"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("XDG_STATE_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)
	config.Load()

	return tmpDir
}

func demoSpecs() []tabs.Spec {
	return []tabs.Spec{
		{ID: "home", Title: "Home", SymbolicIcon: "house"},
		{ID: "search", Title: "Search", SymbolicIcon: "magnifier"},
		{ID: "profile", Title: "Profile", SymbolicIcon: "person"},
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()

	model, err := NewModel(demoSpecs())
	require.NoError(t, err)
	return model
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelInitialState(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	assert.Equal(t, 0, model.uiState.GetCursor())
	assert.Equal(t, -1, model.pressedIndex)
	assert.Equal(t, -1, model.stripLine)
	assert.Equal(t, "home", model.Strip().Selection().SelectedID)
	assert.Len(t, model.Widget().Cells(), 3)
	assert.True(t, model.Widget().Visible())
	assert.Equal(t, settings.PositionTop, model.position)
	assert.Equal(t, settings.StatusFormatCompact, model.statusFormat)
	assert.Equal(t, settings.MatcherSubstring, model.matcher)
}

func TestNewModelWithNoSpecs(t *testing.T) {
	setupTestEnv(t)

	model, err := NewModel(nil)
	require.NoError(t, err)

	assert.Empty(t, model.Widget().Cells())
	assert.Equal(t, "", model.Strip().Selection().SelectedID)

	// Rendering and input must not blow up on an empty strip.
	assert.NotEmpty(t, model.View())
	_, cmd := model.Update(keyRunes('1'))
	assert.Nil(t, cmd)
}

func TestModelInitStartsRefreshLoop(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	assert.NotNil(t, model.Init())
}

func TestModelUpdateHandlesNavigation(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('h'))
	model = updated.(*Model)
	assert.Equal(t, 0, model.uiState.GetCursor())

	updated, _ = model.Update(keyRunes('l'))
	model = updated.(*Model)
	assert.Equal(t, 1, model.uiState.GetCursor())

	updated, _ = model.Update(keyRunes('l'))
	model = updated.(*Model)
	assert.Equal(t, 2, model.uiState.GetCursor())

	updated, _ = model.Update(keyRunes('l'))
	model = updated.(*Model)
	assert.Equal(t, 2, model.uiState.GetCursor())

	updated, _ = model.Update(keyRunes('g'))
	model = updated.(*Model)
	assert.Equal(t, 0, model.uiState.GetCursor())

	updated, _ = model.Update(keyRunes('G'))
	model = updated.(*Model)
	assert.Equal(t, 2, model.uiState.GetCursor())

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	model = updated.(*Model)
	assert.Equal(t, 1, model.uiState.GetCursor())

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRight})
	model = updated.(*Model)
	assert.Equal(t, 2, model.uiState.GetCursor())
}

func TestModelDigitKeyTapsTab(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('2'))
	model = updated.(*Model)

	assert.Equal(t, "search", model.Strip().Selection().SelectedID)
	assert.Equal(t, "home", model.Strip().Selection().PreviousID)
	assert.Equal(t, 1, model.uiState.GetCursor())

	records := model.events.Recent(10)
	require.Len(t, records, 1)
	assert.Equal(t, "search", records[0].event.TabID)
	assert.Equal(t, tabs.InteractionTap, records[0].event.Kind)
}

func TestModelDigitKeyOutOfRangeIsIgnored(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('9'))
	model = updated.(*Model)

	assert.Equal(t, "home", model.Strip().Selection().SelectedID)
	assert.Equal(t, 0, model.events.Len())
}

func TestModelEnterTapsCursorTab(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	model.uiState.SetCursor(2)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(*Model)

	assert.Equal(t, "profile", model.Strip().Selection().SelectedID)
	assert.Equal(t, 1, model.events.Len())
}

func TestModelSpaceTapsCursorTab(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	model.uiState.SetCursor(1)

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = updated.(*Model)

	assert.Equal(t, "search", model.Strip().Selection().SelectedID)
	assert.Equal(t, 1, model.events.Len())
}

func TestModelSilentSelectEmitsNoEvent(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	model.uiState.SetCursor(1)

	updated, cmd := model.Update(keyRunes('s'))
	model = updated.(*Model)

	assert.NotNil(t, cmd)
	assert.Equal(t, "search", model.Strip().Selection().SelectedID)
	assert.Equal(t, 0, model.events.Len())
	assert.True(t, model.hasStatusMessage)
}

func TestModelBadgeCycle(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	expected := []tabs.Badge{
		tabs.CountBadge(1),
		tabs.CountBadge(2),
		tabs.CountBadge(3),
		tabs.DotBadge(),
	}
	for _, want := range expected {
		updated, _ := model.Update(keyRunes('b'))
		model = updated.(*Model)
		assert.Equal(t, want, model.Strip().Snapshot().Badges["home"])
	}

	// One more step cycles back to no badge.
	updated, _ := model.Update(keyRunes('b'))
	model = updated.(*Model)
	_, ok := model.Strip().Snapshot().Badges["home"]
	assert.False(t, ok)
}

func TestModelToggleVisible(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('v'))
	model = updated.(*Model)
	assert.False(t, model.Widget().Visible())
	assert.Contains(t, model.View(), "strip hidden")

	updated, _ = model.Update(keyRunes('v'))
	model = updated.(*Model)
	assert.True(t, model.Widget().Visible())
}

func TestModelPromptSwitchFlow(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('/'))
	model = updated.(*Model)
	assert.True(t, model.uiState.IsPromptMode())

	for _, r := range "pro" {
		updated, _ = model.Update(keyRunes(r))
		model = updated.(*Model)
	}
	assert.Equal(t, "pro", model.uiState.GetPromptQuery())

	matches := model.promptMatches()
	require.NotEmpty(t, matches)
	assert.Equal(t, "profile", matches[0].ID)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(*Model)

	assert.False(t, model.uiState.IsPromptMode())
	assert.Equal(t, "profile", model.Strip().Selection().SelectedID)
	assert.Equal(t, 2, model.uiState.GetCursor())
	// Programmatic switches are silent.
	assert.Equal(t, 0, model.events.Len())
}

func TestModelPromptBindingsAreQueryInput(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('/'))
	model = updated.(*Model)

	// "q" must not quit while the prompt is open.
	updated, cmd := model.Update(keyRunes('q'))
	model = updated.(*Model)
	assert.Nil(t, cmd)
	assert.Equal(t, "q", model.uiState.GetPromptQuery())

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	model = updated.(*Model)
	assert.Equal(t, "", model.uiState.GetPromptQuery())
}

func TestModelPromptEscape(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('/'))
	model = updated.(*Model)
	updated, _ = model.Update(keyRunes('x'))
	model = updated.(*Model)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(*Model)

	assert.Nil(t, cmd)
	assert.False(t, model.uiState.IsPromptMode())
	assert.Equal(t, "", model.uiState.GetPromptQuery())
}

func TestModelPromptCursorMoves(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('/'))
	model = updated.(*Model)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	model = updated.(*Model)
	assert.Equal(t, 1, model.uiState.GetPromptCursor())

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(*Model)
	assert.Equal(t, 2, model.uiState.GetPromptCursor())

	// Clamped at the last match.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(*Model)
	assert.Equal(t, 2, model.uiState.GetPromptCursor())

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	model = updated.(*Model)
	assert.Equal(t, 1, model.uiState.GetPromptCursor())
}

func TestModelEscCancelsHeldGesture(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	model.Strip().PressDown(1)
	model.pressedIndex = 1

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(*Model)

	assert.Nil(t, cmd)
	assert.Equal(t, -1, model.pressedIndex)
	assert.Equal(t, "home", model.Strip().Selection().SelectedID)

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
}

func TestModelSettingsTogglesReturnSaveCmd(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, cmd := model.Update(keyRunes('B'))
	model = updated.(*Model)
	assert.Equal(t, settings.DisplayHide, model.badges)
	require.NotNil(t, cmd)
	assert.IsType(t, saveSettingsSuccessMsg{}, cmd())

	updated, cmd = model.Update(keyRunes('t'))
	model = updated.(*Model)
	assert.Equal(t, settings.DisplayHide, model.titles)
	assert.NotNil(t, cmd)

	updated, cmd = model.Update(keyRunes('p'))
	model = updated.(*Model)
	assert.Equal(t, settings.PositionBottom, model.position)
	assert.NotNil(t, cmd)

	updated, cmd = model.Update(keyRunes('f'))
	model = updated.(*Model)
	assert.Equal(t, settings.StatusFormatDetailed, model.statusFormat)
	assert.NotNil(t, cmd)

	updated, cmd = model.Update(keyRunes('m'))
	model = updated.(*Model)
	assert.Equal(t, settings.MatcherToken, model.matcher)
	assert.NotNil(t, cmd)
}

func TestModelPanelToggle(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	assert.Equal(t, settings.PanelStatus, model.uiState.GetPanel())

	updated, _ := model.Update(keyRunes('e'))
	model = updated.(*Model)
	assert.Equal(t, settings.PanelEvents, model.uiState.GetPanel())

	updated, _ = model.Update(keyRunes('e'))
	model = updated.(*Model)
	assert.Equal(t, settings.PanelStatus, model.uiState.GetPanel())
}

func TestModelResetReappliesConfiguration(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('b'))
	model = updated.(*Model)
	require.NotEmpty(t, model.Strip().Snapshot().Badges)

	updated, cmd := model.Update(keyRunes('r'))
	model = updated.(*Model)

	assert.NotNil(t, cmd)
	assert.Empty(t, model.Strip().Snapshot().Badges)
	assert.Equal(t, "home", model.Strip().Selection().SelectedID)
	assert.True(t, model.hasStatusMessage)
}

func TestModelQuitSavesSettings(t *testing.T) {
	tmpDir := setupTestEnv(t)

	model := newTestModel(t)
	model.position = settings.PositionBottom

	_, cmd := model.Update(keyRunes('q'))
	assert.NotNil(t, cmd)

	settingsPath := filepath.Join(tmpDir, "tabstrip", "settings.json")
	data, err := os.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), settings.PositionBottom)
}

func TestModelCtrlCSavesSettings(t *testing.T) {
	tmpDir := setupTestEnv(t)

	model := newTestModel(t)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)

	_, err := os.Stat(filepath.Join(tmpDir, "tabstrip", "settings.json"))
	assert.NoError(t, err)
}

func TestModelMousePressAndRelease(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	view := model.View()
	require.NotEmpty(t, view)
	require.GreaterOrEqual(t, model.stripLine, 0)
	require.Len(t, model.spans, 3)

	press := tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      model.spans[1].Start,
		Y:      model.stripLine,
	}
	updated, _ := model.Update(press)
	model = updated.(*Model)
	assert.Equal(t, 1, model.pressedIndex)
	assert.Equal(t, 1, model.uiState.GetCursor())

	release := tea.MouseMsg{Action: tea.MouseActionRelease}
	updated, _ = model.Update(release)
	model = updated.(*Model)

	assert.Equal(t, -1, model.pressedIndex)
	assert.Equal(t, "search", model.Strip().Selection().SelectedID)
	assert.Equal(t, 1, model.events.Len())
}

func TestModelMouseMotionOffCellCancels(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	model.View()
	require.Len(t, model.spans, 3)

	press := tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      model.spans[0].Start,
		Y:      model.stripLine,
	}
	updated, _ := model.Update(press)
	model = updated.(*Model)
	require.Equal(t, 0, model.pressedIndex)

	motion := tea.MouseMsg{
		Action: tea.MouseActionMotion,
		X:      model.spans[2].Start,
		Y:      model.stripLine,
	}
	updated, _ = model.Update(motion)
	model = updated.(*Model)

	assert.Equal(t, -1, model.pressedIndex)

	// The release after a cancel must not select anything new.
	updated, _ = model.Update(tea.MouseMsg{Action: tea.MouseActionRelease})
	model = updated.(*Model)
	assert.Equal(t, "home", model.Strip().Selection().SelectedID)
	assert.Equal(t, 0, model.events.Len())
}

func TestModelMousePressOutsideStripIsIgnored(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	model.View()

	press := tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      0,
		Y:      model.stripLine + 5,
	}
	updated, _ := model.Update(press)
	model = updated.(*Model)

	assert.Equal(t, -1, model.pressedIndex)
}

func TestModelUpdateHandlesWindowSize(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(*Model)

	assert.Equal(t, 100, model.uiState.GetWidth())
	assert.Equal(t, 30, model.uiState.GetHeight())
}

func TestModelStatusClearMessage(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	model.statusMessage = "something"
	model.hasStatusMessage = true

	updated, _ := model.Update(statusClearMsg{})
	model = updated.(*Model)

	assert.False(t, model.hasStatusMessage)
	assert.Equal(t, "", model.statusMessage)
}

func TestModelSaveSettingsFailedSurfacesWarning(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, cmd := model.Update(saveSettingsFailedMsg{err: os.ErrPermission})
	model = updated.(*Model)

	assert.NotNil(t, cmd)
	assert.True(t, model.hasStatusMessage)
	assert.Contains(t, model.statusMessage, "Failed to save settings")
}

func TestModelViewSmoke(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	view := model.View()
	assert.Contains(t, view, "tabstrip demo")
	assert.Contains(t, view, "Home")
	assert.Contains(t, view, "Search")
	assert.Contains(t, view, "Profile")
	assert.Contains(t, view, "selected:")
	assert.Contains(t, view, "q: quit")

	model.position = settings.PositionBottom
	assert.Contains(t, model.View(), "Home")

	updated, _ := model.Update(keyRunes('/'))
	model = updated.(*Model)
	assert.Contains(t, model.View(), "switch:")
}

func TestModelViewEventsPanel(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	updated, _ := model.Update(keyRunes('e'))
	model = updated.(*Model)
	assert.Contains(t, model.View(), "no selection events yet")

	updated, _ = model.Update(keyRunes('2'))
	model = updated.(*Model)
	view := model.View()
	assert.Contains(t, view, "tap")
	assert.Contains(t, view, "search")
}

func TestModelViewHelpToggle(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)
	assert.NotContains(t, model.View(), "cycle badge")

	updated, _ := model.Update(keyRunes('?'))
	model = updated.(*Model)
	assert.Contains(t, model.View(), "cycle badge")
}

func TestModelStatusDisabledByConfig(t *testing.T) {
	setupTestEnv(t)
	require.Contains(t, newTestModel(t).View(), "▶")

	t.Setenv("TABSTRIP_STATUS_ENABLED", "false")
	config.Load()

	model := newTestModel(t)
	view := model.View()
	assert.Contains(t, view, "Home")
	assert.NotContains(t, view, "▶")
}

func TestModelBadgesDisabledByConfig(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("TABSTRIP_SHOW_BADGES", "false")
	config.Load()

	model := newTestModel(t)
	updated, _ := model.Update(keyRunes('b'))
	model = updated.(*Model)

	require.Equal(t, tabs.CountBadge(1), model.Strip().Snapshot().Badges["home"])
	// The detail line still reports the badge; the strip cell must not.
	assert.Equal(t, 1, strings.Count(model.View(), "(1)"))
}

func TestModelFromStateAppliesSettings(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	err := model.FromState(settings.TUIState{
		Position: settings.PositionBottom,
		Matcher:  settings.MatcherRegex,
		Titles:   settings.DisplayHide,
	})
	require.NoError(t, err)

	assert.Equal(t, settings.PositionBottom, model.position)
	assert.Equal(t, settings.MatcherRegex, model.matcher)
	assert.Equal(t, settings.DisplayHide, model.titles)
	// Untouched fields keep their values.
	assert.Equal(t, settings.StatusFormatCompact, model.statusFormat)
}

func TestModelFromStateRejectsInvalidValues(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	err := model.FromState(settings.TUIState{Position: "sideways"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "position"))
	assert.Equal(t, settings.PositionTop, model.position)
}

func TestModelSetPositionAndMatcher(t *testing.T) {
	setupTestEnv(t)

	model := newTestModel(t)

	require.NoError(t, model.SetPosition(settings.PositionBottom))
	assert.Equal(t, settings.PositionBottom, model.GetPosition())
	assert.Error(t, model.SetPosition("diagonal"))

	require.NoError(t, model.SetMatcher(settings.MatcherToken))
	assert.Equal(t, settings.MatcherToken, model.GetMatcher())
	assert.Error(t, model.SetMatcher("fuzzy"))
}
