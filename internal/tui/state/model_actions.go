package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/tabstrip/internal/search"
	"github.com/cristianoliveira/tabstrip/internal/settings"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
	"github.com/cristianoliveira/tabstrip/internal/tabstrip"
)

// tapCursor runs a full press-release cycle on the cell under the
// cursor, which is what a host tap looks like to the strip.
func (m *Model) tapCursor() tea.Cmd {
	return m.tapIndex(m.uiState.GetCursor())
}

// tapIndex taps the cell at index and moves the cursor there.
func (m *Model) tapIndex(index int) tea.Cmd {
	if index < 0 || index >= m.cellCount() {
		return nil
	}
	m.strip.PressDown(index)
	m.strip.Release()
	m.uiState.SetCursor(index)
	return nil
}

// handleSilentSelect applies a programmatic selection to the cursor
// cell. Unlike a tap it emits no selection event.
func (m *Model) handleSilentSelect() tea.Cmd {
	cells := m.widget.Cells()
	cursor := m.uiState.GetCursor()
	if cursor < 0 || cursor >= len(cells) {
		return nil
	}
	ok, err := tabstrip.Select(m.strip, cells[cursor].ID)
	if err != nil {
		m.errorHandler.Warning(fmt.Sprintf("Select failed: %v", err))
		return statusClearAfter(statusClearDuration)
	}
	if !ok {
		return nil
	}
	m.errorHandler.Info(fmt.Sprintf("Selected %s without an event", cells[cursor].ID))
	return statusClearAfter(statusClearDuration)
}

// handlePromptSelect switches to the picked quick-switch candidate.
func (m *Model) handlePromptSelect() tea.Cmd {
	matches := m.promptMatches()
	cursor := m.uiState.GetPromptCursor()
	m.uiState.SetPromptMode(false)
	if len(matches) == 0 {
		return nil
	}
	if cursor >= len(matches) {
		cursor = len(matches) - 1
	}

	ok, err := tabstrip.Select(m.strip, matches[cursor].ID)
	if err != nil {
		m.errorHandler.Warning(fmt.Sprintf("Switch failed: %v", err))
		return statusClearAfter(statusClearDuration)
	}
	if !ok {
		m.errorHandler.Warning(fmt.Sprintf("Unknown tab: %s", matches[cursor].ID))
		return statusClearAfter(statusClearDuration)
	}
	m.syncCursorToSelection()
	return nil
}

// promptMatches filters the configured tabs with the active matcher,
// best match first.
func (m *Model) promptMatches() []tabs.Spec {
	return search.Filter(m.searchProvider, m.strip.Snapshot().Items, m.uiState.GetPromptQuery())
}

// handleCycleBadge steps the cursor tab through the badge shapes.
func (m *Model) handleCycleBadge() tea.Cmd {
	cells := m.widget.Cells()
	cursor := m.uiState.GetCursor()
	if cursor < 0 || cursor >= len(cells) {
		return nil
	}
	id := cells[cursor].ID
	m.strip.SetBadge(id, nextBadge(m.strip.Snapshot().Badges[id]))
	return nil
}

// handleToggleVisible shows or hides the whole strip.
func (m *Model) handleToggleVisible() {
	if m.widget.Visible() {
		m.strip.Hide()
		return
	}
	m.strip.Show()
}

// handleTogglePanel flips the footer between status and events.
func (m *Model) handleTogglePanel() {
	if m.uiState.GetPanel() == settings.PanelStatus {
		m.uiState.SetPanel(settings.PanelEvents)
		return
	}
	m.uiState.SetPanel(settings.PanelStatus)
}

// handleCycleMatcher advances the quick-switch matcher and rebuilds the
// provider.
func (m *Model) handleCycleMatcher() {
	m.matcher = cycleMatcher(m.matcher)
	m.searchProvider = providerForMatcher(m.matcher)
}

// handleReset reapplies the current tab set, dropping runtime badge
// changes in favor of the configured spec values.
func (m *Model) handleReset() tea.Cmd {
	snap := m.strip.Snapshot()
	opts := tabstrip.OptionsFromConfig(snap.Items, snap.Selection.SelectedID)
	if err := tabstrip.Configure(m.strip, opts); err != nil {
		m.errorHandler.Warning(fmt.Sprintf("Reconfigure failed: %v", err))
		return statusClearAfter(statusClearDuration)
	}
	m.errorHandler.Info("Configuration reapplied")
	return statusClearAfter(statusClearDuration)
}

// nextBadge cycles none -> 1 .. maxBadgeCycleCount -> dot -> none.
func nextBadge(current tabs.Badge) tabs.Badge {
	switch current.Kind {
	case tabs.BadgeCount:
		if current.Count >= maxBadgeCycleCount {
			return tabs.DotBadge()
		}
		return tabs.CountBadge(current.Count + 1)
	case tabs.BadgeDot:
		return tabs.NoBadge()
	default:
		return tabs.CountBadge(1)
	}
}

// toggleDisplay flips a show/hide display setting.
func toggleDisplay(value string) string {
	if value == settings.DisplayShow {
		return settings.DisplayHide
	}
	return settings.DisplayShow
}

// togglePosition flips the strip between the screen edges.
func togglePosition(value string) string {
	if value == settings.PositionTop {
		return settings.PositionBottom
	}
	return settings.PositionTop
}

// cycleStatusFormat advances compact -> detailed -> count-only.
func cycleStatusFormat(value string) string {
	switch value {
	case settings.StatusFormatCompact:
		return settings.StatusFormatDetailed
	case settings.StatusFormatDetailed:
		return settings.StatusFormatCountOnly
	default:
		return settings.StatusFormatCompact
	}
}

// cycleMatcher advances substring -> token -> regex.
func cycleMatcher(value string) string {
	switch value {
	case settings.MatcherSubstring:
		return settings.MatcherToken
	case settings.MatcherToken:
		return settings.MatcherRegex
	default:
		return settings.MatcherSubstring
	}
}
