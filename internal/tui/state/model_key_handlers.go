package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleCtrlC handles Ctrl+C to exit the TUI, saving settings first.
func (m *Model) handleCtrlC() (tea.Model, tea.Cmd) {
	if err := m.saveSettings(); err != nil {
		m.errorHandler.Warning(fmt.Sprintf("Failed to save settings: %v", err))
		return m, tea.Batch(tea.Quit, statusClearAfter(statusClearDuration))
	}
	return m, tea.Quit
}

// handleEsc leaves the prompt, cancels a held gesture, or quits.
func (m *Model) handleEsc() (tea.Model, tea.Cmd) {
	if m.uiState.IsPromptMode() {
		m.uiState.SetPromptMode(false)
		return m, nil
	}
	if m.pressedIndex >= 0 {
		m.strip.CancelGesture()
		m.pressedIndex = -1
		return m, nil
	}
	return m, tea.Quit
}

// handleEnter commits the prompt choice, or taps the cursor cell.
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.uiState.IsPromptMode() {
		return m, m.handlePromptSelect()
	}
	return m, m.tapCursor()
}

// handleRunes handles rune input (prompt query text).
func (m *Model) handleRunes(msg tea.KeyMsg) {
	if m.uiState.IsPromptMode() {
		for _, r := range msg.Runes {
			m.uiState.AppendToPromptQuery(r)
		}
		m.uiState.SetPromptCursor(0)
	}
}

// handleBackspace deletes the last prompt query character.
func (m *Model) handleBackspace() {
	if m.uiState.IsPromptMode() {
		if len(m.uiState.GetPromptQuery()) > 0 {
			m.uiState.BackspacePromptQuery()
			m.uiState.SetPromptCursor(0)
		}
	}
}

// handleQuit handles quit action, saving settings first.
func (m *Model) handleQuit() (tea.Model, tea.Cmd) {
	if err := m.saveSettings(); err != nil {
		m.errorHandler.Warning(fmt.Sprintf("Failed to save settings: %v", err))
		return m, tea.Batch(tea.Quit, statusClearAfter(statusClearDuration))
	}
	return m, tea.Quit
}

// handleSaveSettingsSuccess handles successful settings save (no-op).
func (m *Model) handleSaveSettingsSuccess(msg saveSettingsSuccessMsg) (tea.Model, tea.Cmd) {
	return m, nil
}

// handleSaveSettingsFailed surfaces a failed background save.
func (m *Model) handleSaveSettingsFailed(msg saveSettingsFailedMsg) (tea.Model, tea.Cmd) {
	m.errorHandler.Warning(fmt.Sprintf("Failed to save settings: %v", msg.err))
	return m, statusClearAfter(statusClearDuration)
}

// handleWindowSizeMsg handles window resize events.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.uiState.SetWidth(msg.Width)
	m.uiState.SetHeight(msg.Height)
	m.uiState.UpdateViewportSize()
	return m, nil
}
