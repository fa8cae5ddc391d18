// Package state provides the bubbletea model for the demo TUI.
package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// saveSettingsSuccessMsg is sent when settings are saved successfully.
type saveSettingsSuccessMsg struct{}

// SaveSettingsSuccessMsg is exported version of saveSettingsSuccessMsg.
type SaveSettingsSuccessMsg struct {
	saveSettingsSuccessMsg
}

// saveSettingsFailedMsg is sent when settings save fails.
type saveSettingsFailedMsg struct {
	err error
}

// SaveSettingsFailedMsg is exported version of saveSettingsFailedMsg.
type SaveSettingsFailedMsg struct {
	saveSettingsFailedMsg
}

// statusClearMsg clears the transient status line.
type statusClearMsg struct{}

// refreshTickMsg paces the redraw loop.
type refreshTickMsg struct{}

// SaveSettingsCmd returns a command to save settings.
func SaveSettingsCmd(saveFn func() error) tea.Cmd {
	return func() tea.Msg {
		if err := saveFn(); err != nil {
			return saveSettingsFailedMsg{err: err}
		}
		return saveSettingsSuccessMsg{}
	}
}

// statusClearAfter schedules a status line clear.
func statusClearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// refreshTick schedules the next redraw. Icon resolutions and long-press
// highlights land on other goroutines, so the view polls instead of
// waiting for input.
func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}
