package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type keyBindingContext int

const (
	keyBindingContextDefault keyBindingContext = iota
	keyBindingContextPrompt
)

type keyBindingPolicy struct {
	allowBindings bool
	ctrlFallsBack bool
}

// handleKeyMsg processes keyboard input for the TUI.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if nextModel, cmd := m.handleKeyType(msg); cmd != nil || nextModel != nil {
		if nextModel == nil {
			nextModel = m
		}
		return nextModel, cmd
	}

	bindingKey, allowBindings := m.bindingKeyForMsg(msg)
	if !allowBindings {
		// In the prompt, plain keys are query input unless Ctrl is held.
		return m, nil
	}

	return m.handleKeyBinding(bindingKey)
}

// handleKeyType handles key type-based actions (Ctrl+C, Esc, Enter, etc.).
func (m *Model) handleKeyType(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.handleCtrlC()
	case tea.KeyEsc:
		return m.handleEsc()
	case tea.KeyEnter:
		return m.handleEnter()
	case tea.KeyRunes:
		m.handleRunes(msg)
		return nil, nil
	case tea.KeySpace:
		if m.uiState.IsPromptMode() {
			m.uiState.AppendToPromptQuery(' ')
			m.uiState.SetPromptCursor(0)
			return m, nil
		}
		return nil, nil
	case tea.KeyBackspace:
		m.handleBackspace()
		return nil, nil
	case tea.KeyLeft:
		m.handleMoveLeft()
		return m, nil
	case tea.KeyRight:
		m.handleMoveRight()
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		if m.uiState.IsPromptMode() {
			delta := -1
			if msg.Type == tea.KeyDown {
				delta = 1
			}
			m.uiState.MovePromptCursor(delta, len(m.promptMatches()))
			return m, nil
		}
		m.scrollEvents(msg.Type == tea.KeyDown)
		return m, nil
	case tea.KeyCtrlJ:
		if m.uiState.IsPromptMode() {
			m.uiState.MovePromptCursor(1, len(m.promptMatches()))
		}
		return m, nil
	case tea.KeyCtrlK:
		if m.uiState.IsPromptMode() {
			m.uiState.MovePromptCursor(-1, len(m.promptMatches()))
		}
		return m, nil
	}
	return nil, nil
}

// handleKeyBinding handles string-based key bindings.
func (m *Model) handleKeyBinding(key string) (tea.Model, tea.Cmd) {
	if index, ok := digitIndex(key); ok {
		return m, m.tapIndex(index)
	}

	switch key {
	case "h":
		m.handleMoveLeft()
		return m, nil
	case "l":
		m.handleMoveRight()
		return m, nil
	case "g":
		m.handleMoveFirst()
		return m, nil
	case "G":
		m.handleMoveLast()
		return m, nil
	case " ":
		return m, m.tapCursor()
	case "/":
		m.uiState.SetPromptMode(true)
		return m, nil
	case "?":
		m.uiState.SetShowHelp(!m.uiState.ShowHelp())
		return m, nil
	case "s":
		return m, m.handleSilentSelect()
	case "b":
		return m, m.handleCycleBadge()
	case "B":
		m.badges = toggleDisplay(m.badges)
		return m, SaveSettingsCmd(m.saveSettings)
	case "t":
		m.titles = toggleDisplay(m.titles)
		return m, SaveSettingsCmd(m.saveSettings)
	case "v":
		m.handleToggleVisible()
		return m, nil
	case "p":
		m.position = togglePosition(m.position)
		return m, SaveSettingsCmd(m.saveSettings)
	case "f":
		m.statusFormat = cycleStatusFormat(m.statusFormat)
		return m, SaveSettingsCmd(m.saveSettings)
	case "m":
		m.handleCycleMatcher()
		return m, SaveSettingsCmd(m.saveSettings)
	case "e":
		m.handleTogglePanel()
		return m, nil
	case "r":
		return m, m.handleReset()
	case "q":
		return m.handleQuit()
	}
	return m, nil
}

func (m *Model) bindingKeyForMsg(msg tea.KeyMsg) (string, bool) {
	key := msg.String()
	policy := m.keyBindingPolicyForContext(m.currentKeyBindingContext())

	if policy.ctrlFallsBack && strings.HasPrefix(key, "ctrl+") {
		fallback := strings.TrimPrefix(key, "ctrl+")
		if len([]rune(fallback)) == 1 {
			return fallback, true
		}
	}

	return key, policy.allowBindings
}

func (m *Model) currentKeyBindingContext() keyBindingContext {
	if m.uiState.IsPromptMode() {
		return keyBindingContextPrompt
	}
	return keyBindingContextDefault
}

func (m *Model) keyBindingPolicyForContext(context keyBindingContext) keyBindingPolicy {
	switch context {
	case keyBindingContextPrompt:
		return keyBindingPolicy{allowBindings: false, ctrlFallsBack: true}
	default:
		return keyBindingPolicy{allowBindings: true, ctrlFallsBack: false}
	}
}

// digitIndex maps keys "1".."9" to a cell index.
func digitIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}
