package state

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cristianoliveira/tabstrip/internal/tui/render"
)

// handleMouseMsg maps terminal mouse input onto the gesture machine:
// press starts a gesture on the hit cell, release commits it, and
// motion off the pressed cell cancels.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		index := m.hitCell(msg.X, msg.Y)
		if index < 0 {
			return m, nil
		}
		m.strip.PressDown(index)
		m.pressedIndex = index
		m.uiState.SetCursor(index)
		return m, nil

	case tea.MouseActionRelease:
		if m.pressedIndex < 0 {
			return m, nil
		}
		m.strip.Release()
		m.pressedIndex = -1
		return m, nil

	case tea.MouseActionMotion:
		if m.pressedIndex >= 0 && m.hitCell(msg.X, msg.Y) != m.pressedIndex {
			m.strip.CancelGesture()
			m.pressedIndex = -1
		}
		return m, nil
	}
	return m, nil
}

// hitCell resolves terminal coordinates to a cell index using the spans
// recorded by the last View call.
func (m *Model) hitCell(x, y int) int {
	if m.stripLine < 0 || y != m.stripLine {
		return -1
	}
	return render.HitTest(m.spans, x)
}
