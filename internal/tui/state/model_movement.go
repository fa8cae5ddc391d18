package state

import "github.com/cristianoliveira/tabstrip/internal/settings"

// handleMoveLeft moves the cursor one cell toward the front.
func (m *Model) handleMoveLeft() {
	m.uiState.MoveCursorLeft(m.cellCount())
}

// handleMoveRight moves the cursor one cell toward the back.
func (m *Model) handleMoveRight() {
	m.uiState.MoveCursorRight(m.cellCount())
}

// handleMoveFirst jumps the cursor to the first cell.
func (m *Model) handleMoveFirst() {
	if m.cellCount() == 0 {
		return
	}
	m.uiState.SetCursor(0)
}

// handleMoveLast jumps the cursor to the last cell.
func (m *Model) handleMoveLast() {
	count := m.cellCount()
	if count == 0 {
		return
	}
	m.uiState.SetCursor(count - 1)
}

func (m *Model) cellCount() int {
	return len(m.widget.Cells())
}

// syncCursorToSelection moves the cursor onto the selected cell so a
// programmatic switch does not leave the cursor behind.
func (m *Model) syncCursorToSelection() {
	selected := m.strip.Selection().SelectedID
	for i, cell := range m.widget.Cells() {
		if cell.ID == selected {
			m.uiState.SetCursor(i)
			return
		}
	}
}

// scrollEvents scrolls the events viewport when that panel is showing.
func (m *Model) scrollEvents(down bool) {
	if m.uiState.GetPanel() != settings.PanelEvents {
		return
	}
	viewport := m.uiState.GetViewport()
	if down {
		viewport.LineDown(1)
		return
	}
	viewport.LineUp(1)
}
