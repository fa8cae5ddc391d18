package state

import (
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/cristianoliveira/tabstrip/internal/settings"
)

// UIState manages all UI-specific state for the demo TUI: terminal
// dimensions, the cell cursor, the quick-switch prompt and the footer
// panel. Strip state itself lives in the toolkit model.
type UIState struct {
	// Events panel viewport
	viewport viewport.Model
	width    int
	height   int

	// Cursor over the strip cells
	cursor int

	// Quick-switch prompt state
	promptMode   bool
	promptQuery  string
	promptCursor int

	// Footer panel and help toggle
	panel    settings.Panel
	showHelp bool
}

// NewUIState creates a new UIState instance with default values.
func NewUIState() *UIState {
	return &UIState{
		viewport: viewport.New(defaultViewportWidth, eventPanelHeight),
		width:    defaultViewportWidth,
		height:   defaultViewportHeight,
		panel:    settings.DefaultPanel(),
	}
}

// GetViewport returns the events panel viewport.
func (u *UIState) GetViewport() *viewport.Model {
	return &u.viewport
}

// GetWidth returns the current width of the UI.
func (u *UIState) GetWidth() int {
	return u.width
}

// SetWidth updates the width of the UI.
func (u *UIState) SetWidth(width int) {
	u.width = width
	if width <= 0 {
		u.width = defaultViewportWidth
	}
}

// GetHeight returns the current height of the UI.
func (u *UIState) GetHeight() int {
	return u.height
}

// SetHeight updates the height of the UI.
func (u *UIState) SetHeight(height int) {
	u.height = height
	if height <= 0 {
		u.height = defaultViewportHeight
	}
}

// UpdateViewportSize resizes the events panel to the current width.
func (u *UIState) UpdateViewportSize() {
	u.viewport = viewport.New(u.width, eventPanelHeight)
}

// GetCursor returns the current cursor position.
func (u *UIState) GetCursor() int {
	return u.cursor
}

// SetCursor updates the cursor position.
func (u *UIState) SetCursor(cursor int) {
	u.cursor = cursor
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// MoveCursorLeft moves the cursor one cell left if possible.
func (u *UIState) MoveCursorLeft(cellCount int) {
	if u.cursor > 0 {
		u.cursor--
	}
}

// MoveCursorRight moves the cursor one cell right if possible.
func (u *UIState) MoveCursorRight(cellCount int) {
	if u.cursor < cellCount-1 {
		u.cursor++
	}
}

// AdjustCursorBounds ensures the cursor is within valid bounds.
func (u *UIState) AdjustCursorBounds(cellCount int) {
	if cellCount == 0 {
		u.cursor = 0
		return
	}
	if u.cursor >= cellCount {
		u.cursor = cellCount - 1
	}
	if u.cursor < 0 {
		u.cursor = 0
	}
}

// ResetCursor resets the cursor to the first cell.
func (u *UIState) ResetCursor() {
	u.cursor = 0
}

// IsPromptMode returns whether the quick-switch prompt is active.
func (u *UIState) IsPromptMode() bool {
	return u.promptMode
}

// SetPromptMode activates or deactivates the quick-switch prompt.
func (u *UIState) SetPromptMode(active bool) {
	u.promptMode = active
	if !active {
		u.promptQuery = ""
		u.promptCursor = 0
	}
}

// GetPromptQuery returns the current prompt query.
func (u *UIState) GetPromptQuery() string {
	return u.promptQuery
}

// SetPromptQuery updates the prompt query.
func (u *UIState) SetPromptQuery(query string) {
	u.promptQuery = query
}

// AppendToPromptQuery appends a rune to the prompt query.
func (u *UIState) AppendToPromptQuery(r rune) {
	u.promptQuery += string(r)
}

// BackspacePromptQuery removes the last character from the prompt query.
func (u *UIState) BackspacePromptQuery() {
	if len(u.promptQuery) > 0 {
		u.promptQuery = u.promptQuery[:len(u.promptQuery)-1]
	}
}

// GetPromptCursor returns the selected candidate index in the prompt.
func (u *UIState) GetPromptCursor() int {
	return u.promptCursor
}

// SetPromptCursor updates the selected candidate index.
func (u *UIState) SetPromptCursor(cursor int) {
	u.promptCursor = cursor
	if u.promptCursor < 0 {
		u.promptCursor = 0
	}
}

// MovePromptCursor moves the candidate selection by delta, clamped to
// the match count.
func (u *UIState) MovePromptCursor(delta, matchCount int) {
	if matchCount == 0 {
		u.promptCursor = 0
		return
	}
	u.promptCursor += delta
	if u.promptCursor < 0 {
		u.promptCursor = 0
	}
	if u.promptCursor >= matchCount {
		u.promptCursor = matchCount - 1
	}
}

// GetPanel returns the active footer panel.
func (u *UIState) GetPanel() settings.Panel {
	return u.panel
}

// SetPanel switches the footer panel.
func (u *UIState) SetPanel(panel settings.Panel) {
	u.panel = settings.NormalizePanel(string(panel))
}

// ShowHelp returns whether the expanded help is visible.
func (u *UIState) ShowHelp() bool {
	return u.showHelp
}

// SetShowHelp toggles the expanded help.
func (u *UIState) SetShowHelp(show bool) {
	u.showHelp = show
}
