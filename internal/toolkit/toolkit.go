// Package toolkit hosts the widget model the overlay drives. The Model
// is the in-process stand-in for a native tab bar: it holds the applied
// tab cells, highlight, badges, resolved icons and visibility, and the
// demo TUI renders directly from it.
package toolkit

import (
	"fmt"
	"sync"

	"github.com/cristianoliveira/tabstrip/internal/colors"
	"github.com/cristianoliveira/tabstrip/internal/ports"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// Cell is one tab as the host widget sees it.
type Cell struct {
	ID    string
	Title string
	// Symbolic is the fallback name declared by the tab spec.
	Symbolic string
	Badge    string
	// ResolvedGlyph is set once resolution picked a symbolic icon; empty
	// with HasImage false means the placeholder is showing.
	ResolvedGlyph string
	HasImage      bool
	// Selected and Unselected hold the rendered PNG variants when
	// HasImage is true.
	Selected   []byte
	Unselected []byte
}

// Model implements ports.Toolkit against in-memory state. All methods
// are safe for concurrent use; an optional change hook fires after every
// mutation so a host view can refresh.
type Model struct {
	mu        sync.RWMutex
	cells     []Cell
	highlight int
	visible   bool
	insets    tabs.Insets
	onChange  func()
}

// NewModel creates an empty, visible widget model with no highlight.
func NewModel() *Model {
	return &Model{highlight: -1, visible: true}
}

// SetOnChange registers a hook invoked after every mutation. Pass nil to
// remove it.
func (m *Model) SetOnChange(fn func()) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// SetInsets sets the safe-area insets the host reports.
func (m *Model) SetInsets(insets tabs.Insets) {
	m.mu.Lock()
	m.insets = insets
	m.mu.Unlock()
	m.notify()
}

// ApplyTabs replaces all cells. The highlight resets until the
// interaction layer re-applies it.
func (m *Model) ApplyTabs(views []ports.TabView) error {
	m.mu.Lock()
	m.cells = make([]Cell, len(views))
	for i, view := range views {
		m.cells[i] = Cell{
			ID:       view.ID,
			Title:    view.Title,
			Symbolic: view.Glyph,
			Badge:    view.Badge,
		}
	}
	m.highlight = -1
	m.mu.Unlock()

	colors.StructuredDebug("toolkit", "apply_tabs", "completed", nil, "", map[string]any{"count": len(views)})
	m.notify()
	return nil
}

// SetHighlight moves the visual selection to the cell at index.
func (m *Model) SetHighlight(index int) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.cells) {
		m.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	m.highlight = index
	m.mu.Unlock()

	m.notify()
	return nil
}

// ClearHighlight removes the visual selection.
func (m *Model) ClearHighlight() error {
	m.mu.Lock()
	m.highlight = -1
	m.mu.Unlock()

	m.notify()
	return nil
}

// SetBadge updates the badge text of the cell at index. Empty means no
// badge.
func (m *Model) SetBadge(index int, badge string) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.cells) {
		m.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	m.cells[index].Badge = badge
	m.mu.Unlock()

	m.notify()
	return nil
}

// SetVisible toggles the whole bar.
func (m *Model) SetVisible(visible bool) error {
	m.mu.Lock()
	m.visible = visible
	m.mu.Unlock()

	m.notify()
	return nil
}

// SetIconImage installs the rendered icon variants for the cell at
// index.
func (m *Model) SetIconImage(index int, selected, unselected []byte) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.cells) {
		m.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	m.cells[index].HasImage = true
	m.cells[index].Selected = selected
	m.cells[index].Unselected = unselected
	m.cells[index].ResolvedGlyph = ""
	m.mu.Unlock()

	colors.StructuredDebug("toolkit", "set_icon_image", "completed", nil, "", map[string]any{"index": index, "selected_bytes": len(selected)})
	m.notify()
	return nil
}

// SetSymbolicIcon installs a symbolic glyph for the cell at index. An
// empty glyph shows the placeholder.
func (m *Model) SetSymbolicIcon(index int, glyph string) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.cells) {
		m.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	m.cells[index].HasImage = false
	m.cells[index].Selected = nil
	m.cells[index].Unselected = nil
	m.cells[index].ResolvedGlyph = glyph
	m.mu.Unlock()

	m.notify()
	return nil
}

// SafeAreaInsets reports the host's safe-area insets.
func (m *Model) SafeAreaInsets() (tabs.Insets, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.insets, nil
}

// Cells returns a copy of the current cells.
func (m *Model) Cells() []Cell {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cells := make([]Cell, len(m.cells))
	copy(cells, m.cells)
	return cells
}

// Highlight returns the highlighted index, or -1 when nothing is
// highlighted.
func (m *Model) Highlight() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.highlight
}

// Visible reports whether the bar is showing.
func (m *Model) Visible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible
}

func (m *Model) notify() {
	m.mu.RLock()
	onChange := m.onChange
	m.mu.RUnlock()
	if onChange != nil {
		onChange()
	}
}
