package settings

import "strings"

// Panel identifies the active footer panel in the demo TUI.
type Panel string

const (
	// PanelStatus shows the one-line status summary.
	PanelStatus Panel = "status"

	// PanelEvents shows the interaction event log.
	PanelEvents Panel = "events"
)

// IsValid returns whether the panel is one of the supported values.
func (p Panel) IsValid() bool {
	switch p {
	case PanelStatus, PanelEvents:
		return true
	default:
		return false
	}
}

// DefaultPanel returns the default panel used when value is missing or invalid.
func DefaultPanel() Panel {
	return PanelStatus
}

// NormalizePanel converts arbitrary persisted input to a valid panel value.
// Missing or invalid values always resolve to the default panel.
func NormalizePanel(raw string) Panel {
	panel := Panel(strings.ToLower(strings.TrimSpace(raw)))
	if panel.IsValid() {
		return panel
	}

	return DefaultPanel()
}
