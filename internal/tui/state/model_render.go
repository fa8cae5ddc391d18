package state

import (
	"strings"

	"github.com/cristianoliveira/tabstrip/internal/errors"
	"github.com/cristianoliveira/tabstrip/internal/settings"
	"github.com/cristianoliveira/tabstrip/internal/status"
	"github.com/cristianoliveira/tabstrip/internal/toolkit"
	"github.com/cristianoliveira/tabstrip/internal/tui/render"
)

// imageIconMarker stands in for a rendered bitmap icon, which a
// terminal cell cannot show directly.
const imageIconMarker = "▣"

// View renders the demo screen: header, strip and info panel in the
// configured order, then prompt, status message and footer.
func (m *Model) View() string {
	width := m.uiState.GetWidth()
	if width <= 0 {
		width = defaultViewportWidth
	}

	m.stripLine = -1
	m.spans = nil

	var lines []string
	lines = append(lines, render.Header(render.HeaderState{
		Width:   width,
		Panel:   string(m.uiState.GetPanel()),
		Matcher: m.matcher,
		Format:  m.statusFormat,
	}))
	lines = append(lines, "")

	if m.position == settings.PositionBottom {
		lines = m.appendPanel(lines)
		lines = append(lines, "")
		lines = m.appendStrip(lines)
	} else {
		lines = m.appendStrip(lines)
		lines = append(lines, "")
		lines = m.appendPanel(lines)
	}
	lines = append(lines, "")

	if m.uiState.IsPromptMode() {
		lines = append(lines, m.promptView())
		lines = append(lines, "")
	}
	if m.hasStatusMessage {
		warning := m.statusMessageType == errors.MessageTypeWarning ||
			m.statusMessageType == errors.MessageTypeError
		lines = append(lines, render.StatusMessage(m.statusMessage, warning))
	}
	lines = append(lines, render.Footer(render.FooterState{
		PromptMode: m.uiState.IsPromptMode(),
		ShowHelp:   m.uiState.ShowHelp(),
		Panel:      string(m.uiState.GetPanel()),
	}))

	return strings.Join(lines, "\n")
}

// appendStrip renders the tab bar and records where it landed so mouse
// events can be hit tested against it.
func (m *Model) appendStrip(lines []string) []string {
	state := m.stripState()
	if !state.Visible {
		return append(lines, render.HiddenStrip())
	}
	m.stripLine = len(lines)
	m.spans = render.Spans(state)
	return append(lines, render.Strip(state))
}

// appendPanel renders the selection detail line plus the active footer
// panel: the status summary or the scrollable events viewport.
func (m *Model) appendPanel(lines []string) []string {
	snap := m.strip.Snapshot()
	selected := snap.Selection.SelectedID

	detail := render.DetailState{
		SelectedID: selected,
		PreviousID: snap.Selection.PreviousID,
	}
	for _, item := range snap.Items {
		if item.ID == selected {
			detail.SelectedTitle = item.Title
			break
		}
	}
	if selected != "" {
		detail.LoadState = string(snap.LoadStates[selected])
		detail.IconKind = string(snap.IconKinds[selected])
		detail.Badge = snap.Badges[selected].String()
	}
	lines = append(lines, render.Detail(detail))

	if m.uiState.GetPanel() == settings.PanelEvents {
		viewport := m.uiState.GetViewport()
		viewport.SetContent(render.Events(m.eventLines()))
		return append(lines, viewport.View())
	}

	line, err := status.Run(&status.StripClient{Strip: m.strip}, status.Options{
		Format:  m.statusFormat,
		Enabled: m.statusEnabled,
	})
	if err != nil {
		line = ""
	}
	return append(lines, " "+line)
}

// stripState maps the widget cells onto render cell states.
func (m *Model) stripState() render.StripState {
	snap := m.strip.Snapshot()
	cells := m.widget.Cells()
	highlight := m.widget.Highlight()
	cursor := m.uiState.GetCursor()

	states := make([]render.CellState, 0, len(cells))
	for i, cell := range cells {
		states = append(states, render.CellState{
			Icon:        m.cellIcon(cell),
			Title:       cell.Title,
			Badge:       cell.Badge,
			Selected:    cell.ID == snap.Selection.SelectedID,
			Highlighted: i == highlight,
			Cursor:      i == cursor,
			ShowTitle:   m.titles == settings.DisplayShow,
			ShowBadge:   m.showBadges && m.badges == settings.DisplayShow,
			TitleFaint:  snap.TitleOpacity < 1.0,
		})
	}
	return render.StripState{
		Cells:   states,
		Visible: m.widget.Visible(),
		Width:   m.uiState.GetWidth(),
	}
}

// cellIcon picks the display character for a cell: rendered images get
// a filled marker, symbolic icons map through the glyph set, anything
// else shows as the placeholder.
func (m *Model) cellIcon(cell toolkit.Cell) string {
	if cell.HasImage {
		return imageIconMarker
	}
	if cell.ResolvedGlyph != "" {
		return m.symbols.Glyph(cell.ResolvedGlyph)
	}
	return ""
}

func (m *Model) promptView() string {
	matches := m.promptMatches()
	rows := make([]render.PromptMatch, 0, len(matches))
	for _, match := range matches {
		rows = append(rows, render.PromptMatch{ID: match.ID, Title: match.Title})
	}
	cursor := m.uiState.GetPromptCursor()
	if len(rows) > 0 && cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	return render.Prompt(render.PromptState{
		Query:   m.uiState.GetPromptQuery(),
		Matches: rows,
		Cursor:  cursor,
	})
}

func (m *Model) eventLines() []render.EventLine {
	records := m.events.Recent(eventLogCapacity)
	lines := make([]render.EventLine, 0, len(records))
	for _, record := range records {
		lines = append(lines, render.EventLine{
			When:  record.at.Format("15:04:05"),
			TabID: record.event.TabID,
			Kind:  string(record.event.Kind),
		})
	}
	return lines
}
