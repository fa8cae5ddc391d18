// Package render holds the pure view helpers for the demo TUI. Every
// function maps a plain view-state struct to styled terminal output, so
// layout and hit-testing stay testable without a running program.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/cristianoliveira/tabstrip/internal/colors"
)

const (
	stripIndent     = " "
	cellSeparator   = " │ "
	hiddenMarker    = "·· strip hidden · press v to show ··"
	placeholderRune = "○"
	dotBadgeSymbol  = "●"
	maxTitleWidth   = 18
)

// CellState is one tab cell as the strip line shows it.
type CellState struct {
	Icon        string
	Title       string
	Badge       string
	Selected    bool
	Highlighted bool
	Cursor      bool
	ShowTitle   bool
	ShowBadge   bool
	TitleFaint  bool
}

// StripState defines the inputs needed to render the tab bar line.
type StripState struct {
	Cells   []CellState
	Visible bool
	Width   int
}

// Span is the horizontal extent of one cell in the strip line. End is
// exclusive.
type Span struct {
	Start int
	End   int
}

// HeaderState defines the inputs needed to render the title bar.
type HeaderState struct {
	Width   int
	Panel   string
	Matcher string
	Format  string
}

// DetailState defines the inputs needed to render the selection summary.
type DetailState struct {
	SelectedID    string
	SelectedTitle string
	PreviousID    string
	LoadState     string
	IconKind      string
	Badge         string
}

// PromptMatch is one candidate row in the quick-switch prompt.
type PromptMatch struct {
	ID    string
	Title string
}

// PromptState defines the inputs needed to render the quick-switch
// prompt.
type PromptState struct {
	Query   string
	Matches []PromptMatch
	Cursor  int
}

// EventLine is one sink event formatted for the events panel.
type EventLine struct {
	When     string
	TabID    string
	Kind     string
	Previous string
}

// FooterState defines the inputs needed to render footer help text.
type FooterState struct {
	PromptMode bool
	ShowHelp   bool
	Panel      string
}

// Header renders the title bar with the active panel, matcher and status
// format.
func Header(state HeaderState) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	title := titleStyle.Render("tabstrip demo")
	info := infoStyle.Render(fmt.Sprintf("panel:%s  matcher:%s  format:%s",
		state.Panel, state.Matcher, state.Format))

	gap := state.Width - lipgloss.Width(title) - lipgloss.Width(info)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + info
}

// Strip renders the tab bar as a single line. Styling never changes cell
// widths, so Spans stays aligned with the rendered output.
func Strip(state StripState) string {
	if !state.Visible {
		return HiddenStrip()
	}
	parts := make([]string, 0, len(state.Cells))
	for _, cell := range state.Cells {
		parts = append(parts, styleCell(cell).Render(cellLabel(cell)))
	}
	return stripIndent + strings.Join(parts, cellSeparator)
}

// HiddenStrip renders the placeholder shown while the bar is concealed.
func HiddenStrip() string {
	return stripIndent + lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(hiddenMarker)
}

// Spans reports where each cell lands in the strip line, for mouse hit
// testing. A hidden strip has no spans.
func Spans(state StripState) []Span {
	if !state.Visible {
		return nil
	}
	spans := make([]Span, 0, len(state.Cells))
	x := lipgloss.Width(stripIndent)
	for i, cell := range state.Cells {
		if i > 0 {
			x += lipgloss.Width(cellSeparator)
		}
		w := lipgloss.Width(cellLabel(cell))
		spans = append(spans, Span{Start: x, End: x + w})
		x += w
	}
	return spans
}

// HitTest returns the index of the span containing column x, or -1.
func HitTest(spans []Span, x int) int {
	for i, span := range spans {
		if x >= span.Start && x < span.End {
			return i
		}
	}
	return -1
}

// Detail renders the selection summary line under the strip.
func Detail(state DetailState) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle := lipgloss.NewStyle().Bold(true)

	selected := state.SelectedID
	if selected == "" {
		selected = "-"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render("selected: "))
	b.WriteString(valueStyle.Render(selected))
	if state.SelectedTitle != "" {
		b.WriteString(labelStyle.Render(" (" + state.SelectedTitle + ")"))
	}
	if state.PreviousID != "" {
		b.WriteString(labelStyle.Render("  prev: " + state.PreviousID))
	}
	if state.IconKind != "" {
		b.WriteString(labelStyle.Render("  icon: " + state.IconKind))
	}
	if state.LoadState != "" {
		b.WriteString(labelStyle.Render("  state: " + state.LoadState))
	}
	if state.Badge != "" {
		b.WriteString(labelStyle.Render("  badge: " + badgeLabel(state.Badge)))
	}
	return stripIndent + b.String()
}

// Prompt renders the quick-switch input plus its candidate row.
func Prompt(state PromptState) string {
	promptStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pickStyle := lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(ansiColorNumber(colors.Blue))).
		Foreground(lipgloss.Color("0"))

	var b strings.Builder
	b.WriteString(stripIndent)
	b.WriteString(promptStyle.Render("switch: " + state.Query + "▌"))
	b.WriteString("\n")
	b.WriteString(stripIndent)
	if len(state.Matches) == 0 {
		b.WriteString(dimStyle.Render("no matching tabs"))
		return b.String()
	}
	parts := make([]string, 0, len(state.Matches))
	for i, match := range state.Matches {
		label := match.ID
		if match.Title != "" {
			label += " " + truncateCell(match.Title, maxTitleWidth)
		}
		if i == state.Cursor {
			parts = append(parts, pickStyle.Render(label))
		} else {
			parts = append(parts, dimStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(parts, "  "))
	return b.String()
}

// Events renders the recent-events panel, newest last.
func Events(lines []EventLine) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if len(lines) == 0 {
		return stripIndent + dimStyle.Render("no selection events yet")
	}
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		row := fmt.Sprintf("%s  %-9s  %s", line.When, line.Kind, line.TabID)
		if line.Previous != "" {
			row += dimStyle.Render("  (from " + line.Previous + ")")
		}
		rows = append(rows, stripIndent+row)
	}
	return strings.Join(rows, "\n")
}

// StatusMessage renders a transient feedback line.
func StatusMessage(text string, warning bool) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Green)))
	if warning {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(ansiColorNumber(colors.Red)))
	}
	return stripIndent + style.Render(text)
}

// Footer renders the footer with help text.
func Footer(state FooterState) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if state.PromptMode {
		help := []string{"type: filter", "ctrl+j/k: pick", "Enter: switch", "ESC: cancel"}
		return helpStyle.Render(strings.Join(help, "  |  "))
	}

	var help []string
	help = append(help, "h/l: move")
	help = append(help, "Enter: tap")
	help = append(help, "/: switch")
	if state.Panel == "events" {
		help = append(help, "↑/↓: scroll")
	}
	help = append(help, "?: help")
	help = append(help, "q: quit")
	line := helpStyle.Render(strings.Join(help, "  |  "))
	if !state.ShowHelp {
		return line
	}
	return line + "\n" + helpStyle.Render(strings.Join(helpLines(), "\n"))
}

func helpLines() []string {
	return []string{
		"  1-9      tap tab by position",
		"  Space    tap the cursor tab",
		"  s        select silently (no event)",
		"  b        cycle badge on the cursor tab",
		"  B / t    toggle badges / titles",
		"  v        show or hide the strip",
		"  p        flip strip position",
		"  f        cycle status format",
		"  m        cycle quick-switch matcher",
		"  e        switch footer panel",
		"  r        reapply configuration",
		"  mouse    press, hold and release on a tab",
	}
}

func cellLabel(cell CellState) string {
	icon := cell.Icon
	if icon == "" {
		icon = placeholderRune
	}
	var b strings.Builder
	b.WriteString(icon)
	if cell.ShowTitle && cell.Title != "" {
		b.WriteString(" ")
		b.WriteString(truncateCell(cell.Title, maxTitleWidth))
	}
	if cell.ShowBadge && cell.Badge != "" {
		b.WriteString(" ")
		b.WriteString(badgeLabel(cell.Badge))
	}
	return b.String()
}

// badgeLabel converts the toolkit badge text to its display form.
func badgeLabel(badge string) string {
	if badge == "dot" {
		return dotBadgeSymbol
	}
	return "(" + badge + ")"
}

func styleCell(cell CellState) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch {
	case cell.Highlighted:
		style = style.
			Background(lipgloss.Color(ansiColorNumber(colors.Yellow))).
			Foreground(lipgloss.Color("0"))
	case cell.Selected:
		style = style.Bold(true).Foreground(lipgloss.Color(ansiColorNumber(colors.Blue)))
	default:
		style = style.Foreground(lipgloss.Color("241"))
	}
	if cell.Cursor {
		style = style.Underline(true)
	}
	if cell.TitleFaint && !cell.Selected {
		style = style.Faint(true)
	}
	return style
}

func truncateCell(value string, width int) string {
	if width <= 0 || utf8.RuneCountInString(value) <= width {
		return value
	}
	if width <= 3 {
		return string([]rune(value)[:width])
	}
	return string([]rune(value)[:width-3]) + "..."
}

// ansiColorNumber extracts the color number from an ANSI escape sequence.
// Example: "\033[0;34m" -> "34"
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
