package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cristianoliveira/tabstrip/internal/colors"
)

// DefaultFormatter formats rows in aligned columns without headers.
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter.
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatRows formats rows in the default format.
func (f *DefaultFormatter) FormatRows(rows []Row, writer io.Writer) error {
	for _, r := range rows {
		title := r.Title
		if title == "" {
			title = "-"
		}
		if len(title) > 24 {
			title = title[:21] + "..."
		}
		badge := r.Badge
		if badge == "" {
			badge = "-"
		}
		line := fmt.Sprintf("%-4d %-16s %-24s %-6s %s", r.Index, r.ID, title, badge, r.LoadState)
		if r.Detail != "" {
			line += " " + r.Detail
		}
		_, err := fmt.Fprintln(writer, line)
		if err != nil {
			return err
		}
	}
	return nil
}

// MinimalFormatter formats rows with only the tab id, one per line.
type MinimalFormatter struct{}

// NewMinimalFormatter creates a new MinimalFormatter.
func NewMinimalFormatter() *MinimalFormatter {
	return &MinimalFormatter{}
}

// FormatRows formats rows in minimal format.
func (f *MinimalFormatter) FormatRows(rows []Row, writer io.Writer) error {
	for _, r := range rows {
		_, err := fmt.Fprintln(writer, r.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter formats rows as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatRows formats rows as JSON.
func (f *JSONFormatter) FormatRows(rows []Row, writer io.Writer) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal rows to JSON: %w", err)
	}
	_, err = writer.Write(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(writer)
	return err
}

// Printer prints tab rows and command messages through the colors
// package, so console output matches the rest of the CLI.
type Printer struct {
	writer io.Writer
}

// NewPrinter creates a new row printer.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// PrintRow prints a single row in a human-readable format.
func (p *Printer) PrintRow(row Row, showIndex bool) {
	var prefix string
	if showIndex {
		prefix = fmt.Sprintf("%d: ", row.Index)
	}
	line := fmt.Sprintf("%s[%s] %s", prefix, row.ID, row.Title)
	if row.Badge != "" {
		line += fmt.Sprintf(" (badge: %s)", row.Badge)
	}
	if row.Detail != "" {
		line += " " + row.Detail
	}
	fmt.Fprintln(p.writer, line)
}

// PrintRows prints multiple rows with optional index display.
func (p *Printer) PrintRows(rows []Row, showIndex bool) {
	if len(rows) == 0 {
		fmt.Fprintln(p.writer, "No tabs")
		return
	}
	for _, row := range rows {
		p.PrintRow(row, showIndex)
	}
}

// PrintError prints an error message using the error color.
func PrintError(msg string) {
	colors.Error(msg)
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	colors.Info(msg)
}

// PrintDebug prints a debug message.
func PrintDebug(msg string) {
	colors.Debug(msg)
}

// FormatValidationError formats a validation error message.
func FormatValidationError(field, value, validOptions string) string {
	return fmt.Sprintf("invalid %s: %s (valid: %s)", field, value, validOptions)
}
