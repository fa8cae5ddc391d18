package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/tabstrip/internal/colors"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers.
	HeaderColor string

	// ColumnWidths defines the width for each column.
	ColumnWidths map[string]int

	// ColumnAlignments defines the alignment for each column (left, right, center).
	ColumnAlignments map[string]string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
		ColumnWidths: map[string]int{
			"Index": 4,
			"ID":    16,
			"Title": 24,
			"Badge": 6,
			"State": 8,
			"Kind":  12,
		},
		ColumnAlignments: map[string]string{
			"Index": "right",
			"ID":    "left",
			"State": "left",
		},
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extractor extracts the value from a row.
	Extractor func(Row) string
}

// ExtendedTableFormatter renders rows as a table with headers.
type ExtendedTableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewExtendedTableFormatter creates a new ExtendedTableFormatter with default columns.
func NewExtendedTableFormatter() *ExtendedTableFormatter {
	config := DefaultTableConfig()
	columns := []TableColumn{
		{
			Name:      "Index",
			Width:     config.ColumnWidths["Index"],
			Alignment: config.ColumnAlignments["Index"],
			Extractor: func(r Row) string {
				return formatIntToString(r.Index, config.ColumnWidths["Index"], config.ColumnAlignments["Index"])
			},
		},
		{
			Name:      "ID",
			Width:     config.ColumnWidths["ID"],
			Alignment: config.ColumnAlignments["ID"],
			Extractor: func(r Row) string {
				return formatString(r.ID, config.ColumnWidths["ID"], config.ColumnAlignments["ID"])
			},
		},
		{
			Name:  "Title",
			Width: config.ColumnWidths["Title"],
			Extractor: func(r Row) string {
				return truncateString(r.Title, config.ColumnWidths["Title"])
			},
		},
		{
			Name:  "Badge",
			Width: config.ColumnWidths["Badge"],
			Extractor: func(r Row) string {
				return formatString(r.Badge, config.ColumnWidths["Badge"], "left")
			},
		},
		{
			Name:      "State",
			Width:     config.ColumnWidths["State"],
			Alignment: config.ColumnAlignments["State"],
			Extractor: func(r Row) string {
				return formatString(r.LoadState, config.ColumnWidths["State"], config.ColumnAlignments["State"])
			},
		},
	}
	return &ExtendedTableFormatter{
		config:  config,
		columns: columns,
	}
}

// WithColumns adds custom columns to the formatter.
func (f *ExtendedTableFormatter) WithColumns(columns ...TableColumn) *ExtendedTableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// FormatRows formats rows in an extended table format.
func (f *ExtendedTableFormatter) FormatRows(rows []Row, writer io.Writer) error {
	if len(rows) == 0 {
		return nil
	}

	if f.config.ShowHeaders {
		err := f.writeHeader(writer)
		if err != nil {
			return err
		}
	}

	err := f.writeSeparator(writer)
	if err != nil {
		return err
	}

	for _, r := range rows {
		err := f.writeRow(r, writer)
		if err != nil {
			return err
		}
	}

	return nil
}

// writeHeader writes the table header.
func (f *ExtendedTableFormatter) writeHeader(writer io.Writer) error {
	reset := colors.Reset
	for i, col := range f.columns {
		header := formatString(col.Name, col.Width, "left")
		if i == 0 {
			_, err := fmt.Fprintf(writer, "%s%s%s", f.config.HeaderColor, header, reset)
			if err != nil {
				return err
			}
		} else {
			_, err := fmt.Fprintf(writer, "  %s", header)
			if err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// writeSeparator writes the table separator.
func (f *ExtendedTableFormatter) writeSeparator(writer io.Writer) error {
	reset := colors.Reset
	for i, col := range f.columns {
		separator := makeSeparator(col.Width)
		if i == 0 {
			_, err := fmt.Fprintf(writer, "%s%s%s", f.config.HeaderColor, separator, reset)
			if err != nil {
				return err
			}
		} else {
			_, err := fmt.Fprintf(writer, "  %s", separator)
			if err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// writeRow writes a single table row.
func (f *ExtendedTableFormatter) writeRow(row Row, writer io.Writer) error {
	for i, col := range f.columns {
		value := col.Extractor(row)
		if i > 0 {
			_, err := fmt.Fprintf(writer, "  %s", value)
			if err != nil {
				return err
			}
		} else {
			_, err := fmt.Fprintf(writer, "%s", value)
			if err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// Helper functions

// formatIntToString formats an integer to a string with the specified width and alignment.
func formatIntToString(i int, width int, alignment string) string {
	s := fmt.Sprintf("%d", i)
	return formatString(s, width, alignment)
}

// formatString formats a string with the specified width and alignment.
func formatString(s string, width int, alignment string) string {
	if len(s) >= width {
		return s[:width]
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-len(s)) + s
	case "center":
		left := (width - len(s)) / 2
		right := width - len(s) - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-len(s))
	}
}

// truncateString truncates a string to the specified width, adding "..." if truncated.
func truncateString(s string, width int) string {
	if len(s) <= width {
		return s + strings.Repeat(" ", width-len(s))
	}
	if width < 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

// makeSeparator creates a separator line of the specified width.
func makeSeparator(width int) string {
	return strings.Repeat("-", width)
}
