// Package format provides output formatting functionality for CLI commands.
// It includes formatters for different output styles and tab row display.
package format

import (
	"io"
)

// Row is one tab line as rendered by the CLI formatters. Callers fill
// the fields they have; formatters print what is set.
type Row struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Glyph     string `json:"glyph,omitempty"`
	Badge     string `json:"badge,omitempty"`
	LoadState string `json:"loadState,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatRows formats a slice of tab rows and writes to the writer.
	FormatRows(rows []Row, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeDefault displays rows in aligned columns without headers.
	FormatterTypeDefault FormatterType = "default"

	// FormatterTypeMinimal displays only tab ids, one per line.
	FormatterTypeMinimal FormatterType = "minimal"

	// FormatterTypeFancy displays rows in a table with colored headers.
	FormatterTypeFancy FormatterType = "fancy"

	// FormatterTypeJSON displays rows in JSON format.
	FormatterTypeJSON FormatterType = "json"
)

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeDefault:
		return NewDefaultFormatter()
	case FormatterTypeMinimal:
		return NewMinimalFormatter()
	case FormatterTypeFancy:
		return NewExtendedTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	default:
		// Default formatter for unknown types
		return NewDefaultFormatter()
	}
}

// GetFormatter resolves a format name (usually the table_format config
// value or a --format flag) to a formatter, falling back to default.
func GetFormatter(format string) Formatter {
	formatterType := FormatterType(format)

	valid := false
	for _, ft := range []FormatterType{
		FormatterTypeDefault,
		FormatterTypeMinimal,
		FormatterTypeFancy,
		FormatterTypeJSON,
	} {
		if ft == formatterType {
			valid = true
			break
		}
	}

	if !valid {
		formatterType = FormatterTypeDefault
	}

	return NewFormatter(formatterType)
}
