package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableConfig(t *testing.T) {
	config := DefaultTableConfig()

	assert.True(t, config.ShowHeaders)
	assert.Equal(t, "\x1b[0;34m", config.HeaderColor)
	assert.Equal(t, 16, config.ColumnWidths["ID"])
	assert.Equal(t, 24, config.ColumnWidths["Title"])
	assert.Equal(t, "right", config.ColumnAlignments["Index"])
	assert.Equal(t, "left", config.ColumnAlignments["ID"])
}

func TestExtendedTableFormatter(t *testing.T) {
	formatter := NewExtendedTableFormatter()
	var buf bytes.Buffer

	rows := []Row{
		{Index: 0, ID: "home", Title: "Home", Badge: "3", LoadState: "loaded"},
		{Index: 1, ID: "library", Title: "Library", Badge: "dot", LoadState: "loading"},
	}

	err := formatter.FormatRows(rows, &buf)
	require.NoError(t, err)

	output := buf.String()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 4) // header, separator, two rows

	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, lines[0], "State")
	assert.Contains(t, lines[1], "----")
	assert.Contains(t, lines[2], "home")
	assert.Contains(t, lines[2], "loaded")
	assert.Contains(t, lines[3], "library")
	assert.Contains(t, lines[3], "dot")
}

func TestExtendedTableFormatterEmptyRows(t *testing.T) {
	formatter := NewExtendedTableFormatter()
	var buf bytes.Buffer

	err := formatter.FormatRows(nil, &buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestExtendedTableFormatterTruncatesLongTitles(t *testing.T) {
	formatter := NewExtendedTableFormatter()
	var buf bytes.Buffer

	rows := []Row{
		{Index: 0, ID: "home", Title: "a title far longer than the column has room for", LoadState: "idle"},
	}

	err := formatter.FormatRows(rows, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, "room for")
}

func TestExtendedTableFormatterWithColumns(t *testing.T) {
	formatter := NewExtendedTableFormatter().WithColumns(TableColumn{
		Name:  "Kind",
		Width: 12,
		Extractor: func(r Row) string {
			return formatString(r.Kind, 12, "left")
		},
	})
	var buf bytes.Buffer

	rows := []Row{
		{Index: 0, ID: "home", Title: "Home", Kind: "symbolic", LoadState: "loaded"},
	}

	err := formatter.FormatRows(rows, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Kind")
	assert.Contains(t, output, "symbolic")
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		width     int
		alignment string
		expected  string
	}{
		{"left pad", "ab", 4, "left", "ab  "},
		{"right pad", "ab", 4, "right", "  ab"},
		{"center pad", "ab", 4, "center", " ab "},
		{"exact width", "abcd", 4, "left", "abcd"},
		{"over width truncates", "abcdef", 4, "left", "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatString(tt.input, tt.width, tt.alignment))
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits with pad", "ab", 4, "ab  "},
		{"truncates with ellipsis", "abcdefgh", 6, "abc..."},
		{"tiny width", "abcdefgh", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateString(tt.input, tt.width))
		})
	}
}
