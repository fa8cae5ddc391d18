// Package search provides a unified search abstraction for filtering tabs.
// It supports multiple search strategies (substring, regex, token-based) through
// a common Provider interface, so the quick-switch prompt and CLI share one
// matching implementation.
package search

import (
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// Provider defines the interface for search providers.
// Implementations can use different strategies (substring, regex, token-based, etc.)
// to match tabs against search queries.
type Provider interface {
	// Match returns true if the tab matches the search query.
	Match(tab tabs.Spec, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in (default: id and title)
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: false,
		Fields:          []string{"id", "title"},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
// Valid fields: "id", "title", "symbolic", "badge".
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fieldValue extracts the searchable value of a named tab field.
// Unknown field names yield an empty value, which providers skip.
func fieldValue(tab tabs.Spec, field string) string {
	switch field {
	case "id":
		return tab.ID
	case "title":
		return tab.Title
	case "symbolic":
		return tab.SymbolicIcon
	case "badge":
		return tab.Badge.String()
	}
	return ""
}
