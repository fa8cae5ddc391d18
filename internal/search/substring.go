package search

import (
	"strings"

	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// SubstringProvider provides substring-based search.
// Matches if any configured field contains the query as a substring.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if any configured field contains the query substring.
func (p *SubstringProvider) Match(tab tabs.Spec, query string) bool {
	if query == "" {
		return true
	}

	// Prepare query based on case sensitivity
	searchQuery := query
	if p.opts.CaseInsensitive {
		searchQuery = strings.ToLower(query)
	}

	// Check each configured field
	for _, field := range p.opts.Fields {
		value := fieldValue(tab, field)

		// Skip empty fields
		if value == "" {
			continue
		}

		// Apply case sensitivity
		if p.opts.CaseInsensitive {
			value = strings.ToLower(value)
		}

		// Check for substring match
		if strings.Contains(value, searchQuery) {
			return true
		}
	}

	return false
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return "substring"
}
