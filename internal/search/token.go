package search

import (
	"strings"

	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// TokenProvider provides token-based search.
// The query is split into whitespace-separated tokens.
// Each token must match at least one field (AND logic).
// Special tokens: "badged" (match only tabs with a badge), "unbadged"
// (match only tabs without one).
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if all text tokens match at least one field
// and the tab passes the badged/unbadged filter if specified.
func (p *TokenProvider) Match(tab tabs.Spec, query string) bool {
	if query == "" {
		return true
	}

	// Parse tokens
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	// Parse special tokens (badged/unbadged)
	tokens := strings.Fields(query)
	badgedFilter := false
	unbadgedFilter := false
	textTokens := []string{}

	for _, token := range tokens {
		tokenLower := strings.ToLower(token)
		switch tokenLower {
		case "badged":
			badgedFilter = true
		case "unbadged":
			unbadgedFilter = true
		default:
			// Apply case sensitivity to text tokens
			if p.opts.CaseInsensitive {
				textTokens = append(textTokens, strings.ToLower(token))
			} else {
				textTokens = append(textTokens, token)
			}
		}
	}

	// If both badged and unbadged specified, ignore both (contradiction)
	if badgedFilter && unbadgedFilter {
		badgedFilter = false
		unbadgedFilter = false
	}

	// Apply badged/unbadged filter
	if badgedFilter && tab.Badge.IsZero() {
		return false
	}
	if unbadgedFilter && !tab.Badge.IsZero() {
		return false
	}

	// If no text tokens, match passed the badge filter
	if len(textTokens) == 0 {
		return true
	}

	// Each token must match at least one field (AND logic)
	for _, token := range textTokens {
		matched := false
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

			// Check if token is found in field
			if strings.Contains(value, token) {
				matched = true
				break
			}
		}

		// Token didn't match any field
		if !matched {
			return false
		}
	}

	// All tokens matched
	return true
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
