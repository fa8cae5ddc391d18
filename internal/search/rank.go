package search

import (
	"sort"
	"strings"

	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// Rank scores for ordering matches in the quick-switch prompt.
const (
	rankExactID     = 0
	rankIDPrefix    = 1
	rankTitlePrefix = 2
	rankSubstring   = 3
)

// Filter returns the tabs matching the query through the given provider,
// ordered best match first. An empty query returns all tabs in their
// original order. Ties keep the original tab order.
func Filter(provider Provider, items []tabs.Spec, query string) []tabs.Spec {
	if query == "" {
		result := make([]tabs.Spec, len(items))
		copy(result, items)
		return result
	}

	type scored struct {
		tab   tabs.Spec
		score int
	}

	matches := []scored{}
	for _, tab := range items {
		if !provider.Match(tab, query) {
			continue
		}
		matches = append(matches, scored{tab: tab, score: rankScore(tab, query)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})

	result := make([]tabs.Spec, len(matches))
	for i, m := range matches {
		result[i] = m.tab
	}
	return result
}

// rankScore orders matches: exact id beats an id prefix, which beats a
// title prefix, which beats any other match. Comparison ignores case so
// ranking stays stable regardless of the provider's case option.
func rankScore(tab tabs.Spec, query string) int {
	q := strings.ToLower(query)
	id := strings.ToLower(tab.ID)
	title := strings.ToLower(tab.Title)

	switch {
	case id == q:
		return rankExactID
	case strings.HasPrefix(id, q):
		return rankIDPrefix
	case title != "" && strings.HasPrefix(title, q):
		return rankTitlePrefix
	default:
		return rankSubstring
	}
}
