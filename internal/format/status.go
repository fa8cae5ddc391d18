// Package format provides output formatting functionality for CLI commands.
// It includes formatters for different output styles and tab row display.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cristianoliveira/tabstrip/internal/icon"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// CountsByState tallies tabs per icon load state.
func CountsByState(states map[string]icon.LoadState) (loaded, loading, errored, idle int) {
	for _, state := range states {
		switch state {
		case icon.LoadLoaded:
			loaded++
		case icon.LoadLoading:
			loading++
		case icon.LoadError:
			errored++
		default:
			idle++
		}
	}
	return loaded, loading, errored, idle
}

// BadgeTotal sums badge attention across tabs. Count badges contribute
// their count, the dot indicator contributes one.
func BadgeTotal(badges map[string]tabs.Badge) int {
	total := 0
	for _, badge := range badges {
		switch badge.Kind {
		case tabs.BadgeCount:
			total += badge.Count
		case tabs.BadgeDot:
			total++
		}
	}
	return total
}

// FormatSummary writes a summary of tab counts to the writer.
// Format: "Tabs: X\n  loaded: A, loading: B, error: C\n"
// If total is 0, writes "No tabs configured\n"
func FormatSummary(w io.Writer, total, loaded, loading, errored int) error {
	if total == 0 {
		_, err := fmt.Fprintf(w, "No tabs configured\n")
		return err
	}
	_, err := fmt.Fprintf(w, "Tabs: %d\n", total)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "  loaded: %d, loading: %d, error: %d\n", loaded, loading, errored)
	return err
}

// FormatStates writes load-state counts in key:value format, one per line.
func FormatStates(w io.Writer, loaded, loading, errored, idle int) error {
	_, err := fmt.Fprintf(w, "loaded:%d\nloading:%d\nerror:%d\nidle:%d\n", loaded, loading, errored, idle)
	return err
}

// FormatBadges writes per-tab badge values in id:badge format, one per
// line, sorted by tab id for deterministic output. Absent badges are
// skipped.
func FormatBadges(w io.Writer, badges map[string]tabs.Badge) error {
	ids := make([]string, 0, len(badges))
	for id, badge := range badges {
		if badge.IsZero() {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		_, err := fmt.Fprintf(w, "%s:%s\n", id, badges[id].String())
		if err != nil {
			return err
		}
	}
	return nil
}

// StatusData holds aggregated strip information for JSON output.
type StatusData struct {
	Tabs       int    `json:"tabs"`
	Selected   string `json:"selected"`
	Loaded     int    `json:"loaded"`
	Loading    int    `json:"loading"`
	Errors     int    `json:"errors"`
	BadgeTotal int    `json:"badgeTotal"`
	Visible    bool   `json:"visible"`
}

// FormatJSON writes status data as JSON to the writer.
func FormatJSON(w io.Writer, data StatusData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
