/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/

// Package status renders a one-line summary of the tab strip for
// embedding in a host status area, such as the demo footer.
package status

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/tabstrip/internal/colors"
	"github.com/cristianoliveira/tabstrip/internal/config"
	"github.com/cristianoliveira/tabstrip/internal/format"
	"github.com/cristianoliveira/tabstrip/internal/formatter"
	"github.com/cristianoliveira/tabstrip/internal/strip"
	"github.com/cristianoliveira/tabstrip/internal/tabs"
)

// Options holds parameters for the status line.
type Options struct {
	Format  string // "compact", "detailed", "count-only"
	Enabled bool   // true to enable output
}

// Client defines the surface the status line reads from.
type Client interface {
	Snapshot() strip.Snapshot
	GetConfigBool(key string, defaultValue bool) bool
	GetConfigString(key, defaultValue string) string
}

// StripClient implements Client over a live strip.
type StripClient struct {
	Strip *strip.Strip
}

func (c *StripClient) Snapshot() strip.Snapshot {
	return c.Strip.Snapshot()
}

func (c *StripClient) GetConfigBool(key string, defaultValue bool) bool {
	return config.GetBool(key, defaultValue)
}

func (c *StripClient) GetConfigString(key, defaultValue string) string {
	return config.Get(key, defaultValue)
}

// Run builds the status line for the given options.
// Returns the formatted output string (may be empty) and any error.
func Run(client Client, opts Options) (string, error) {
	// If disabled, return empty output
	if !opts.Enabled {
		return "", nil
	}

	snap := client.Snapshot()

	// A hidden strip renders nothing, so the status line follows suit.
	if !snap.Visible {
		return "", nil
	}
	if len(snap.Items) == 0 {
		return "", nil
	}

	loaded, loading, errored, _ := format.CountsByState(snap.LoadStates)
	badgeTotal := format.BadgeTotal(snap.Badges)

	// Determine format (default to compact if empty)
	outFormat := opts.Format
	if outFormat == "" {
		outFormat = client.GetConfigString("status_format", "compact")
	}

	switch outFormat {
	case "compact":
		return formatCompact(client, snap, badgeTotal, loading, errored), nil
	case "detailed":
		return formatDetailed(client, loaded, loading, errored, badgeTotal), nil
	case "count-only":
		return formatCountOnly(badgeTotal), nil
	default:
		return "", fmt.Errorf("unknown format: %s", outFormat)
	}
}

// parseStateColors parses the state_colors config into a name map.
func parseStateColors(client Client) map[string]string {
	colorsStr := client.GetConfigString("state_colors", "loaded:green,loading:yellow,error:red,badge:cyan")
	m := make(map[string]string)
	pairs := strings.Split(colorsStr, ",")
	for _, pair := range pairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			state := strings.TrimSpace(parts[0])
			color := strings.TrimSpace(parts[1])
			m[state] = color
		}
	}
	return m
}

// stateColor returns the ANSI escape for a state, or "" when the state
// has no configured color or the name is unknown.
func stateColor(client Client, state string) string {
	m := parseStateColors(client)
	name, ok := m[state]
	if !ok {
		return ""
	}
	return ansiColor(name)
}

func ansiColor(name string) string {
	switch name {
	case "red":
		return colors.Red
	case "green":
		return colors.Green
	case "yellow":
		return colors.Yellow
	case "blue":
		return colors.Blue
	case "cyan":
		return colors.Cyan
	default:
		return ""
	}
}

// formatCompact returns the selected tab plus a badge marker, colored by
// the most urgent load state present.
func formatCompact(client Client, snap strip.Snapshot, badgeTotal, loading, errored int) string {
	label := selectedLabel(snap)

	state := "loaded"
	if errored > 0 {
		state = "error"
	} else if loading > 0 {
		state = "loading"
	}

	text := "▶ " + label
	if badgeTotal > 0 {
		text += fmt.Sprintf(" +%d", badgeTotal)
	}

	color := stateColor(client, state)
	if color != "" {
		return color + text + colors.Reset
	}
	return text
}

// formatDetailed returns per-state count segments, skipping zero counts.
func formatDetailed(client Client, loaded, loading, errored, badgeTotal int) string {
	var output strings.Builder
	writeSegment := func(state, prefix string, count int) {
		if count == 0 {
			return
		}
		color := stateColor(client, state)
		if color != "" {
			output.WriteString(fmt.Sprintf("%s%s:%d%s ", color, prefix, count, colors.Reset))
		} else {
			output.WriteString(fmt.Sprintf("%s:%d ", prefix, count))
		}
	}
	writeSegment("loaded", "ok", loaded)
	writeSegment("loading", "ld", loading)
	writeSegment("error", "err", errored)
	writeSegment("badge", "b", badgeTotal)
	// Trim trailing space
	result := output.String()
	if len(result) > 0 && result[len(result)-1] == ' ' {
		result = result[:len(result)-1]
	}
	return result
}

// formatCountOnly returns the badge total, or empty when there is none.
func formatCountOnly(badgeTotal int) string {
	if badgeTotal == 0 {
		return ""
	}
	return fmt.Sprintf("%d", badgeTotal)
}

// selectedLabel returns the selected tab's title, falling back to its
// id, then to a dash when nothing is selected.
func selectedLabel(snap strip.Snapshot) string {
	id := snap.Selection.SelectedID
	if id == "" {
		return "-"
	}
	for _, item := range snap.Items {
		if item.ID == id {
			if item.Title != "" {
				return item.Title
			}
			return item.ID
		}
	}
	return id
}

// TemplateContext maps a snapshot onto the template variable set so
// custom status templates can be expanded with formatter.Substitute.
func TemplateContext(snap strip.Snapshot) formatter.VariableContext {
	loaded, loading, errored, _ := format.CountsByState(snap.LoadStates)

	dots := 0
	for _, badge := range snap.Badges {
		if badge.Kind == tabs.BadgeDot {
			dots++
		}
	}

	ids := make([]string, 0, len(snap.Items))
	selectedTitle := ""
	for _, item := range snap.Items {
		ids = append(ids, item.ID)
		if item.ID == snap.Selection.SelectedID {
			selectedTitle = item.Title
		}
	}

	badgeTotal := format.BadgeTotal(snap.Badges)
	return formatter.VariableContext{
		TabCount:      len(snap.Items),
		BadgeTotal:    badgeTotal,
		DotCount:      dots,
		LoadedCount:   loaded,
		LoadingCount:  loading,
		ErrorCount:    errored,
		SelectedID:    snap.Selection.SelectedID,
		SelectedTitle: selectedTitle,
		PreviousID:    snap.Selection.PreviousID,
		HasBadges:     badgeTotal > 0,
		HasErrors:     errored > 0,
		Visible:       snap.Visible,
		TabList:       strings.Join(ids, ","),
	}
}
