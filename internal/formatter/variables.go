// Package formatter provides template parsing, variable resolution, and preset management
// for formatting strip status output with customizable templates and variables.
package formatter

import (
	"fmt"
	"strconv"
)

// VariableContext contains all data needed for template variable resolution.
type VariableContext struct {
	// Count-related variables
	TabCount     int
	BadgeTotal   int
	DotCount     int
	LoadedCount  int
	LoadingCount int
	ErrorCount   int

	// Selection variables
	SelectedID    string
	SelectedTitle string
	PreviousID    string

	// State variables
	HasBadges bool
	HasErrors bool
	Visible   bool

	// List variable: comma-separated tab ids in strip order
	TabList string
}

// VariableResolver resolves template variables to their values.
type VariableResolver interface {
	// Resolve returns the string value for a given variable name and context.
	Resolve(varName string, ctx VariableContext) (string, error)
}

// variableResolver implements VariableResolver interface.
type variableResolver struct{}

// NewVariableResolver creates a new variable resolver instance.
func NewVariableResolver() VariableResolver {
	return &variableResolver{}
}

// Resolve returns the string value for a variable from the context.
// Handles all strip template variables and their aliases.
func (vr *variableResolver) Resolve(varName string, ctx VariableContext) (string, error) {
	switch varName {
	// Count variables
	case "tab-count":
		return strconv.Itoa(ctx.TabCount), nil

	case "badge-total":
		return strconv.Itoa(ctx.BadgeTotal), nil

	case "badge-count":
		// Alias for badge-total
		return strconv.Itoa(ctx.BadgeTotal), nil

	case "dot-count":
		return strconv.Itoa(ctx.DotCount), nil

	// Load-state count variables
	case "loaded-count":
		return strconv.Itoa(ctx.LoadedCount), nil

	case "loading-count":
		return strconv.Itoa(ctx.LoadingCount), nil

	case "error-count":
		return strconv.Itoa(ctx.ErrorCount), nil

	// Selection variables
	case "selected-id":
		return ctx.SelectedID, nil

	case "selected-title":
		return ctx.SelectedTitle, nil

	case "previous-id":
		return ctx.PreviousID, nil

	// Boolean variables (as strings)
	case "has-badges":
		return boolToString(ctx.HasBadges), nil

	case "has-errors":
		return boolToString(ctx.HasErrors), nil

	case "visible":
		return boolToString(ctx.Visible), nil

	// Attention variable with ordinal mapping
	case "attention-level":
		return attentionToOrdinal(ctx), nil

	// List variable
	case "tab-list":
		return ctx.TabList, nil

	default:
		return "", fmt.Errorf("unknown variable: %s", varName)
	}
}

// boolToString converts a boolean to the string "true" or "false".
func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// attentionToOrdinal maps the context to ordinal attention numbers.
// Lower numbers = more urgent.
// errors=1, still loading=2, badges pending=3, quiet=4
func attentionToOrdinal(ctx VariableContext) string {
	switch {
	case ctx.ErrorCount > 0:
		return "1"
	case ctx.LoadingCount > 0:
		return "2"
	case ctx.BadgeTotal > 0:
		return "3"
	default:
		return "4"
	}
}
