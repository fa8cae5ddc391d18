/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tabstrip/internal/app"
	"github.com/cristianoliveira/tabstrip/internal/colors"
	"github.com/cristianoliveira/tabstrip/internal/settings"
	"github.com/cristianoliveira/tabstrip/internal/tabstrip"
	tuiapp "github.com/cristianoliveira/tabstrip/internal/tui/app"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive strip demo in the terminal",
	Long: `Interactive strip demo in the terminal.

Drives a full strip with a built-in tab set, or one loaded from a TOML
file. Selections run hooks and land in the events panel.

USAGE:
    tabstrip demo [OPTIONS]

OPTIONS:
    --tabs <file>   Load tabs from a TOML file instead of the built-in set
    -h, --help      Show this help

KEY BINDINGS:
    1-9         Tap a tab by position
    h/l         Move the cursor left/right (arrow keys work too)
    g/G         Jump to the first/last tab
    Enter/Space Tap the tab under the cursor
    s           Select the tab under the cursor without emitting an event
    /           Open the switch prompt; Enter commits, ESC cancels
    b           Cycle the badge on the tab under the cursor
    t/B         Toggle title/badge display
    v           Toggle strip visibility
    p           Move the strip between top and bottom
    f           Cycle the status line format
    m           Cycle the prompt matcher
    e           Toggle the status/events panel
    r           Reapply the current configuration
    ?           Toggle the help footer
    ESC         Cancel a held press, or quit
    q           Quit`,
	RunE: runDemo,
}

var demoTabsFile string

// newDemoClient builds the TUI client. Tests replace it to inject a
// fake program runner.
var newDemoClient = func() tuiapp.Client {
	return tuiapp.NewDefaultClient(nil, nil)
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoTabsFile, "tabs", "", "Load tabs from a TOML file instead of the built-in set")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := tabstrip.Init(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	defer tabstrip.Shutdown()
	// The model installs a TUI error handler; console reporting must be
	// back before shutdown warnings fire.
	defer tabstrip.SetErrorHandler(nil)

	specs := app.DefaultTabSpecs()
	if demoTabsFile != "" {
		var err error
		specs, err = app.LoadTabSpecs(demoTabsFile)
		if err != nil {
			return err
		}
	}

	client := newDemoClient()
	loaded, err := client.LoadSettings()
	if err != nil {
		colors.Warning(fmt.Sprintf("Failed to load settings: %v", err))
		loaded = settings.DefaultSettings()
	}

	model, err := client.CreateModel(specs)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	model.SetLoadedSettings(loaded)
	if err := model.FromState(settings.FromSettings(loaded)); err != nil {
		colors.Warning(fmt.Sprintf("Ignoring saved settings: %v", err))
	}

	return client.RunProgram(model)
}
