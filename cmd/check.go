/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tabstrip/internal/app"
	"github.com/cristianoliveira/tabstrip/internal/config"
)

// NewCheckCmd creates the check command with explicit dependencies.
func NewCheckCmd(client app.CheckClient) *cobra.Command {
	if client == nil {
		panic("NewCheckCmd: client dependency cannot be nil")
	}

	var (
		fetch  bool
		format string
	)

	checkCmd := &cobra.Command{
		Use:   "check <source>...",
		Short: "Validate icon sources",
		Long: `Validate icon sources.

Classifies each source the way the strip would and prints one row per
result. Exits non-zero when any source is invalid.

USAGE:
    tabstrip check [OPTIONS] <source>...

OPTIONS:
    --fetch            Also download remote sources through the cache
    --format <name>    Output format: default, minimal, fancy, json
    -h, --help         Show this help

EXAMPLES:
    # Classify a URL and an inline icon
    tabstrip check https://example.com/icon.png "data:image/png;base64,..."

    # Prove a remote source serves a usable image
    tabstrip check --fetch https://example.com/icon.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat := format
			if outputFormat == "" {
				config.Load()
				outputFormat = config.Get("table_format", "default")
			}
			input := app.CheckInput{
				Sources: args,
				Fetch:   fetch,
				Format:  outputFormat,
			}
			return app.NewCheckUseCase(client).Execute(cmd.Context(), input, cmd.OutOrStdout())
		},
	}

	checkCmd.Flags().BoolVar(&fetch, "fetch", false, "Also download remote sources through the cache")
	checkCmd.Flags().StringVar(&format, "format", "", "Output format: default, minimal, fancy, json")

	return checkCmd
}

// checkCmd represents the check command
var checkCmd = NewCheckCmd(&iconClient{})

func init() {
	rootCmd.AddCommand(checkCmd)
}
