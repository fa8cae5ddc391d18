/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tabstrip/internal/version"
)

// outputWriter is where help text goes. Tests swap it for a buffer; nil
// means os.Stdout.
var outputWriter io.Writer

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tabstrip",
	Short: "A bottom tab strip with live icons, badges, and press-to-select gestures.",
	Long:  `A bottom tab strip with live icons, badges, and press-to-select gestures.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Set version for use in help output
	rootCmd.Version = version.String()

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	// Set custom help function that matches the plain-text help output
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelpText(cmd)
	})
}

func printHelpText(cmd *cobra.Command) {
	// Order of commands in the help output
	commandOrder := []string{
		"demo",
		"render",
		"check",
		"settings",
		"config",
		"help",
		"version",
	}

	// Build command descriptions
	var cmdLines []string
	for _, name := range commandOrder {
		// Find command
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		// Format: command use + padding + short description
		use := found.Use
		short := found.Short
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", use, short))
	}

	helpText := fmt.Sprintf(`tabstrip %s

A bottom tab strip with live icons, badges, and press-to-select gestures.

USAGE:
    tabstrip [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
`, version.String(), strings.Join(cmdLines, "\n"))

	w := outputWriter
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprint(w, helpText)
}
