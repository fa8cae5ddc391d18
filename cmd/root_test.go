package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tabstrip/internal/config"
	"github.com/cristianoliveira/tabstrip/internal/version"
)

// setupTestEnv points every XDG path at a throwaway directory so tests
// never touch the real configuration.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("XDG_STATE_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)
	config.Load()
	return tmpDir
}

func TestPrintHelpText(t *testing.T) {
	// Create a root command with some subcommands
	root := &cobra.Command{
		Use:   "tabstrip",
		Short: "Test root",
		Long:  "Test root long",
	}
	// Add subcommands in the order expected by printHelpText
	demoCmd := &cobra.Command{Use: "demo", Short: "Interactive strip demo in the terminal"}
	renderCmd := &cobra.Command{Use: "render", Short: "Render icon variants to PNG files"}
	checkCmd := &cobra.Command{Use: "check <source>...", Short: "Validate icon sources"}
	settingsCmd := &cobra.Command{Use: "settings", Short: "Manage demo settings"}
	configCmd := &cobra.Command{Use: "config", Short: "Inspect and bootstrap configuration"}
	helpCmd := &cobra.Command{Use: "help", Short: "Show this help message"}
	versionCmd := &cobra.Command{Use: "version", Short: "Show version information"}

	root.AddCommand(demoCmd, renderCmd, checkCmd, settingsCmd, configCmd, helpCmd, versionCmd)

	// Capture output
	var buf bytes.Buffer
	outputWriter = &buf
	defer func() { outputWriter = nil }()

	printHelpText(root)
	output := buf.String()

	// Basic assertions
	if !strings.Contains(output, "tabstrip "+version.String()) {
		t.Error("Help output should contain version")
	}
	if !strings.Contains(output, "A bottom tab strip with live icons, badges, and press-to-select gestures.") {
		t.Error("Help output should contain description")
	}
	if !strings.Contains(output, "USAGE:") {
		t.Error("Help output should contain USAGE section")
	}
	if !strings.Contains(output, "COMMANDS:") {
		t.Error("Help output should contain COMMANDS section")
	}
	if !strings.Contains(output, "OPTIONS:") {
		t.Error("Help output should contain OPTIONS section")
	}
	// Check that each command appears
	for _, name := range []string{"demo", "render", "check", "settings", "config", "help", "version"} {
		if !strings.Contains(output, name) {
			t.Errorf("Help output should contain command %q", name)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"demo", "render", "check", "settings", "config", "version"} {
		if !names[want] {
			t.Errorf("Command %q should be registered on the root command", want)
		}
	}
}
