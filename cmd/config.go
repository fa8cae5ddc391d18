/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/tabstrip/internal/colors"
	"github.com/cristianoliveira/tabstrip/internal/config"
)

type configClient interface {
	ResolvedConfig() map[string]string
	WriteSampleConfig(force bool) (string, bool, error)
}

const (
	configCommandLong = `Inspect and bootstrap the configuration file.

USAGE:
    tabstrip config <subcommand>

SUBCOMMANDS:
    show    Display the resolved configuration
    init    Write a sample configuration file

EXAMPLES:
    # Show the configuration after defaults, file, and environment
    tabstrip config show

    # Make sure a configuration file exists
    tabstrip config init

    # Overwrite the configuration file with the defaults
    tabstrip config init --force`
	configShowCommandLong = `Display the resolved configuration as key = value lines.

Values reflect the defaults, the configuration file, and TABSTRIP_*
environment overrides, in that order.

USAGE:
    tabstrip config show`
	configInitCommandLong = `Write a sample configuration file holding the default values,
creating the configuration directory as needed.

An existing file is kept unless --force overwrites it with the defaults.

USAGE:
    tabstrip config init [OPTIONS]

OPTIONS:
    --force    Overwrite an existing configuration file
    -h, --help Show this help`
)

// NewConfigCmd creates the config command with explicit dependencies.
func NewConfigCmd(client configClient) *cobra.Command {
	if client == nil {
		panic("NewConfigCmd: client dependency cannot be nil")
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and bootstrap configuration",
		Long:  configCommandLong,
	}

	configCmd.AddCommand(newConfigShowCmd(client))
	configCmd.AddCommand(newConfigInitCmd(client))

	return configCmd
}

// newConfigShowCmd creates the show subcommand.
func newConfigShowCmd(client configClient) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the resolved configuration",
		Long:  configShowCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved := client.ResolvedConfig()
			keys := make([]string, 0, len(resolved))
			for key := range resolved {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, resolved[key])
			}
			return nil
		},
	}
}

// newConfigInitCmd creates the init subcommand.
func newConfigInitCmd(client configClient) *cobra.Command {
	var initForce bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Long:  configInitCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := client.WriteSampleConfig(initForce)
			if err != nil {
				return fmt.Errorf("failed to write sample config: %w", err)
			}
			if created {
				colors.Success("Sample configuration written: " + path)
				return nil
			}
			colors.Info("Configuration file ready: " + path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")
	return initCmd
}

// loadedConfig reads and writes the configuration on disk.
type loadedConfig struct{}

func (loadedConfig) ResolvedConfig() map[string]string {
	config.Load()
	return config.All()
}

func (loadedConfig) WriteSampleConfig(force bool) (string, bool, error) {
	config.Load()
	return config.WriteSample(force)
}

// configCmd represents the config command
var configCmd = NewConfigCmd(loadedConfig{})

func init() {
	rootCmd.AddCommand(configCmd)
}
