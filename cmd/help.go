/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// helpCmd routes "tabstrip help" through the custom help function set on
// the root command.
var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show this help message",
	Long:  `Show this help message.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Root().Help()
	},
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
}
