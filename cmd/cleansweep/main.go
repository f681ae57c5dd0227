package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkozlowski/cleansweep/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "cleansweep",
	Short: "Interactive system cleaner for Linux",
	Long:  `Free disk space by cleaning caches, logs and temporary files, interactively or from scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation drops into the interactive cleaner.
		return cli.TuiCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(cli.TuiCmd)
	rootCmd.AddCommand(cli.ListCmd)
	rootCmd.AddCommand(cli.CleanCmd)
	rootCmd.AddCommand(cli.ConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
