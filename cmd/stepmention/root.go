package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stepmention",
	Short: "stepmention converts interpolated text into step mentions",
	Long: `stepmention turns text carrying {{step.path}} expressions into rich-text
documents whose mentions are labelled from a step flow, and back again.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Directory containing the step files")
	rootCmd.PersistentFlags().String("entry", "trigger", "Step the traversal starts from")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}
