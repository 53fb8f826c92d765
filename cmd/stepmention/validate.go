package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the flow for consistency",
	Long:  `Crawls the flow starting from the entry step and reports dead links or unreachable steps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := createEngine(cmd)
		if err != nil {
			return err
		}
		if err := eng.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Flow is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
