package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/stepmention"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stepmention",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stepmention version %s\n", strings.TrimSpace(stepmention.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
