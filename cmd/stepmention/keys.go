package main

import (
	"fmt"

	"github.com/aretw0/stepmention/pkg/path"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys <path>",
	Short: "Split a path expression into its keys",
	Long:  `Prints one key per line. With --join the keys are printed back as a normalized path.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		keys := path.Keys(args[0])
		if join, _ := cmd.Flags().GetBool("join"); join {
			fmt.Fprintln(cmd.OutOrStdout(), path.Join(keys))
			return
		}
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", k)
		}
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.Flags().Bool("join", false, "Print the normalized path instead of the keys")
}
