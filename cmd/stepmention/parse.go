package main

import (
	"fmt"
	"os"

	"github.com/aretw0/stepmention/pkg/mention"
	"github.com/aretw0/stepmention/pkg/richtext"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text]",
	Short: "Convert interpolated text into a document",
	Long: `Reads text from the arguments (or stdin), resolves every {{step.path}}
expression against the flow in --dir (or the --steps file) and prints the
resulting document as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, os.Stdin)
		if err != nil {
			return err
		}
		catalog, logger, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}

		doc, err := mention.New(mention.WithLogger(logger)).ToDocument(text, catalog)
		if err != nil {
			return err
		}

		out, err := richtext.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().String("steps", "", "YAML file listing step metadata (skips the flow directory)")
}
