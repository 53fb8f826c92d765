package main

import (
	"fmt"
	"os"

	"github.com/aretw0/stepmention/internal/presentation/tui"
	"github.com/aretw0/stepmention/pkg/mention"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [text]",
	Short: "Render interpolated text the way the editor shows it",
	Long: `Converts the text like 'parse' does and renders the document in the
terminal, with mentions replaced by their labels.`,
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

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			profile := termenv.NewOutput(os.Stdout).EnvColorProfile()
			fmt.Fprintln(cmd.OutOrStdout(), tui.Highlight(doc, profile))
			return nil
		}

		render, err := tui.NewRenderer()
		if err != nil {
			return err
		}
		out, err := render(doc)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("steps", "", "YAML file listing step metadata (skips the flow directory)")
	previewCmd.Flags().Bool("plain", false, "Skip markdown rendering and only colour the mentions")
}
