package main

import (
	"fmt"

	"github.com/aretw0/stepmention/internal/presentation/graph"
	"github.com/aretw0/stepmention/pkg/path"
	"github.com/aretw0/stepmention/pkg/richtext"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the flow graph visualization",
	Long: `Inspects the flow and outputs a Mermaid diagram (graph TD) with each step
numbered the way mentions number it. With --text, the steps referenced by
the text are highlighted; with --metadata, step metadata is listed in each
node.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := createEngine(cmd)
		if err != nil {
			return err
		}

		flow, err := eng.Inspect()
		if err != nil {
			return fmt.Errorf("error inspecting graph: %w", err)
		}
		catalog, err := eng.Catalog()
		if err != nil {
			return err
		}

		overlay := &graph.Overlay{}
		overlay.Metadata, _ = cmd.Flags().GetBool("metadata")
		if text, _ := cmd.Flags().GetString("text"); text != "" {
			doc, err := eng.ToDocument(text)
			if err != nil {
				return err
			}
			for _, m := range richtext.Mentions(doc) {
				expr := m.Attrs().ServerValue
				keys := path.Keys(expr[2 : len(expr)-2])
				overlay.MentionedSteps = append(overlay.MentionedSteps, keys[0])
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(flow, catalog, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("text", "", "Highlight the steps referenced by this text")
	graphCmd.Flags().Bool("metadata", false, "List step metadata inside each node")
}
