package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/aretw0/stepmention"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the steps mentions can reference",
	Long: `Walks the flow from the entry step and prints every step with its
traversal index. With --watch the table is printed again whenever a step file
changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := createEngine(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := printCatalog(out, eng); err != nil {
			return err
		}

		if watch, _ := cmd.Flags().GetBool("watch"); !watch {
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := eng.Watch(ctx)
		if err != nil {
			return err
		}
		for id := range events {
			fmt.Fprintf(out, "\n# changed: %s\n", id)
			if err := printCatalog(out, eng); err != nil {
				// A half-written file is common while editing; keep watching.
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolP("watch", "w", false, "Print the catalog again on every change")
}

func printCatalog(out io.Writer, eng *stepmention.Engine) error {
	catalog, err := eng.Catalog()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tDISPLAY NAME\tLOGO")
	for _, meta := range catalog.All() {
		index := "-"
		if meta.HasIndex() {
			index = fmt.Sprint(meta.IndexInTraversal)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", index, meta.Name, meta.DisplayName, meta.LogoURL)
	}
	return tw.Flush()
}
