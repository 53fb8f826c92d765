package main

import (
	"fmt"
	"os"

	"github.com/aretw0/stepmention/pkg/mention"
	"github.com/aretw0/stepmention/pkg/richtext"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [document.json]",
	Short: "Convert a document back into interpolated text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mention.ToText(doc))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

// readDocument decodes a document from the file named in args, or stdin.
func readDocument(args []string) (richtext.Node, error) {
	var (
		raw string
		err error
	)
	if len(args) > 0 {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return nil, readErr
		}
		raw = string(data)
	} else {
		raw, err = readInput(nil, os.Stdin)
		if err != nil {
			return nil, err
		}
	}

	doc, err := richtext.Unmarshal([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return doc, nil
}
