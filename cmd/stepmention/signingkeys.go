package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/stepmention/pkg/signingkeys"
	"github.com/spf13/cobra"
)

var signingKeysCmd = &cobra.Command{
	Use:   "signing-keys",
	Short: "Print the signing keys table",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := createLogger(cmd)
		if err != nil {
			return err
		}
		delay, _ := cmd.Flags().GetDuration("delay")

		refresh := make(chan bool, 1)
		ds := signingkeys.NewDataSource(refresh,
			signingkeys.WithDelay(delay),
			signingkeys.WithLogger(logger),
		)
		page := ds.Connect(cmd.Context())
		defer ds.Disconnect()

		refresh <- true
		if _, ok := <-page; !ok {
			return fmt.Errorf("signing keys refresh was cancelled")
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DISPLAY NAME\tCREATED\tID")
		for _, key := range ds.Data() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", key.DisplayName, key.Created, key.ID)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(signingKeysCmd)
	signingKeysCmd.Flags().Duration("delay", signingkeys.DefaultDelay, "Simulated refresh latency")
}
