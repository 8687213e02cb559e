package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var pulseCmd = &cobra.Command{
	Use:   "pulse [id]",
	Short: "Reset a will's inactivity clock",
	Long:  `Pulse proves you are alive: the will's expiry deadline moves to now plus the configured inactivity period.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newClient()
		defer svc.Close()

		deadline, err := svc.PulseWill(context.Background(), args[0])
		if err != nil {
			fatal("Error pulsing will", err)
		}

		fmt.Fprintf(os.Stdout, "new deadline: %s\n", deadline.Format(time.RFC3339))
	},
}

func init() {
	rootCmd.AddCommand(pulseCmd)
}
