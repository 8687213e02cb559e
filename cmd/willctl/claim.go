package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var claimCmd = &cobra.Command{
	Use:   "claim [id]",
	Short: "Claim your share of an expired will",
	Long: `Claim transfers your percentage of an expired will. Each will can be
claimed exactly once; if another beneficiary already claimed it the command
fails with an Aborted status.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newClient()
		defer svc.Close()

		receipt, err := svc.ClaimWill(context.Background(), args[0])
		if err != nil {
			fatal("Error claiming will", err)
		}

		fmt.Fprintf(os.Stdout, "claimed %.2f%%\n", receipt.Percentage)
		fmt.Fprintf(os.Stdout, "confirmation: %s\n", receipt.Confirmation)
		fmt.Fprintf(os.Stdout, "executed at:  %s\n", time.Unix(receipt.ExecutedAtUnix, 0).Format(time.RFC3339))
	},
}

func init() {
	rootCmd.AddCommand(claimCmd)
}
