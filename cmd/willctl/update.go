package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var (
	updateDuration      time.Duration
	updateBeneficiaries []string
	updateMessage       string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Change a will's terms",
	Long:  `Update replaces the will's inactivity period, beneficiaries and message. Updating counts as activity and resets the expiry deadline.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		beneficiaries, err := parseBeneficiaries(updateBeneficiaries)
		if err != nil {
			fatal("Error parsing beneficiaries", err)
		}

		svc := newClient()
		defer svc.Close()

		will, err := svc.UpdateWill(context.Background(), args[0], updateDuration, beneficiaries, updateMessage)
		if err != nil {
			fatal("Error updating will", err)
		}

		printWill(will)
	},
}

func init() {
	updateCmd.Flags().DurationVarP(&updateDuration, "duration", "d", 0, "Inactivity period before expiry")
	updateCmd.Flags().StringArrayVarP(&updateBeneficiaries, "beneficiary", "b", nil, "Beneficiary as address:percentage (repeatable)")
	updateCmd.Flags().StringVarP(&updateMessage, "message", "m", "", "Personal message revealed to beneficiaries")
	updateCmd.MarkFlagRequired("duration")
	updateCmd.MarkFlagRequired("beneficiary")
	rootCmd.AddCommand(updateCmd)
}
