package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	pb "github.com/lasttx/willkeeper/internal/proto"
	"github.com/lasttx/willkeeper/internal/server/models"
	"github.com/spf13/cobra"
)

var (
	createDuration      time.Duration
	createBeneficiaries []string
	createMessage       string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new will",
	Long: `Create registers a will that expires after the given period of wallet
inactivity. Beneficiaries are given as address:percentage, optionally with
a name and email (address:percentage:name:email).`,
	Run: func(cmd *cobra.Command, args []string) {
		beneficiaries, err := parseBeneficiaries(createBeneficiaries)
		if err != nil {
			fatal("Error parsing beneficiaries", err)
		}

		svc := newClient()
		defer svc.Close()

		will, err := svc.CreateWill(context.Background(), createDuration, beneficiaries, createMessage)
		if err != nil {
			fatal("Error creating will", err)
		}

		printWill(will)
	},
}

func init() {
	createCmd.Flags().DurationVarP(&createDuration, "duration", "d", 0, "Inactivity period before expiry (e.g. 720h)")
	createCmd.Flags().StringArrayVarP(&createBeneficiaries, "beneficiary", "b", nil, "Beneficiary as address:percentage (repeatable)")
	createCmd.Flags().StringVarP(&createMessage, "message", "m", "", "Personal message revealed to beneficiaries")
	createCmd.MarkFlagRequired("duration")
	createCmd.MarkFlagRequired("beneficiary")
	rootCmd.AddCommand(createCmd)
}

func parseBeneficiaries(specs []string) ([]models.Beneficiary, error) {
	out := make([]models.Beneficiary, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 4)
		if len(parts) < 2 {
			return nil, fmt.Errorf("%q is not address:percentage", spec)
		}
		pct, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad percentage in %q: %w", spec, err)
		}
		b := models.Beneficiary{Address: parts[0], Percentage: pct}
		if len(parts) > 2 {
			b.Name = parts[2]
		}
		if len(parts) > 3 {
			b.Email = parts[3]
		}
		out = append(out, b)
	}
	return out, nil
}

func printWill(w *pb.Will) {
	fmt.Fprintf(os.Stdout, "id:       %s\n", w.Id)
	fmt.Fprintf(os.Stdout, "owner:    %s\n", w.Owner)
	fmt.Fprintf(os.Stdout, "status:   %s\n", w.Status)
	fmt.Fprintf(os.Stdout, "deadline: %s\n", time.Unix(w.DeadlineUnix, 0).Format(time.RFC3339))
	for _, b := range w.Beneficiaries {
		fmt.Fprintf(os.Stdout, "  -> %s %.2f%%\n", b.Address, b.Percentage)
	}
	if w.ClaimedBy != "" {
		fmt.Fprintf(os.Stdout, "claimed:  by %s at %s\n", w.ClaimedBy, time.Unix(w.ClaimedAtUnix, 0).Format(time.RFC3339))
	}
	if w.HasAttachment {
		fmt.Fprintln(os.Stdout, "attachment: yes")
	}
}
