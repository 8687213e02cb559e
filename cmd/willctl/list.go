package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your wills",
	Run: func(cmd *cobra.Command, args []string) {
		svc := newClient()
		defer svc.Close()

		wills, err := svc.ListWills(context.Background())
		if err != nil {
			fatal("Error listing wills", err)
		}

		if len(wills) == 0 {
			fmt.Fprintln(os.Stdout, "no wills")
			return
		}
		for _, w := range wills {
			fmt.Fprintf(os.Stdout, "%s  %-8s  deadline %s  beneficiaries %d\n",
				w.Id, w.Status, time.Unix(w.DeadlineUnix, 0).Format(time.RFC3339), len(w.Beneficiaries))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
