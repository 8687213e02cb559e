package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Revoke a will",
	Long:  `Delete cancels the will's timers and retires it permanently. A claimed will cannot be deleted.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newClient()
		defer svc.Close()

		if err := svc.DeleteWill(context.Background(), args[0]); err != nil {
			fatal("Error deleting will", err)
		}

		fmt.Fprintln(os.Stdout, "deleted")
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
