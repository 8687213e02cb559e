package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a will",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := newClient()
		defer svc.Close()

		will, err := svc.GetWill(context.Background(), args[0])
		if err != nil {
			fatal("Error getting will", err)
		}

		if getJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(will); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
				os.Exit(1)
			}
			return
		}
		printWill(will)
	},
}

func init() {
	getCmd.Flags().BoolVar(&getJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(getCmd)
}
