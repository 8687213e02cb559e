package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lasttx/willkeeper/internal/server/auth"
	"github.com/spf13/cobra"
)

var (
	tokenAddress string
	tokenSecret  string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token for a wallet address",
	Long: `Token signs an access token binding the given wallet address, using the
same secret the server was started with. Intended for development and
operator use; production deployments mint tokens out of band.`,
	Run: func(cmd *cobra.Command, args []string) {
		token, err := auth.GenerateToken(tokenAddress, []byte(tokenSecret), tokenTTL)
		if err != nil {
			fatal("Error generating token", err)
		}
		fmt.Fprintln(os.Stdout, token)
	},
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenAddress, "address", "a", "", "Wallet address to bind")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Server signing secret")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 15*time.Minute, "Token validity")
	tokenCmd.MarkFlagRequired("address")
	tokenCmd.MarkFlagRequired("secret")
	rootCmd.AddCommand(tokenCmd)
}
