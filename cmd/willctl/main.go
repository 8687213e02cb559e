package main

import (
	"fmt"
	"os"

	"github.com/lasttx/willkeeper/internal/client"
)

func main() {
	Execute()
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// newClient dials the server with the token from the persistent flags.
func newClient() *client.WillKeeperClientService {
	svc, err := client.NewWillKeeperClientService(serverAddr, accessToken)
	if err != nil {
		fatal("Error creating client", err)
	}
	if err := svc.InitGRPCClient(); err != nil {
		fatal("Error connecting", err)
	}
	return svc
}
