package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/keys"
	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage endpoint bearer tokens",
	Long: `Store a bearer token for an endpoint host in the OS keychain.
When a token exists for the selected endpoint's host, it is sent as an
Authorization header on every request.

Examples:
  w3net auth set eth-mainnet.example.com s3cr3t-token
  w3net auth list
  w3net auth rm eth-mainnet.example.com`,
}

// authStore is resolved lazily so the OS keychain is only opened when an
// auth command runs; tests swap in a MemStore.
var authStore keys.Store

func tokenStore() keys.Store {
	if authStore == nil {
		authStore = keys.DefaultKeystore()
	}
	return authStore
}

var authSetCmd = &cobra.Command{
	Use:   "set <host> <token>",
	Short: "Store a bearer token for an endpoint host",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		host, token := args[0], args[1]
		if err := tokenStore().Set(host, token); err != nil {
			return fmt.Errorf("storing token: %w", err)
		}
		fmt.Println(ui.Success("Token stored for " + host))
		return nil
	},
}

var authRmCmd = &cobra.Command{
	Use:   "rm <host>",
	Short: "Remove the stored token for an endpoint host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		host := args[0]
		if err := tokenStore().Delete(host); err != nil {
			return fmt.Errorf("removing token: %w", err)
		}
		fmt.Println(ui.Success("Token removed for " + host))
		return nil
	},
}

var authListCmd = &cobra.Command{
	Use:   "list",
	Short: "List endpoint hosts with a stored token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		hosts, err := tokenStore().Hosts()
		if err != nil {
			return fmt.Errorf("listing tokens: %w", err)
		}
		if len(hosts) == 0 {
			fmt.Println(ui.Meta("no tokens stored"))
			return nil
		}
		for _, host := range hosts {
			fmt.Println("  " + host)
		}
		return nil
	},
}

func init() {
	authCmd.AddCommand(authSetCmd, authRmCmd, authListCmd)
}
