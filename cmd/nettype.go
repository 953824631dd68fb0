package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/network"
	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var typeCmd = &cobra.Command{
	Use:   "type",
	Short: "Classify the connected network by its genesis block",
	Long: `Resolve the network name from the node's network id and genesis
block hash. Known networks: main, morden, ropsten, rinkeby, kovan.
Anything else (including a known genesis hash with a mismatched id)
is reported as private.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()

		net, endpoint, err := newNet(ctx)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner("Classifying network…")
		spin.Start()
		netType, err := net.NetworkType(ctx).Wait(ctx)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("classifying network: %w", err)
		}

		label := ui.NetName(string(netType))
		if netType == network.TypePrivate {
			label = ui.Warn(string(netType))
		}
		fmt.Printf("%s %s\n", label, ui.Meta("("+endpoint+")"))
		return nil
	},
}
