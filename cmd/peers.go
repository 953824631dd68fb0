package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Show the number of connected peers (net_peerCount)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()

		net, endpoint, err := newNet(ctx)
		if err != nil {
			return err
		}

		peers, err := net.PeerCount(ctx).Wait(ctx)
		if err != nil {
			return fmt.Errorf("fetching peer count: %w", err)
		}

		fmt.Printf("%s %s\n", ui.Val(fmt.Sprintf("%d", peers)), ui.Meta("("+endpoint+")"))
		return nil
	},
}
