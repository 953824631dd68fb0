package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a combined network status summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()

		net, endpoint, err := newNet(ctx)
		if err != nil {
			return err
		}

		spin := ui.NewSpinner(fmt.Sprintf("Querying %s…", endpoint))
		spin.Start()

		// The three fetches are independent; run them concurrently and
		// join on the futures.
		idF := net.ID(ctx)
		listeningF := net.Listening(ctx)
		peersF := net.PeerCount(ctx)
		typeF := net.NetworkType(ctx)

		id, err := idF.Wait(ctx)
		if err != nil {
			spin.Stop()
			return fmt.Errorf("fetching network id: %w", err)
		}
		listening, err := listeningF.Wait(ctx)
		if err != nil {
			spin.Stop()
			return fmt.Errorf("fetching listening state: %w", err)
		}
		peers, err := peersF.Wait(ctx)
		if err != nil {
			spin.Stop()
			return fmt.Errorf("fetching peer count: %w", err)
		}
		netType, err := typeF.Wait(ctx)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("classifying network: %w", err)
		}

		state := "not listening"
		if listening {
			state = "listening"
		}

		pairs := [][2]string{
			{"Network", string(netType)},
			{"Network ID", fmt.Sprintf("%d", id)},
			{"Status", state},
			{"Peers", fmt.Sprintf("%d", peers)},
		}
		fmt.Println(ui.KeyValueBlock("🌐 Network Status · "+endpoint, pairs))
		return nil
	},
}
