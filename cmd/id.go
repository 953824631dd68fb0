package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Show the network id (net_version)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()

		net, endpoint, err := newNet(ctx)
		if err != nil {
			return err
		}

		id, err := net.ID(ctx).Wait(ctx)
		if err != nil {
			return fmt.Errorf("fetching network id: %w", err)
		}

		fmt.Printf("%s %s\n", ui.Val(fmt.Sprintf("%d", id)), ui.Meta("("+endpoint+")"))
		return nil
	},
}
