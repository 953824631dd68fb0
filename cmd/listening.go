package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var listeningCmd = &cobra.Command{
	Use:   "listening",
	Short: "Show whether the node accepts network connections (net_listening)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext()
		defer cancel()

		net, endpoint, err := newNet(ctx)
		if err != nil {
			return err
		}

		listening, err := net.Listening(ctx).Wait(ctx)
		if err != nil {
			return fmt.Errorf("fetching listening state: %w", err)
		}

		if listening {
			fmt.Printf("%s %s\n", ui.Success("listening"), ui.Meta("("+endpoint+")"))
		} else {
			fmt.Printf("%s %s\n", ui.Err("not listening"), ui.Meta("("+endpoint+")"))
		}
		return nil
	},
}
