package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/network"
	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var watchInterval int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live view of the node's network status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Selection context only; the watch itself runs until quit.
		selCtx, cancel := requestContext()
		net, endpoint, err := newNet(selCtx)
		cancel()
		if err != nil {
			return err
		}

		interval := time.Duration(watchInterval) * time.Second
		if watchInterval <= 0 {
			interval = time.Duration(cfg.WatchInterval) * time.Second
		}
		if interval <= 0 {
			interval = 5 * time.Second
		}

		model := ui.WatchModel{Endpoint: endpoint, Interval: interval}
		prog := tea.NewProgram(model)

		ctx, stop := context.WithCancel(context.Background())
		defer stop()
		go pollStatus(ctx, net, interval, prog)

		_, err = prog.Run()
		return err
	},
}

// pollStatus feeds the watch model: the network type once, then a status
// sample every interval.
func pollStatus(ctx context.Context, net *network.Net, interval time.Duration, prog *tea.Program) {
	net.NetworkType(ctx).OnComplete(func(t network.Type, err error) {
		if err == nil {
			prog.Send(ui.NetTypeMsg{Type: string(t)})
		}
	})

	sample := func() {
		sampleCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()
		prog.Send(sampleStatus(sampleCtx, net))
	}

	sample()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sample()
		}
	}
}

// sampleStatus takes one snapshot of the node's status. Every fetch failure
// lands in ErrMsg so the view never silently renders stale values.
func sampleStatus(ctx context.Context, net *network.Net) ui.StatusMsg {
	var msg ui.StatusMsg

	listening, err := net.Listening(ctx).Wait(ctx)
	if err != nil {
		return ui.StatusMsg{ErrMsg: fmt.Sprintf("sample failed: %v", err)}
	}
	msg.Listening = listening

	peers, err := net.PeerCount(ctx).Wait(ctx)
	if err != nil {
		msg.ErrMsg = fmt.Sprintf("peer count failed: %v", err)
		return msg
	}
	msg.Peers = peers

	head, err := net.BlockByNumber(ctx, "latest", false).Wait(ctx)
	if err != nil {
		msg.ErrMsg = fmt.Sprintf("head block failed: %v", err)
		return msg
	}
	if head.Number != nil {
		msg.Block = head.Number.Uint64()
	}
	return msg
}

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 0, "refresh interval in seconds (default: config watch_interval)")
}
