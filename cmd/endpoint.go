package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/rpc"
	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var endpointCmd = &cobra.Command{
	Use:   "endpoint",
	Short: "Manage node endpoints",
}

var endpointAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a JSON-RPC endpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		if err := cfg.AddEndpoint(url); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Added endpoint " + url))
		return nil
	},
}

var endpointRemoveCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Remove a JSON-RPC endpoint",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		if err := cfg.RemoveEndpoint(url); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Removed endpoint " + url))
		return nil
	},
}

var endpointListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured endpoints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(cfg.Endpoints) == 0 {
			fmt.Println(ui.Meta("no endpoints configured"))
			return nil
		}
		for _, url := range cfg.Endpoints {
			marker := "  "
			if url == cfg.DefaultEndpoint {
				marker = ui.Success("*") + " "
			}
			fmt.Printf("%s%s\n", marker, url)
		}
		return nil
	},
}

var endpointBenchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Benchmark all configured endpoints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := cfg.Endpoints
		if rpcOverride != "" {
			urls = []string{rpcOverride}
		}
		if len(urls) == 0 {
			return fmt.Errorf("no endpoints configured — add one with `w3net endpoint add <url>`")
		}

		ctx, cancel := requestContext()
		defer cancel()

		fmt.Printf("%s\n\n", ui.StyleTitle.Render("Benchmarking endpoints…"))
		results := rpc.Benchmark(ctx, urls)

		t := ui.NewTable([]ui.Column{
			{Title: "Endpoint", Width: 40},
			{Title: "Latency", Width: 10},
			{Title: "Net ID", Width: 8},
			{Title: "Block #", Width: 12},
			{Title: "Status", Width: 10},
		})

		for _, r := range results {
			status := ui.Success("healthy")
			latency := fmt.Sprintf("%dms", r.Latency.Milliseconds())
			netID := fmt.Sprintf("%d", r.NetworkID)
			block := fmt.Sprintf("%d", r.BlockNumber)

			if r.Err != nil {
				status = ui.Err("down")
				latency, netID, block = "—", "—", "—"
			}

			t.AddRow(ui.Row{r.URL, latency, netID, block, status})
		}

		fmt.Println(t.Render())
		return nil
	},
}

var endpointCheckCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Health-check a single endpoint",
	Long: `Probe one endpoint and report whether it is usable. When other
endpoints are configured, their best head block serves as the staleness
reference: a node too far behind it is reported as stale even if it
responds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		ctx, cancel := requestContext()
		defer cancel()

		var others []string
		for _, u := range cfg.Endpoints {
			if u != url {
				others = append(others, u)
			}
		}
		var bestBlock uint64
		if len(others) > 0 {
			bestBlock = maxHealthyBlock(rpc.Benchmark(ctx, others))
		}

		ep, err := rpc.HealthCheck(ctx, url, bestBlock)
		if err != nil {
			fmt.Printf("%s %s\n", ui.Err("down"), ui.Meta(err.Error()))
			return nil
		}
		if !ep.Healthy {
			fmt.Printf("%s %s\n", ui.Warn("stale"),
				ui.Meta(fmt.Sprintf("block %d, best known %d", ep.BlockNumber, bestBlock)))
			return nil
		}
		fmt.Printf("%s %s\n", ui.Success("healthy"),
			ui.Meta(fmt.Sprintf("%dms, block %d", ep.Latency.Milliseconds(), ep.BlockNumber)))
		return nil
	},
}

// maxHealthyBlock returns the highest head block among healthy results.
func maxHealthyBlock(results []rpc.BenchmarkResult) uint64 {
	var best uint64
	for _, r := range results {
		if r.Err == nil && r.BlockNumber > best {
			best = r.BlockNumber
		}
	}
	return best
}

func init() {
	endpointCmd.AddCommand(endpointAddCmd, endpointRemoveCmd, endpointListCmd,
		endpointBenchmarkCmd, endpointCheckCmd)
}
