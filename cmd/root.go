package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/config"
	"github.com/Mohsinsiddi/w3net/internal/network"
	"github.com/Mohsinsiddi/w3net/internal/provider"
	"github.com/Mohsinsiddi/w3net/internal/rpc"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/w3net/cmd.Version=1.2.3" .
var Version = "1.0.0"

var (
	cfgDir      string
	cfg         *config.Config
	rpcOverride string
	timeoutSecs int
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "w3net",
	Short: "Network status CLI for EVM nodes",
	Long: `w3net — Inspect the network side of any EVM JSON-RPC node.

  Query the network id, listening state and peer count, fetch blocks,
  and classify the connected network by its genesis block hash.

The node endpoint comes from --rpc, or from the configured endpoint list
(the best one is selected per the configured algorithm). Manage endpoints
with: w3net endpoint add <url>`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// requestTimeout returns the per-run RPC timeout.
func requestTimeout() time.Duration {
	if timeoutSecs > 0 {
		return time.Duration(timeoutSecs) * time.Second
	}
	if cfg != nil && cfg.TimeoutSeconds > 0 {
		return time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return 15 * time.Second
}

// requestContext returns the context bounding one CLI invocation.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout())
}

// selectEndpoint resolves the endpoint URL for this run: the --rpc flag
// wins, then the configured default, then the best of the endpoint list.
func selectEndpoint(ctx context.Context) (string, error) {
	if rpcOverride != "" {
		return rpcOverride, nil
	}
	if cfg.DefaultEndpoint != "" {
		return cfg.DefaultEndpoint, nil
	}
	if len(cfg.Endpoints) == 0 {
		return "", fmt.Errorf("no endpoints configured — add one with `w3net endpoint add <url>` or pass --rpc")
	}
	return rpc.SelectBest(ctx, cfg.Endpoints, cfg.Algorithm)
}

// newNet builds the network facade for the selected endpoint, attaching a
// stored bearer token when one exists for the endpoint host.
func newNet(ctx context.Context) (*network.Net, string, error) {
	endpoint, err := selectEndpoint(ctx)
	if err != nil {
		return nil, "", err
	}

	opts := []provider.Option{provider.WithTimeout(requestTimeout())}
	if host := endpointHost(endpoint); host != "" {
		if token, err := tokenStore().Get(host); err == nil && token != "" {
			opts = append(opts, provider.WithHeader("Authorization", "Bearer "+token))
		}
	}

	return network.New(provider.NewHTTP(endpoint, opts...)), endpoint, nil
}

func endpointHost(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	return u.Host
}

func init() {
	// W3NET_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("W3NET_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.w3net)")
	rootCmd.PersistentFlags().StringVar(&rpcOverride, "rpc", "", "JSON-RPC endpoint URL (overrides configured endpoints)")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", 0, "request timeout in seconds (overrides config)")

	rootCmd.AddCommand(
		idCmd,
		listeningCmd,
		peersCmd,
		blockCmd,
		typeCmd,
		statusCmd,
		watchCmd,
		endpointCmd,
		authCmd,
		configCmd,
	)
}
