package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/w3net/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultEP := cfg.DefaultEndpoint
		if defaultEP == "" {
			defaultEP = "(auto-select)"
		}
		pairs := [][2]string{
			{"Config dir", cfg.Dir()},
			{"Endpoints", fmt.Sprintf("%d configured", len(cfg.Endpoints))},
			{"Default", defaultEP},
			{"Algorithm", cfg.Algorithm},
			{"Timeout", fmt.Sprintf("%ds", cfg.TimeoutSeconds)},
			{"Watch interval", fmt.Sprintf("%ds", cfg.WatchInterval)},
		}
		fmt.Println(ui.KeyValueBlock("⚙ Configuration", pairs))
		return nil
	},
}

var configSetDefaultCmd = &cobra.Command{
	Use:   "set-default <url>",
	Short: "Pin the default endpoint (skip auto-selection)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.DefaultEndpoint = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Default endpoint set to " + args[0]))
		return nil
	},
}

var configSetAlgorithmCmd = &cobra.Command{
	Use:   "set-algorithm <fastest|round-robin|failover>",
	Short: "Set the endpoint selection algorithm",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		algo := args[0]
		switch algo {
		case "fastest", "round-robin", "failover":
		default:
			return fmt.Errorf("invalid algorithm %q — choose: fastest, round-robin, failover", algo)
		}
		cfg.Algorithm = algo
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Algorithm set to %q", algo)))
		return nil
	},
}

var configSetTimeoutCmd = &cobra.Command{
	Use:   "set-timeout <seconds>",
	Short: "Set the request timeout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secs, err := strconv.Atoi(args[0])
		if err != nil || secs <= 0 {
			return fmt.Errorf("invalid timeout %q — expected a positive number of seconds", args[0])
		}
		cfg.TimeoutSeconds = secs
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Timeout set to %ds", secs)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetDefaultCmd, configSetAlgorithmCmd, configSetTimeoutCmd)
}
