package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walletbeacon/beacon-go/pkg/client"
	"github.com/walletbeacon/beacon-go/pkg/config"
	"github.com/walletbeacon/beacon-go/pkg/logging"
	"github.com/walletbeacon/beacon-go/pkg/types"
)

var (
	verbosity  int
	configPath string

	rootCmd = &cobra.Command{
		Use:   "beacon-demo",
		Short: "Demo driver for the beacon-go wallet connection SDK",
		Long: `beacon-demo runs the beacon-go SDK against a scripted in-memory
wallet so every lifecycle notification (pairing, permissions, signing,
broadcasting) can be seen in the terminal.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to beacon.toml or beacon.yaml")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pairCmd)
	rootCmd.AddCommand(flowCmd)
	rootCmd.AddCommand(configCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beacon-demo version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Pair with the scripted wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newDemoClient()
		if err != nil {
			return err
		}

		if err := c.Pair(cmd.Context()); err != nil {
			return err
		}

		waitForNotifications()
		return nil
	},
}

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Run the full lifecycle: pair, permissions, sign, broadcast",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c, err := newDemoClient()
		if err != nil {
			return err
		}

		if err := c.Pair(ctx); err != nil {
			return err
		}
		if _, err := c.RequestPermissions(ctx, types.ScopeSign, types.ScopeOperation); err != nil {
			return err
		}
		signature, err := c.RequestSignPayload(ctx, "05deadbeef")
		if err != nil {
			return err
		}
		if _, err := c.RequestBroadcast(ctx, signature); err != nil {
			return err
		}

		waitForNotifications()
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		out, err := config.Render(cfg)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func newDemoClient() (*client.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	transport := client.NewLoopbackTransport(types.PeerInfo{Name: "Demo Wallet"}, nil)
	return client.New(cfg, client.WithTransport(transport))
}

// waitForNotifications gives the fire-and-forget handlers time to finish
// rendering before the process exits.
func waitForNotifications() {
	time.Sleep(200 * time.Millisecond)
}
