package cli

import (
	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "farosatctl",
		Short: "Admin CLI for the farosat bot ops API",
		Long: `farosatctl talks to the farosat bot's ops HTTP API.

It covers health checks, leaderboard queries, single-score lookups and
privileged score adjustments.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL, cfg.Token)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: FAROSAT_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Ops API token (env: FAROSAT_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newTopCmd())
	rootCmd.AddCommand(newChatTopCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newAdjustCmd())

	return rootCmd
}
