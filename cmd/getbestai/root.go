package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "getbestai",
		Short: "GetBestAI - find the best LLM for your workload",
		Long: `GetBestAI ranks large language models against your priorities.

It fetches live benchmark and pricing data from the Artificial Analysis
catalog, scores every model for quality, speed, and cost, and orders them
by how well they match what you care about most.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRankCommand())
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newFetchCommand())
	cmd.AddCommand(newCacheCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
