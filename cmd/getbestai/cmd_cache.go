package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/getbestai/getbestai/internal/catalog"
)

var cacheDir string

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the catalog cache",
		Long: `Manage the catalog response cache.

The cache stores compressed catalog payloads so repeated rankings within
the TTL window skip the upstream round trip.`,
	}

	cmd.AddCommand(newCacheClearCommand())

	return cmd
}

func newCacheClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the catalog cache",
		Long: `Clear all cached catalog payloads.

The next rank or fetch will hit the upstream API again.`,
		RunE: cacheClearE,
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Cache directory to clear (default from config)")

	return cmd
}

func cacheClearE(cmd *cobra.Command, args []string) error {
	dir := cacheDir
	if dir == "" {
		cfg, err := loadConfig()
		if err != nil {
			return &BadInputError{Message: err.Error()}
		}
		dir = cfg.Cache.Dir
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving cache directory: %w", err)
	}

	c := catalog.NewCache(absDir, 0)
	if err := c.Clear(); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	fmt.Printf("Cache cleared: %s\n", absDir)
	return nil
}
