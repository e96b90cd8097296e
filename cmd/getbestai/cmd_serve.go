package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/getbestai/getbestai/internal/webapi"
	"github.com/getbestai/getbestai/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var (
		port      int
		noRefresh bool
		origins   []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the ranking HTTP API",
		Long: `Start the ranking HTTP API.

The server exposes:
  GET  /api/health   Health check
  GET  /api/models   The upstream model catalog (proxied and cached)
  POST /api/rank     Rank the catalog against a preferences payload

The catalog cache is refreshed periodically in the background so the first
request after a quiet period does not pay the upstream round trip.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return &BadInputError{Message: err.Error()}
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			logger := slog.Default()
			client := newCatalogClient(cfg, false, logger)

			srv, err := webserver.New(webserver.Config{
				Port:           cfg.Server.Port,
				Source:         client,
				Engine:         engineFromConfig(cfg),
				AllowedOrigins: origins,
				Logger:         logger,
			})
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			group, ctx := errgroup.WithContext(ctx)
			group.Go(func() error {
				return srv.ListenAndServe(ctx)
			})
			if !noRefresh && cfg.Server.RefreshMins > 0 {
				group.Go(func() error {
					refreshCatalog(ctx, client, time.Duration(cfg.Server.RefreshMins)*time.Minute, logger)
					return nil
				})
			}
			return group.Wait()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (0 = configured default)")
	cmd.Flags().BoolVar(&noRefresh, "no-refresh", false, "Disable background catalog refresh")
	cmd.Flags().StringSliceVar(&origins, "allow-origin", nil, "Origins allowed for cross-origin requests")

	return cmd
}

// refreshCatalog re-fetches the catalog on a fixed interval to keep the
// cache warm. Failures are logged and retried on the next tick.
func refreshCatalog(ctx context.Context, source webapi.CatalogSource, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := source.Models(ctx); err != nil {
				logger.Warn("background catalog refresh failed", "error", err)
			} else {
				logger.Debug("catalog refreshed")
			}
		}
	}
}
