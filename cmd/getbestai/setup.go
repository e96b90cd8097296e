package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/getbestai/getbestai/internal/catalog"
	"github.com/getbestai/getbestai/internal/projectconfig"
	"github.com/getbestai/getbestai/internal/ranking"
)

// loadConfig loads the project configuration starting from the current
// directory.
func loadConfig() (*projectconfig.ProjectConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return projectconfig.Load(cwd)
}

// newCatalogClient builds a catalog client from project configuration.
func newCatalogClient(cfg *projectconfig.ProjectConfig, noCache bool, logger *slog.Logger) *catalog.Client {
	var cache *catalog.Cache
	if !noCache && (cfg.Cache.Enabled == nil || *cfg.Cache.Enabled) {
		ttl := time.Duration(cfg.Cache.TTLMins) * time.Minute
		cache = catalog.NewCache(cfg.Cache.Dir, ttl)
	}

	return catalog.NewClient(catalog.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		APIKey:  projectconfig.APIKey(),
		Cache:   cache,
		Logger:  logger,
	})
}

// engineFromConfig builds a ranking engine, honoring any position weight
// override in the project configuration.
func engineFromConfig(cfg *projectconfig.ProjectConfig) *ranking.Engine {
	if len(cfg.Scoring.PositionWeights) == 3 {
		var w ranking.PositionWeights
		copy(w[:], cfg.Scoring.PositionWeights)
		return ranking.NewEngineWithWeights(w)
	}
	return ranking.NewEngine()
}
