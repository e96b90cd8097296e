package webapi

import (
	"time"

	"github.com/getbestai/getbestai/internal/catalog"
	"github.com/getbestai/getbestai/internal/prefs"
	"github.com/getbestai/getbestai/internal/ranking"
)

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// CatalogEnvelope wraps the proxied model catalog. Success is false when
// the upstream fetch failed and the fallback list is being served instead.
type CatalogEnvelope struct {
	Success     bool        `json:"success"`
	Timestamp   time.Time   `json:"timestamp"`
	ModelsCount int         `json:"models_count"`
	Data        CatalogData `json:"data"`
}

// CatalogData mirrors the upstream payload shape: the model list nests
// under a second "data" key.
type CatalogData struct {
	Data []catalog.Model `json:"data"`
}

// RankRequest is the body of POST /api/rank.
type RankRequest struct {
	Preferences prefs.Preferences `json:"preferences"`
}

// RankResponse carries the ranked result set, sorted descending by match
// score.
type RankResponse struct {
	Success bool                  `json:"success"`
	Count   int                   `json:"count"`
	Results []ranking.ScoredModel `json:"results"`
}

// ErrorResponse is returned for errors.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    int      `json:"code"`
	Details []string `json:"details,omitempty"`
}
