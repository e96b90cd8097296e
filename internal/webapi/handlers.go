package webapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/getbestai/getbestai/internal/catalog"
	"github.com/getbestai/getbestai/internal/prefs"
	"github.com/getbestai/getbestai/internal/ranking"
)

// Version is set at build time or defaults to dev.
var Version = "0.3.0"

// maxRankBodyBytes bounds POST /api/rank request bodies.
const maxRankBodyBytes = 1 << 20

// CatalogSource provides the model catalog. *catalog.Client satisfies it.
type CatalogSource interface {
	Models(ctx context.Context) ([]catalog.Model, error)
}

// Handlers holds the HTTP handler methods for the web API.
type Handlers struct {
	source CatalogSource
	engine *ranking.Engine
	logger *slog.Logger
}

// NewHandlers creates a Handlers backed by the given catalog source and
// ranking engine. A nil engine gets the default weight table.
func NewHandlers(source CatalogSource, engine *ranking.Engine, logger *slog.Logger) *Handlers {
	if engine == nil {
		engine = ranking.NewEngine()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{source: source, engine: engine, logger: logger}
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HandleModels proxies the upstream catalog. An upstream failure degrades
// to the fixed fallback list with success=false rather than an error page,
// so clients always have something to render.
func (h *Handlers) HandleModels(w http.ResponseWriter, r *http.Request) {
	models, success := h.fetchModels(r.Context())
	writeJSON(w, http.StatusOK, CatalogEnvelope{
		Success:     success,
		Timestamp:   time.Now().UTC(),
		ModelsCount: len(models),
		Data:        CatalogData{Data: models},
	})
}

// HandleRank validates the request body against the rank request schema,
// scores the catalog against the supplied preferences, and returns the
// ranked list.
func (h *Handlers) HandleRank(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRankBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading request body", nil)
		return
	}

	if errs := ValidateRankRequest(body); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "invalid rank request", errs)
		return
	}

	var req RankRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if req.Preferences.RequestsPerDay == 0 {
		req.Preferences.RequestsPerDay = prefs.MinRequestsPerDay
	}

	models, success := h.fetchModels(r.Context())
	scored, err := h.engine.Rank(models, req.Preferences)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	writeJSON(w, http.StatusOK, RankResponse{
		Success: success,
		Count:   len(scored),
		Results: scored,
	})
}

// fetchModels returns the catalog, or the fallback list (and false) when
// the upstream is unreachable.
func (h *Handlers) fetchModels(ctx context.Context) ([]catalog.Model, bool) {
	models, err := h.source.Models(ctx)
	if err != nil {
		h.logger.Warn("catalog fetch failed, serving fallback list", "error", err)
		return catalog.Fallback(), false
	}
	return models, true
}

// RegisterRoutes registers all web API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/models", h.HandleModels)
	mux.HandleFunc("POST /api/rank", h.HandleRank)
}

// CORSMiddleware wraps a handler with CORS headers.
// If allowedOrigins is empty, no CORS header is set (same-origin only).
// Otherwise, the request Origin is checked against the allowed list.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string, details []string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code, Details: details})
}
