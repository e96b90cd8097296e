package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the Artificial Analysis v2 LLM data API.
const DefaultBaseURL = "https://artificialanalysis.ai/api/v2/data/llms"

const userAgent = "GetBestAI/1.0"

// ClientConfig holds catalog client configuration.
type ClientConfig struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// APIKey is sent as the x-api-key header.
	APIKey string
	// HTTPClient defaults to a client with a 30s timeout.
	HTTPClient *http.Client
	// Cache is optional; nil disables caching.
	Cache  *Cache
	Logger *slog.Logger
}

// Client fetches the model catalog.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *Cache
	logger     *slog.Logger
}

// NewClient creates a catalog client with the given configuration.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
		cache:      cfg.Cache,
		logger:     cfg.Logger,
	}
}

// Models returns the full model catalog, consulting the cache first.
func (c *Client) Models(ctx context.Context) ([]Model, error) {
	url := c.baseURL + "/models"
	key := CacheKey(url)

	if c.cache != nil {
		if data, ok := c.cache.Get(key); ok {
			c.logger.Debug("catalog cache hit", "url", url)
			return DecodeCatalog(data)
		}
	}

	data, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	models, err := DecodeCatalog(data)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Put(key, data); err != nil {
			c.logger.Warn("failed to cache catalog", "error", err)
		}
	}

	c.logger.Debug("catalog fetched", "models", len(models))
	return models, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog API returned %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
