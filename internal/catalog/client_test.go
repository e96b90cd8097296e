package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Models(t *testing.T) {
	var gotKey, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotAgent = r.Header.Get("User-Agent")
		require.Equal(t, "/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload)) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "test-key"})
	models, err := c.Models(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "GetBestAI/1.0", gotAgent)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL})
	_, err := c.Models(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}

func TestClient_CachesPayload(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Write([]byte(samplePayload)) //nolint:errcheck
	}))
	defer srv.Close()

	cache := NewCache(t.TempDir(), time.Hour)
	c := NewClient(ClientConfig{BaseURL: srv.URL, Cache: cache})

	_, err := c.Models(context.Background())
	require.NoError(t, err)
	_, err = c.Models(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, calls, "second fetch must be served from the cache")
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Models(ctx)
	require.Error(t, err)
}

func TestFallback_IsValidInput(t *testing.T) {
	models := Fallback()
	require.NotEmpty(t, models)
	for _, m := range models {
		require.NotEmpty(t, m.ID)
		require.NotEmpty(t, m.Creator)
	}
}
