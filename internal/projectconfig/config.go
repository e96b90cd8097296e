// Package projectconfig provides the ProjectConfig struct and loader for
// .getbestai.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for project configuration. New() is the only place that
// applies them.
const (
	DefaultServerPort   = 3000
	DefaultAPIBaseURL   = "https://artificialanalysis.ai/api/v2/data/llms"
	DefaultCacheDir     = ".getbestai-cache"
	DefaultCacheTTLMins = 60
	DefaultRefreshMins  = 30
	DefaultResultCount  = 5

	// APIKeyEnvVar names the environment variable holding the upstream key.
	APIKeyEnvVar = "ARTIFICIAL_ANALYSIS_API_KEY"

	configFileName        = ".getbestai.yaml"
	maxConfigSearchLevels = 10
)

// ServerConfig holds proxy server settings.
type ServerConfig struct {
	Port        int `yaml:"port,omitempty"`
	RefreshMins int `yaml:"refresh_minutes,omitempty"`
}

// APIConfig holds upstream catalog API settings. The API key itself never
// lives in the YAML file; it comes from the environment.
type APIConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// CacheConfig holds catalog cache settings.
type CacheConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Dir     string `yaml:"dir,omitempty"`
	TTLMins int    `yaml:"ttl_minutes,omitempty"`
}

// ScoringConfig optionally overrides the positional priority weights.
// When absent the built-in table applies.
type ScoringConfig struct {
	PositionWeights []float64 `yaml:"position_weights,omitempty"`
}

// OutputConfig holds CLI display settings.
type OutputConfig struct {
	ResultCount int `yaml:"result_count,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .getbestai.yaml.
type ProjectConfig struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	API     APIConfig     `yaml:"api,omitempty"`
	Cache   CacheConfig   `yaml:"cache,omitempty"`
	Scoring ScoringConfig `yaml:"scoring,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Server: ServerConfig{
			Port:        DefaultServerPort,
			RefreshMins: DefaultRefreshMins,
		},
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
		},
		Cache: CacheConfig{
			Enabled: boolPtr(true),
			Dir:     DefaultCacheDir,
			TTLMins: DefaultCacheTTLMins,
		},
		Output: OutputConfig{
			ResultCount: DefaultResultCount,
		},
	}
}

// Load finds .getbestai.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", configFileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	mergeConfig(cfg, &fileCfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configFileName, err)
	}
	return cfg, nil
}

// APIKey returns the upstream API key from the environment, loading a .env
// file first if one exists in the working directory.
func APIKey() string {
	// Best-effort: a missing .env is the common case.
	_ = godotenv.Load()
	return os.Getenv(APIKeyEnvVar)
}

func (c *ProjectConfig) validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if n := len(c.Scoring.PositionWeights); n != 0 && n != 3 {
		return fmt.Errorf("scoring position_weights needs exactly 3 entries, got %d", n)
	}
	for _, w := range c.Scoring.PositionWeights {
		if w < 0 {
			return fmt.Errorf("scoring position_weights entries must be non-negative, got %v", w)
		}
	}
	return nil
}

// findConfigFile walks up from dir looking for .getbestai.yaml.
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < maxConfigSearchLevels; i++ {
		p := filepath.Join(dir, configFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
	if src.Server.RefreshMins != 0 {
		dst.Server.RefreshMins = src.Server.RefreshMins
	}
	if src.API.BaseURL != "" {
		dst.API.BaseURL = src.API.BaseURL
	}
	if src.Cache.Enabled != nil {
		dst.Cache.Enabled = src.Cache.Enabled
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLMins != 0 {
		dst.Cache.TTLMins = src.Cache.TTLMins
	}
	if len(src.Scoring.PositionWeights) != 0 {
		dst.Scoring.PositionWeights = src.Scoring.PositionWeights
	}
	if src.Output.ResultCount != 0 {
		dst.Output.ResultCount = src.Output.ResultCount
	}
}

func boolPtr(b bool) *bool { return &b }
