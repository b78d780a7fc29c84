package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings for the terminal client.
type Config struct {
	// BackendURL is the base URL of the analysis service exposing /analyze.
	BackendURL string `yaml:"backend_url"`

	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MinLoadingTime is the floor on total request time so the loading
	// sequence is never visibly truncated on fast responses.
	MinLoadingTime time.Duration `yaml:"min_loading_time"`

	NewsPageSize int `yaml:"news_page_size"`

	CacheEnabled bool          `yaml:"cache_enabled"`
	CacheDir     string        `yaml:"cache_dir"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`

	// HistoryPath is the sqlite database recording past analyses.
	// Empty disables history.
	HistoryPath string `yaml:"history_path"`

	// Animations toggles the typewriter reveal and staggered list delays.
	Animations bool `yaml:"animations"`

	Debug bool `yaml:"debug"`
}

// DefaultConfig builds the base configuration, then overlays a .env file
// and environment variables.
func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		BackendURL:     "http://localhost:5000",
		RequestTimeout: 90 * time.Second,
		MinLoadingTime: 1 * time.Second,
		NewsPageSize:   2,
		CacheEnabled:   true,
		CacheDir:       filepath.Join(currentDir, "data", "cache"),
		CacheTTL:       time.Hour,
		HistoryPath:    filepath.Join(currentDir, "data", "history.db"),
		Animations:     true,
		Debug:          false,
	}

	_ = godotenv.Load()
	cfg.loadFromEnv()

	return cfg
}

// LoadFile overlays settings from a YAML config file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("STOCKWELLNESS_BACKEND_URL"); val != "" {
		c.BackendURL = val
	}
	if val := os.Getenv("STOCKWELLNESS_CACHE_DIR"); val != "" {
		c.CacheDir = val
	}
	if val, ok := os.LookupEnv("STOCKWELLNESS_HISTORY_PATH"); ok {
		c.HistoryPath = val
	}
	if val := os.Getenv("STOCKWELLNESS_REQUEST_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.RequestTimeout = d
		}
	}
	if val := os.Getenv("STOCKWELLNESS_CACHE_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.CacheTTL = d
		}
	}
	if val := os.Getenv("STOCKWELLNESS_CACHE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.CacheEnabled = b
		}
	}
	if val := os.Getenv("STOCKWELLNESS_ANIMATIONS"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.Animations = b
		}
	}
	if val := os.Getenv("STOCKWELLNESS_DEBUG"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			c.Debug = b
		}
	}
}

// Validate rejects configurations the client cannot run with.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend URL is required")
	}
	if c.NewsPageSize < 1 {
		return fmt.Errorf("news page size must be at least 1, got %d", c.NewsPageSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	return nil
}

// EnsureDirectories creates the directories the client writes to.
func (c *Config) EnsureDirectories() error {
	if !c.CacheEnabled {
		return nil
	}
	return os.MkdirAll(c.CacheDir, 0755)
}
