package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BackendURL == "" {
		t.Fatal("default backend URL must be set")
	}
	if cfg.NewsPageSize != 2 {
		t.Errorf("news page size = %d, want 2", cfg.NewsPageSize)
	}
	if cfg.MinLoadingTime != time.Second {
		t.Errorf("min loading time = %s, want 1s", cfg.MinLoadingTime)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STOCKWELLNESS_BACKEND_URL", "https://analysis.example.com")
	t.Setenv("STOCKWELLNESS_CACHE_ENABLED", "false")
	t.Setenv("STOCKWELLNESS_REQUEST_TIMEOUT", "30s")
	t.Setenv("STOCKWELLNESS_HISTORY_PATH", "")

	cfg := DefaultConfig()
	if cfg.BackendURL != "https://analysis.example.com" {
		t.Errorf("backend URL = %q", cfg.BackendURL)
	}
	if cfg.CacheEnabled {
		t.Error("cache should be disabled via env")
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("request timeout = %s", cfg.RequestTimeout)
	}
	if cfg.HistoryPath != "" {
		t.Error("empty env value should disable history")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "backend_url: http://10.0.0.5:8000\nnews_page_size: 4\nanimations: false\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.BackendURL != "http://10.0.0.5:8000" {
		t.Errorf("backend URL = %q", cfg.BackendURL)
	}
	if cfg.NewsPageSize != 4 {
		t.Errorf("news page size = %d", cfg.NewsPageSize)
	}
	if cfg.Animations {
		t.Error("animations should be off")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BackendURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty backend URL should fail validation")
	}

	cfg = DefaultConfig()
	cfg.NewsPageSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero page size should fail validation")
	}
}
