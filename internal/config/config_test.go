package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.NewsAPI.BaseURL != "https://newsapi.org" {
		t.Errorf("NewsAPI.BaseURL = %q", cfg.NewsAPI.BaseURL)
	}
	if cfg.Pipeline.MaxArticles != 15 {
		t.Errorf("Pipeline.MaxArticles = %d, want 15", cfg.Pipeline.MaxArticles)
	}
	if cfg.Pipeline.RSSQuota != 5 {
		t.Errorf("Pipeline.RSSQuota = %d, want 5", cfg.Pipeline.RSSQuota)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", cfg.API.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
newsapi:
  key: test-key-12345678
  timeout_sec: 5
pipeline:
  rss_quota: 3
api:
  port: 9090
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.NewsAPI.Key != "test-key-12345678" {
		t.Errorf("NewsAPI.Key = %q", cfg.NewsAPI.Key)
	}
	if cfg.NewsAPI.TimeoutSec != 5 {
		t.Errorf("NewsAPI.TimeoutSec = %d, want 5", cfg.NewsAPI.TimeoutSec)
	}
	if cfg.Pipeline.RSSQuota != 3 {
		t.Errorf("Pipeline.RSSQuota = %d, want 3", cfg.Pipeline.RSSQuota)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port = %d, want 9090", cfg.API.Port)
	}
	// Unset sections keep defaults.
	if cfg.Pipeline.MaxArticles != 15 {
		t.Errorf("Pipeline.MaxArticles = %d, want default 15", cfg.Pipeline.MaxArticles)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvKeyOverride(t *testing.T) {
	t.Setenv("MARKETPULSE_NEWSAPI_KEY", "env-key-abcdef123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.NewsAPI.Key != "env-key-abcdef123" {
		t.Errorf("NewsAPI.Key = %q, want env override", cfg.NewsAPI.Key)
	}
}

func TestCheckAPIKeys(t *testing.T) {
	cfg := &Config{}
	keys := CheckAPIKeys(cfg)
	if len(keys) != 1 {
		t.Fatalf("expected 1 key status, got %d", len(keys))
	}
	if keys[0].IsSet {
		t.Error("expected NewsAPI key unset")
	}
	if keys[0].Source != KeySourceNone {
		t.Errorf("Source = %q, want none", keys[0].Source)
	}

	cfg.NewsAPI.Key = "7eae47b18ad34858878240cb7a6f139a"
	keys = CheckAPIKeys(cfg)
	if !keys[0].IsSet {
		t.Error("expected NewsAPI key set")
	}
	if keys[0].Masked != "7ea...39a" {
		t.Errorf("Masked = %q", keys[0].Masked)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"short", "***"},
		{"12345678", "***"},
		{"abcdefghijkl", "abc...jkl"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.input); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
