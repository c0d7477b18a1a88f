// Package config handles configuration loading for MarketPulse.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	NewsAPI  NewsAPIConfig  `mapstructure:"newsapi"  yaml:"newsapi"`
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline"`
	API      APIConfig      `mapstructure:"api"      yaml:"api"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// NewsAPIConfig holds settings for the primary full-text news search API.
// The key is never stored in source; supply it via config file or the
// MARKETPULSE_NEWSAPI_KEY environment variable.
type NewsAPIConfig struct {
	Key        string `mapstructure:"key"         yaml:"key"`
	BaseURL    string `mapstructure:"base_url"    yaml:"base_url"`
	TimeoutSec int    `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// PipelineConfig holds tuning knobs for the aggregation pipeline.
type PipelineConfig struct {
	MaxArticles       int `mapstructure:"max_articles"        yaml:"max_articles"`        // final result cap after ranking
	RSSQuota          int `mapstructure:"rss_quota"           yaml:"rss_quota"`           // sufficient coverage threshold
	FeedEntryLimit    int `mapstructure:"feed_entry_limit"    yaml:"feed_entry_limit"`    // most-recent entries inspected per feed
	ScrapePerSource   int `mapstructure:"scrape_per_source"   yaml:"scrape_per_source"`   // article cap per scraped site
	ScrapeTimeoutSec  int `mapstructure:"scrape_timeout_sec"  yaml:"scrape_timeout_sec"`  // per-attempt time box
	ConcurrentFetches int `mapstructure:"concurrent_fetches"  yaml:"concurrent_fetches"`  // parallel RSS fetches
	PolitenessDelayMs int `mapstructure:"politeness_delay_ms" yaml:"politeness_delay_ms"` // delay between scrape attempts; 0 disables
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.marketpulse/config.yaml (home directory)
//  3. /etc/marketpulse/config.yaml (system)
//
// Environment variables override config file values.
// Format: MARKETPULSE_<SECTION>_<KEY>, e.g., MARKETPULSE_NEWSAPI_KEY
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".marketpulse"))
	v.AddConfigPath("/etc/marketpulse")

	v.SetEnvPrefix("MARKETPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("MARKETPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// NewsAPI defaults
	v.SetDefault("newsapi.base_url", "https://newsapi.org")
	v.SetDefault("newsapi.timeout_sec", 10)

	// Pipeline defaults
	v.SetDefault("pipeline.max_articles", 15)
	v.SetDefault("pipeline.rss_quota", 5)
	v.SetDefault("pipeline.feed_entry_limit", 20)
	v.SetDefault("pipeline.scrape_per_source", 3)
	v.SetDefault("pipeline.scrape_timeout_sec", 8)
	v.SetDefault("pipeline.concurrent_fetches", 4)
	v.SetDefault("pipeline.politeness_delay_ms", 250)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"*"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("MARKETPULSE_NEWSAPI_KEY"); key != "" {
		cfg.NewsAPI.Key = key
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
