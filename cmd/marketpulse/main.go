// MarketPulse — company news sentiment aggregation for Indian markets.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seenimoa/marketpulse/api"
	"github.com/seenimoa/marketpulse/internal/config"
	"github.com/seenimoa/marketpulse/internal/pipeline"
	"github.com/seenimoa/marketpulse/internal/source"
	"github.com/seenimoa/marketpulse/pkg/models"
	"github.com/seenimoa/marketpulse/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set up in PersistentPreRunE.
var (
	cfg *config.Config
	log = logrus.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "marketpulse",
	Short: "MarketPulse — company news sentiment aggregation for Indian markets",
	Long: `MarketPulse aggregates news about a named company from a full-text news
API, curated RSS feeds and market news sites, scores each article's
sentiment, and returns a ranked, summarized result that never comes back
empty.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		setupLogger(level, cfg.Logging.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// setupLogger applies the configured level and format to the shared logger.
func setupLogger(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// buildOrchestrator wires the full fallback ladder from configuration.
func buildOrchestrator() *pipeline.Orchestrator {
	primary := source.NewNewsAPIClient(
		cfg.NewsAPI.Key,
		cfg.NewsAPI.BaseURL,
		time.Duration(cfg.NewsAPI.TimeoutSec)*time.Second,
		log,
	)

	rss := source.NewRSSSource(source.RSSOptions{
		Feeds:       source.DefaultFeeds,
		EntryLimit:  cfg.Pipeline.FeedEntryLimit,
		Concurrency: cfg.Pipeline.ConcurrentFetches,
		Logger:      log,
	})

	var scrapers []pipeline.FallbackSource
	for _, target := range source.DefaultScrapeTargets {
		scrapers = append(scrapers, source.NewScrapeSource(target, source.ScrapeOptions{
			MaxArticles: cfg.Pipeline.ScrapePerSource,
			Delay:       time.Duration(cfg.Pipeline.PolitenessDelayMs) * time.Millisecond,
			Timeout:     time.Duration(cfg.Pipeline.ScrapeTimeoutSec) * time.Second,
			Logger:      log,
		}))
	}

	return pipeline.NewOrchestrator(primary, rss, scrapers, pipeline.Options{
		MaxArticles: cfg.Pipeline.MaxArticles,
		RSSQuota:    cfg.Pipeline.RSSQuota,
		Logger:      log,
	})
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("MarketPulse %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [company]",
	Short: "Run a news sentiment analysis for a company",
	Long: `Run the full aggregation pipeline for a company and print the result.

Examples:
  marketpulse analyze TCS
  marketpulse analyze "Reliance Industries" --range 1w`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dateRange, _ := cmd.Flags().GetString("range")

		query := models.CompanyQuery{Name: args[0], DateRange: dateRange}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		result := buildOrchestrator().Analyze(ctx, query)
		printResult(result)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("range", "1d", "date range, e.g. 1d, 2w, 1m")
}

// printResult renders an analysis result for the terminal.
func printResult(result models.AnalysisResult) {
	s := result.Summary

	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("  %s — News Sentiment (%s)\n", s.Company, s.DateRange)
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("  Overall:    %s\n", s.OverallSentiment)
	fmt.Printf("  Articles:   %d (%d positive, %d negative, %d neutral)\n",
		result.TotalResults,
		s.SentimentCounts.Positive, s.SentimentCounts.Negative, s.SentimentCounts.Neutral)
	fmt.Printf("  Confidence: %.2f\n", s.AverageConfidence)
	fmt.Printf("  Status:     %s\n", result.Status)
	if result.Message != "" {
		fmt.Printf("  Note:       %s\n", result.Message)
	}
	fmt.Printf("  Reasoning:  %s\n", s.Reasoning)
	fmt.Println()

	for i, a := range result.Articles {
		fmt.Printf("  %2d. [%s] %s\n", i+1, a.Sentiment, a.Title)
		fmt.Printf("      %s — %s\n", a.Source.Name, a.URL)
	}
	fmt.Println("═══════════════════════════════════════")
}

// --- Sources Command ---

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List configured news sources",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("  RSS Feeds:")
		for _, f := range source.DefaultFeeds {
			fmt.Printf("    %-20s rank %-4d %s\n", f.Name, source.TrustRank(f.Name), f.URL)
		}
		fmt.Println("  Scrape Targets:")
		for _, t := range source.DefaultScrapeTargets {
			fmt.Printf("    %-20s rank %-4d %s\n", t.Name, source.TrustRank(t.Name), t.BaseURL)
		}
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := api.NewServer(cfg, buildOrchestrator(), log)
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		return srv.ListenAndServe(addr)
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  MarketPulse — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:     %s (%s)\n", version, commit)
		fmt.Printf("  Time (IST):  %s\n", utils.FormatDateTimeIST(utils.NowIST()))
		fmt.Println()

		fmt.Println("  Configuration:")
		fmt.Printf("    API Server:     %s:%d\n", cfg.API.Host, cfg.API.Port)
		fmt.Printf("    Max Articles:   %d\n", cfg.Pipeline.MaxArticles)
		fmt.Printf("    RSS Feeds:      %d\n", len(source.DefaultFeeds))
		fmt.Printf("    Scrape Targets: %d\n", len(source.DefaultScrapeTargets))
		fmt.Println()

		fmt.Println("  API Keys:")
		for _, k := range config.CheckAPIKeys(cfg) {
			status := "❌ not set (RSS/scraping fallback only)"
			if k.IsSet {
				status = fmt.Sprintf("✅ set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("    %-15s %s\n", k.Name+":", status)
		}

		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}
