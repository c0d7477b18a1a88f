// Package pipeline turns a company query into a never-empty analysis result
// by walking a one-directional fallback ladder: the paid news API first, then
// curated RSS feeds, then best-effort HTML scraping, and finally a synthetic
// placeholder. Each rung only runs when the previous one left coverage short,
// and the status tag on the result records which rung supplied the articles.
package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/seenimoa/marketpulse/internal/company"
	"github.com/seenimoa/marketpulse/internal/source"
	"github.com/seenimoa/marketpulse/pkg/models"
	"github.com/seenimoa/marketpulse/pkg/utils"
)

// PrimarySource is the paid full-text search rung. Its outcome classification
// drives the status tag when the pipeline falls back.
type PrimarySource interface {
	Search(ctx context.Context, query models.CompanyQuery, max int) ([]models.Article, source.APIOutcome)
}

// FallbackSource is a best-effort rung: RSS feeds or an HTML-scraped site.
// Fetch never returns an error; an empty slice means the rung contributed
// nothing.
type FallbackSource interface {
	Name() string
	Fetch(ctx context.Context, query models.CompanyQuery, variants []string, max int) []models.Article
}

// Orchestrator coordinates the fallback ladder for one query at a time. It is
// stateless between calls and safe for concurrent use.
type Orchestrator struct {
	primary     PrimarySource
	rss         FallbackSource
	scrapers    []FallbackSource
	maxArticles int
	rssQuota    int
	log         *logrus.Logger
}

// Options tunes the orchestrator.
type Options struct {
	MaxArticles int // final result cap
	RSSQuota    int // article count considered sufficient coverage
	Logger      *logrus.Logger
}

// NewOrchestrator wires the ladder. primary and rss may be nil, in which case
// their rungs are skipped.
func NewOrchestrator(primary PrimarySource, rss FallbackSource, scrapers []FallbackSource, opts Options) *Orchestrator {
	maxArticles := opts.MaxArticles
	if maxArticles <= 0 {
		maxArticles = 15
	}
	rssQuota := opts.RSSQuota
	if rssQuota <= 0 {
		rssQuota = 5
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Orchestrator{
		primary:     primary,
		rss:         rss,
		scrapers:    scrapers,
		maxArticles: maxArticles,
		rssQuota:    rssQuota,
		log:         log,
	}
}

// Analyze runs the full ladder for one company query. It always returns a
// well-formed result, even on panic or caller deadline: whatever accumulated
// before the context ended is deduplicated and returned, and a fully empty
// run yields the synthetic placeholder.
func (o *Orchestrator) Analyze(ctx context.Context, query models.CompanyQuery) (result models.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			o.log.WithFields(logrus.Fields{
				"company": query.Name,
				"panic":   r,
			}).Error("pipeline: recovered from panic")
			result = o.emergencyResult(query)
		}
	}()

	query.DateRange = utils.NormalizeDateRange(query.DateRange)
	variants := company.Variants(query.Name)

	primaryArticles, outcome := o.searchPrimary(ctx, query)
	if outcome == source.APIOK && len(primaryArticles) > 0 {
		return o.finalize(query, primaryArticles, models.StatusSuccess, "")
	}

	status, message := fallbackStatus(outcome)

	var articles []models.Article
	if o.rss != nil {
		articles = o.rss.Fetch(ctx, query, variants, o.rssQuota)
	}

	if len(articles) < o.rssQuota {
		scraped := 0
		for _, s := range o.scrapers {
			if ctx.Err() != nil {
				break
			}
			got := s.Fetch(ctx, query, variants, o.maxArticles-len(articles))
			articles = append(articles, got...)
			scraped += len(got)
			if len(articles) >= o.rssQuota {
				break
			}
		}
		if scraped > 0 {
			status = models.StatusWebScraping
			message = "Results include articles recovered by scanning news sites directly."
		}
	}

	return o.finalize(query, articles, status, message)
}

// searchPrimary runs the API rung, treating a missing client as a disabled
// key.
func (o *Orchestrator) searchPrimary(ctx context.Context, query models.CompanyQuery) ([]models.Article, source.APIOutcome) {
	if o.primary == nil {
		return nil, source.APIDisabled
	}
	return o.primary.Search(ctx, query, o.maxArticles)
}

// fallbackStatus maps the primary outcome to the status tag and caller
// message used when alternative sources supply the articles.
func fallbackStatus(outcome source.APIOutcome) (status, message string) {
	switch outcome {
	case source.APIRateLimited:
		return models.StatusFallbackMode, "News API rate limit reached. Showing results from alternative sources."
	case source.APIError:
		return models.StatusAPIErrorFallback, "News API unavailable. Showing results from alternative sources."
	case source.APIDisabled:
		return models.StatusFallbackMode, "News API not configured. Showing results from alternative sources."
	default:
		return models.StatusNoAPIResults, "No matching API results. Showing results from alternative sources."
	}
}

// finalize dedups, ranks and summarizes the accumulated candidates. An empty
// survivor list drops to the emergency rung.
func (o *Orchestrator) finalize(query models.CompanyQuery, articles []models.Article, status, message string) models.AnalysisResult {
	final := Rank(Dedup(articles), o.maxArticles)
	if len(final) == 0 {
		return o.emergencyResult(query)
	}

	o.log.WithFields(logrus.Fields{
		"company":  query.Name,
		"status":   status,
		"articles": len(final),
	}).Info("pipeline: analysis complete")

	return models.AnalysisResult{
		Articles:     final,
		TotalResults: len(final),
		Summary:      BuildSummary(query.Name, query.DateRange, final),
		Status:       status,
		Message:      message,
	}
}

// emergencyResult is the terminal rung: exactly one synthetic article so the
// caller always has something to render.
func (o *Orchestrator) emergencyResult(query models.CompanyQuery) models.AnalysisResult {
	o.log.WithField("company", query.Name).Warn("pipeline: all sources empty, emitting synthetic result")

	final := []models.Article{syntheticArticle(query.Name, time.Now())}
	return models.AnalysisResult{
		Articles:     final,
		TotalResults: 1,
		Summary:      BuildSummary(query.Name, utils.NormalizeDateRange(query.DateRange), final),
		Status:       models.StatusEmergency,
		Message:      "Live news sources are unavailable right now. Showing a sample analysis.",
	}
}
