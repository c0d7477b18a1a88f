package source

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/seenimoa/marketpulse/internal/company"
	"github.com/seenimoa/marketpulse/internal/sentiment"
	"github.com/seenimoa/marketpulse/pkg/models"
)

// RSSSource reads the curated Indian financial news feeds. Feeds are fetched
// in parallel (bounded), each under its own time box, and outstanding fetches
// are cancelled as soon as the per-request quota is met. Results are merged
// in registry order so the output is independent of fetch completion order.
// A single feed failure never aborts the remaining feeds.
type RSSSource struct {
	feeds       []FeedSource
	parser      *gofeed.Parser
	cache       *Cache
	limiter     *RateLimiter
	entryLimit  int // most-recent entries inspected per feed
	concurrency int
	timeout     time.Duration // per-feed time box
	log         *logrus.Logger
}

// RSSOptions tunes the RSS adapter.
type RSSOptions struct {
	Feeds       []FeedSource
	EntryLimit  int
	Concurrency int
	Timeout     time.Duration
	Logger      *logrus.Logger
}

// errQuotaMet cancels the remaining feed fetches through the errgroup once
// enough articles have been accepted.
var errQuotaMet = errors.New("quota met")

// NewRSSSource creates an RSS adapter over the given feeds; nil feeds selects
// the default curated registry.
func NewRSSSource(opts RSSOptions) *RSSSource {
	feeds := opts.Feeds
	if feeds == nil {
		feeds = DefaultFeeds
	}
	entryLimit := opts.EntryLimit
	if entryLimit <= 0 {
		entryLimit = 20
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &RSSSource{
		feeds:       feeds,
		parser:      gofeed.NewParser(),
		cache:       NewCache(10 * time.Minute),
		limiter:     NewRateLimiter(2, time.Second), // conservative: 2 req/s
		entryLimit:  entryLimit,
		concurrency: concurrency,
		timeout:     timeout,
		log:         log,
	}
}

// Name returns the source name.
func (r *RSSSource) Name() string { return "Trusted RSS" }

// Fetch scans the curated feeds for entries mentioning any company variant
// and returns scored articles, stopping once max is reached. Each feed fetch
// runs under its own timeout so one unresponsive upstream cannot hold the
// request, and hitting the quota cancels every fetch still in flight.
func (r *RSSSource) Fetch(ctx context.Context, query models.CompanyQuery, variants []string, max int) []models.Article {
	perFeed := make([][]models.Article, len(r.feeds))

	var accepted atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, feed := range r.feeds {
		i, feed := i, feed
		g.Go(func() error {
			feedCtx, cancel := context.WithTimeout(gctx, r.timeout)
			defer cancel()

			articles, err := r.fetchFeed(feedCtx, feed, variants)
			if err != nil {
				// Non-critical: skip failed feeds. Cancellation at quota is
				// expected, not a failure.
				if !errors.Is(err, context.Canceled) {
					r.log.WithError(err).WithField("feed", feed.Name).Warn("rss: feed failed")
				}
				return nil
			}
			perFeed[i] = articles

			if max > 0 && accepted.Add(int64(len(articles))) >= int64(max) {
				return errQuotaMet
			}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // quota-met is the only error workers return

	// Deterministic merge in registry order with early stop at quota.
	var out []models.Article
	for i := range perFeed {
		for _, a := range perFeed[i] {
			out = append(out, a)
			if max > 0 && len(out) >= max {
				return out
			}
		}
	}
	return out
}

// fetchFeed parses one feed and returns its matching entries, scored.
func (r *RSSSource) fetchFeed(ctx context.Context, src FeedSource, variants []string) ([]models.Article, error) {
	feed, err := r.cachedFeed(ctx, src)
	if err != nil {
		return nil, err
	}

	items := feed.Items
	if len(items) > r.entryLimit {
		items = items[:r.entryLimit]
	}

	now := time.Now().UTC()
	var articles []models.Article
	for _, item := range items {
		summary := stripHTML(item.Description)
		combined := item.Title + " " + summary
		if !company.Matches(combined, variants) {
			continue
		}

		score := sentiment.Score(strings.TrimSpace(combined))

		publishedAt := now.Format(time.RFC3339)
		if item.PublishedParsed != nil {
			publishedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
		} else if item.Published != "" {
			publishedAt = item.Published
		}

		articles = append(articles, models.Article{
			Title:               item.Title,
			Description:         summary,
			URL:                 item.Link,
			PublishedAt:         publishedAt,
			Source:              models.ArticleSource{Name: src.Name},
			Sentiment:           score.Label,
			SentimentConfidence: round3(score.Confidence),
			SentimentReasoning:  score.Reasoning,
		})
	}

	r.log.WithFields(logrus.Fields{
		"feed":    src.Name,
		"entries": len(items),
		"matched": len(articles),
	}).Debug("rss: feed scanned")

	return articles, nil
}

// cachedFeed fetches and parses a feed, caching the parsed result briefly so
// closely spaced requests do not hammer the upstream.
func (r *RSSSource) cachedFeed(ctx context.Context, src FeedSource) (*gofeed.Feed, error) {
	if cached, ok := r.cache.Get(src.URL); ok {
		return cached.(*gofeed.Feed), nil
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feed, err := r.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, err
	}

	r.cache.Set(src.URL, feed)
	return feed, nil
}

// stripHTML removes markup from feed summaries using goquery.
func stripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
