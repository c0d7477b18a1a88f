package source

import (
	"context"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/seenimoa/marketpulse/internal/company"
	"github.com/seenimoa/marketpulse/internal/sentiment"
	"github.com/seenimoa/marketpulse/pkg/models"
)

// Extraction bounds. Headlines shorter than minTitleLen are almost always
// nav-menu labels or section headers, not stories.
const (
	maxContainers = 40
	minTitleLen   = 20
	maxDescLen    = 300
)

// ScrapeSource extracts candidate articles from a news site's listing pages.
// Extraction is heuristic and best-effort: candidate URLs are tried in order
// and the first page yielding at least one match wins. Any fetch or parse
// failure moves on to the next URL.
type ScrapeSource struct {
	target      ScrapeTarget
	limiter     *RateLimiter
	maxArticles int           // per-source cap
	delay       time.Duration // politeness delay before each attempt; 0 disables
	timeout     time.Duration // per-attempt time box
	log         *logrus.Logger
}

// ScrapeOptions tunes a scrape adapter.
type ScrapeOptions struct {
	MaxArticles int
	Delay       time.Duration
	Timeout     time.Duration
	Logger      *logrus.Logger
}

// NewScrapeSource creates a scrape adapter for one target site.
func NewScrapeSource(target ScrapeTarget, opts ScrapeOptions) *ScrapeSource {
	maxArticles := opts.MaxArticles
	if maxArticles <= 0 {
		maxArticles = 3
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ScrapeSource{
		target:      target,
		limiter:     NewRateLimiter(1, time.Second), // conservative: 1 req/s
		maxArticles: maxArticles,
		delay:       opts.Delay,
		timeout:     timeout,
		log:         log,
	}
}

// Name returns the source name.
func (s *ScrapeSource) Name() string { return s.target.Name }

// Fetch tries the target's candidate pages in order and returns the matches
// from the first page that yields any, capped at min(max, per-source cap).
func (s *ScrapeSource) Fetch(ctx context.Context, query models.CompanyQuery, variants []string, max int) []models.Article {
	limit := s.maxArticles
	if max > 0 && max < limit {
		limit = max
	}

	for _, pageURL := range s.target.PageURLs {
		if ctx.Err() != nil {
			return nil
		}
		s.politeWait(ctx)

		articles := s.scrapePage(ctx, pageURL, variants, limit)
		if len(articles) > 0 {
			return articles
		}
	}
	return nil
}

// scrapePage fetches one listing page and heuristically extracts articles.
func (s *ScrapeSource) scrapePage(ctx context.Context, pageURL string, variants []string, limit int) []models.Article {
	attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.limiter.Wait(attemptCtx); err != nil {
		return nil
	}

	body, _, err := doGet(attemptCtx, pageURL, nil)
	if err != nil {
		s.log.WithError(err).WithField("url", pageURL).Warn("scrape: fetch failed")
		return nil
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		s.log.WithError(err).WithField("url", pageURL).Warn("scrape: parse failed")
		return nil
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var articles []models.Article
	seen := make(map[string]bool)

	doc.Find("article, li, div").EachWithBreak(func(i int, container *goquery.Selection) bool {
		if i >= maxContainers || len(articles) >= limit {
			return false
		}

		title, link := extractHeadline(container)
		if len(strings.TrimSpace(title)) < minTitleLen {
			return true
		}
		if seen[title] {
			return true
		}

		description := extractDescription(container)

		if !company.Matches(title+" "+description, variants) {
			return true
		}
		seen[title] = true

		score := sentiment.Score(strings.TrimSpace(title + " " + description))

		articles = append(articles, models.Article{
			Title:               title,
			Description:         description,
			URL:                 resolveLink(base, link),
			PublishedAt:         now,
			Source:              models.ArticleSource{Name: s.target.Name},
			Sentiment:           score.Label,
			SentimentConfidence: round3(score.Confidence),
			SentimentReasoning:  score.Reasoning,
		})
		return true
	})

	s.log.WithFields(logrus.Fields{
		"url":     pageURL,
		"matched": len(articles),
	}).Debug("scrape: page scanned")

	return articles
}

// extractHeadline finds the first heading or anchor inside the container and
// returns its text plus the most relevant href.
func extractHeadline(container *goquery.Selection) (title, link string) {
	el := container.Find("h1, h2, h3, h4, a").First()
	if el.Length() == 0 {
		return "", ""
	}

	title = strings.TrimSpace(el.Text())

	if href, ok := el.Attr("href"); ok {
		return title, href
	}
	// Heading without href: look for a link inside or around it.
	if href, ok := el.Find("a").First().Attr("href"); ok {
		return title, href
	}
	if href, ok := container.Find("a").First().Attr("href"); ok {
		return title, href
	}
	return title, ""
}

// extractDescription takes the first paragraph-like text in the container,
// truncated to a fixed length.
func extractDescription(container *goquery.Selection) string {
	text := strings.TrimSpace(container.Find("p").First().Text())
	if len(text) > maxDescLen {
		text = text[:maxDescLen]
	}
	return text
}

// resolveLink resolves a possibly relative href against the page URL.
func resolveLink(base *url.URL, href string) string {
	if href == "" {
		return base.String()
	}
	ref, err := url.Parse(href)
	if err != nil {
		return base.String()
	}
	return base.ResolveReference(ref).String()
}

// politeWait sleeps for a short randomized delay before a scrape attempt to
// avoid hammering upstream sites. Skipped when the delay is zero or the
// context ends first.
func (s *ScrapeSource) politeWait(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	jitter := time.Duration(rand.Int63n(int64(s.delay)))
	select {
	case <-ctx.Done():
	case <-time.After(s.delay + jitter):
	}
}
