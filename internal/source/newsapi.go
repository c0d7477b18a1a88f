package source

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/seenimoa/marketpulse/internal/company"
	"github.com/seenimoa/marketpulse/internal/sentiment"
	"github.com/seenimoa/marketpulse/pkg/models"
	"github.com/seenimoa/marketpulse/pkg/utils"
)

// APIOutcome classifies how a primary API attempt ended. The orchestrator
// uses it to pick the degradation status tag; the adapter itself never
// surfaces an error.
type APIOutcome int

const (
	APIOK          APIOutcome = iota // request succeeded (matches may still be zero)
	APIRateLimited                   // HTTP 429
	APIError                         // network error or non-200 status
	APIDisabled                      // no API key configured
)

// NewsAPIClient queries the NewsAPI.org /v2/everything endpoint. It is the
// primary rung of the degradation ladder: one request per analysis, no
// retries — on 429 or any failure it returns empty immediately and lets the
// orchestrator fall back.
type NewsAPIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// NewNewsAPIClient creates a NewsAPI client. An empty baseURL selects the
// production endpoint; tests point it at a local server.
func NewNewsAPIClient(apiKey, baseURL string, timeout time.Duration, log *logrus.Logger) *NewsAPIClient {
	if baseURL == "" {
		baseURL = "https://newsapi.org"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &NewsAPIClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Name returns the source name.
func (c *NewsAPIClient) Name() string { return "NewsAPI" }

// --- NewsAPI wire types ---

type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

// Search runs one full-text query and returns scored articles plus the
// outcome classification. Matching uses a whole-word pattern against
// title+description: full-text search results span far more publishers than
// the curated feeds, so the filter is stricter here.
func (c *NewsAPIClient) Search(ctx context.Context, query models.CompanyQuery, max int) ([]models.Article, APIOutcome) {
	if c.apiKey == "" {
		return nil, APIDisabled
	}

	params := url.Values{}
	params.Set("q", fmt.Sprintf("%q", query.Name))
	params.Set("language", "en")
	params.Set("from", utils.DateFloor(time.Now(), query.DateRange))
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", c.apiKey)

	reqURL := c.baseURL + "/v2/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.log.WithError(err).Warn("newsapi: building request failed")
		return nil, APIError
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.WithError(err).Warn("newsapi: request failed")
		return nil, APIError
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.log.WithField("company", query.Name).Warn("newsapi: rate limited")
		return nil, APIRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		c.log.WithFields(logrus.Fields{
			"company": query.Name,
			"status":  resp.StatusCode,
		}).Warn("newsapi: unexpected status")
		return nil, APIError
	}

	var payload newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.WithError(err).Warn("newsapi: decoding response failed")
		return nil, APIError
	}

	pattern := company.WordPattern(query.Name)
	now := time.Now().UTC()

	var articles []models.Article
	for _, raw := range payload.Articles {
		if raw.Title == "" {
			continue
		}
		if !pattern.MatchString(raw.Title) && !pattern.MatchString(raw.Description) {
			continue
		}

		text := strings.TrimSpace(raw.Title + " " + raw.Description)
		score := sentiment.Score(text)

		publishedAt := raw.PublishedAt
		if publishedAt == "" {
			publishedAt = now.Format(time.RFC3339)
		}

		articles = append(articles, models.Article{
			Title:               raw.Title,
			Description:         raw.Description,
			URL:                 raw.URL,
			PublishedAt:         publishedAt,
			Source:              models.ArticleSource{Name: raw.Source.Name},
			ImageURL:            raw.URLToImage,
			Sentiment:           score.Label,
			SentimentConfidence: round3(score.Confidence),
			SentimentReasoning:  score.Reasoning,
		})
		if max > 0 && len(articles) >= max {
			break
		}
	}

	c.log.WithFields(logrus.Fields{
		"company": query.Name,
		"total":   payload.TotalResults,
		"matched": len(articles),
	}).Debug("newsapi: search complete")

	return articles, APIOK
}

// Fetch satisfies the Source interface.
func (c *NewsAPIClient) Fetch(ctx context.Context, query models.CompanyQuery, _ []string, max int) []models.Article {
	articles, _ := c.Search(ctx, query, max)
	return articles
}

// round3 rounds to three decimal places for wire output.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
