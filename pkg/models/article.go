// Package models defines the core data structures used throughout MarketPulse.
package models

// Sentiment labels assigned by the scorer.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// ArticleSource identifies the publisher of an article.
type ArticleSource struct {
	Name string `json:"name"` // e.g., "Economic Times"
}

// Article represents a single scored news article. Adapters only emit
// articles that passed the company relevance test and carry a sentiment.
type Article struct {
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	URL                 string        `json:"url"`
	PublishedAt         string        `json:"publishedAt"` // ISO-8601; fetch time when the feed omits it
	Source              ArticleSource `json:"source"`
	ImageURL            string        `json:"urlToImage,omitempty"`
	Sentiment           string        `json:"sentiment"`
	SentimentConfidence float64       `json:"sentiment_confidence"`
	SentimentReasoning  string        `json:"sentiment_reasoning"`
}

// CompanyQuery is the caller-supplied request for a news analysis.
type CompanyQuery struct {
	Name      string // required, e.g., "TCS" or "Reliance Industries"
	DateRange string // e.g., "1d", "2w", "3m"; invalid values fall back to "1d"
}
