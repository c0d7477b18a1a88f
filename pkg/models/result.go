package models

// Degradation status tags carried on every analysis result. The tag tells
// the caller which rung of the fallback ladder produced the articles.
const (
	StatusSuccess          = "success"                  // primary API returned matches
	StatusNoAPIResults     = "no_api_results"           // API ok but zero matches; RSS supplied
	StatusFallbackMode     = "fallback_mode"            // API rate limited; RSS supplied
	StatusAPIErrorFallback = "api_error_fallback"       // API error; RSS supplied
	StatusWebScraping      = "historical_web_scraping"  // HTML scraping contributed
	StatusEmergency        = "emergency_fallback"       // synthetic placeholder only
)

// SentimentCounts tallies the three sentiment labels.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Summary aggregates the sentiment of a final article list.
type Summary struct {
	OverallSentiment     string          `json:"overall_sentiment"`
	SentimentCounts      SentimentCounts `json:"sentiment_counts"`
	AverageConfidence    float64         `json:"average_confidence"`
	Company              string          `json:"company"`
	DateRange            string          `json:"date_range"`
	GeneratedAt          string          `json:"generated_at"`
	Reasoning            string          `json:"reasoning"`
	SourcesUsed          []string        `json:"sources_used"`
	TotalSourcesAnalyzed int             `json:"total_sources_analyzed"`
}

// AnalysisResult is the complete response returned to the caller.
// It is always well-formed and never empty: when every real source fails
// the articles slice carries a synthetic placeholder.
type AnalysisResult struct {
	Articles     []Article `json:"articles"`
	TotalResults int       `json:"totalResults"`
	Summary      Summary   `json:"summary"`
	Status       string    `json:"status"`
	Message      string    `json:"message,omitempty"`
}
