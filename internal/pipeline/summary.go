package pipeline

import (
	"fmt"
	"math"
	"time"

	"github.com/seenimoa/marketpulse/pkg/models"
)

// BuildSummary aggregates the sentiment of a final article list. The overall
// label follows the larger of the positive and negative tallies; a tie is
// neutral regardless of the neutral count.
func BuildSummary(company, dateRange string, articles []models.Article) models.Summary {
	var counts models.SentimentCounts
	var confSum float64
	var sources []string
	seenSources := make(map[string]bool)

	for _, a := range articles {
		switch a.Sentiment {
		case models.SentimentPositive:
			counts.Positive++
		case models.SentimentNegative:
			counts.Negative++
		default:
			counts.Neutral++
		}
		confSum += a.SentimentConfidence
		if !seenSources[a.Source.Name] {
			seenSources[a.Source.Name] = true
			sources = append(sources, a.Source.Name)
		}
	}

	total := len(articles)
	overall := models.SentimentNeutral
	switch {
	case counts.Positive > counts.Negative:
		overall = models.SentimentPositive
	case counts.Negative > counts.Positive:
		overall = models.SentimentNegative
	}

	avg := 0.6
	if total > 0 {
		avg = confSum / float64(total)
	}

	return models.Summary{
		OverallSentiment:     overall,
		SentimentCounts:      counts,
		AverageConfidence:    round3(avg),
		Company:              company,
		DateRange:            dateRange,
		GeneratedAt:          time.Now().UTC().Format(time.RFC3339),
		Reasoning:            summaryReasoning(overall, counts, total),
		SourcesUsed:          sources,
		TotalSourcesAnalyzed: total,
	}
}

func summaryReasoning(overall string, c models.SentimentCounts, total int) string {
	if total == 0 {
		return "No articles found for analysis"
	}
	switch overall {
	case models.SentimentPositive:
		return fmt.Sprintf("Positive sentiment detected in %d out of %d articles", c.Positive, total)
	case models.SentimentNegative:
		return fmt.Sprintf("Negative sentiment detected in %d out of %d articles", c.Negative, total)
	}
	return fmt.Sprintf("Mixed sentiment across %d articles: %d positive, %d negative, %d neutral",
		total, c.Positive, c.Negative, c.Neutral)
}

// round3 rounds to three decimal places for wire output.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
