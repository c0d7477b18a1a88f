// Package sentiment scores free text with a hybrid model: a general-purpose
// VADER polarity baseline adjusted by a fixed financial phrase lexicon tuned
// for Indian market news. Scoring is a pure function with no shared state,
// so it is safe to call from any number of goroutines.
package sentiment

import (
	"fmt"
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Sentiment labels.
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
)

// Result is the outcome of scoring a piece of text.
type Result struct {
	Label      string  // positive, negative or neutral
	Confidence float64 // in [0.5, 0.95]
	Reasoning  string  // matched phrases and final score
	Score      float64 // final compound score in [-1, 1]
}

// classification thresholds
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Score analyzes text and returns a sentiment label, a confidence and a
// human-readable reasoning string. Empty or whitespace-only input yields a
// fixed neutral result without any further computation.
func Score(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Label: Neutral, Confidence: 0.5, Reasoning: "No content to analyze"}
	}

	textLower := strings.ToLower(text)

	// VADER compound polarity in [-1, 1].
	parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
	base := sentitext.PolarityScore(parsed).Compound

	// Financial keyword adjustments. Each phrase counts once regardless of
	// how often it repeats; multi-word phrases must appear verbatim.
	adjustment := 0.0
	var positiveMatches, negativeMatches []string

	for _, ind := range positiveIndicators {
		if strings.Contains(textLower, ind.Phrase) {
			adjustment += ind.Weight
			positiveMatches = append(positiveMatches, ind.Phrase)
		}
	}
	for _, ind := range negativeIndicators {
		if strings.Contains(textLower, ind.Phrase) {
			adjustment += ind.Weight
			negativeMatches = append(negativeMatches, ind.Phrase)
		}
	}

	final := clamp(base+adjustment, -1.0, 1.0)

	var label string
	var confidence float64
	switch {
	case final >= positiveThreshold:
		label = Positive
		confidence = min(0.95, 0.6+abs(final)*0.4)
	case final <= negativeThreshold:
		label = Negative
		confidence = min(0.95, 0.6+abs(final)*0.4)
	default:
		label = Neutral
		confidence = 0.6
	}

	return Result{
		Label:      label,
		Confidence: confidence,
		Reasoning:  buildReasoning(positiveMatches, negativeMatches, final),
		Score:      final,
	}
}

// buildReasoning lists up to three matched phrases per side, e.g.
// "Positive: profit, growth | Negative: debt (Score: 0.45)".
func buildReasoning(positive, negative []string, final float64) string {
	var parts []string
	if len(positive) > 0 {
		parts = append(parts, "Positive: "+strings.Join(firstN(positive, 3), ", "))
	}
	if len(negative) > 0 {
		parts = append(parts, "Negative: "+strings.Join(firstN(negative, 3), ", "))
	}
	if len(parts) == 0 {
		parts = append(parts, "Based on overall tone")
	}
	return strings.Join(parts, " | ") + fmt.Sprintf(" (Score: %.2f)", final)
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
