package pipeline

import (
	"sort"
	"strings"

	"github.com/seenimoa/marketpulse/internal/source"
	"github.com/seenimoa/marketpulse/pkg/models"
)

// Dedup parameters. The token window must span a full typical headline so
// that reordered duplicates ("RBI cuts repo rate by 25 bps" vs
// "Repo rate 25 bps cuts by RBI") produce the same key. Titles below the
// minimum length are scraping noise, not stories.
const (
	dedupTokenWindow = 8
	minDedupTitleLen = 20
)

// dedupKey canonicalizes a title: lower-cased, split on whitespace, first
// dedupTokenWindow tokens sorted alphabetically and rejoined. Two articles
// are near-duplicates iff their keys are equal.
func dedupKey(title string) string {
	tokens := strings.Fields(strings.ToLower(title))
	if len(tokens) > dedupTokenWindow {
		tokens = tokens[:dedupTokenWindow]
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Dedup removes near-duplicate titles and undersized ones in a single pass.
// The first occurrence wins, so callers control survivor priority through
// insertion order.
func Dedup(articles []models.Article) []models.Article {
	seen := make(map[string]bool, len(articles))
	var out []models.Article
	for _, a := range articles {
		if len(strings.TrimSpace(a.Title)) < minDedupTitleLen {
			continue
		}
		key := dedupKey(a.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	return out
}

// Rank orders articles by publisher trust, most trusted first, and truncates
// to max. The sort is stable: within one publisher the pre-rank order holds.
// Ranking never filters; unknown publishers simply sort last.
func Rank(articles []models.Article, max int) []models.Article {
	sort.SliceStable(articles, func(i, j int) bool {
		return source.TrustRank(articles[i].Source.Name) < source.TrustRank(articles[j].Source.Name)
	})
	if max > 0 && len(articles) > max {
		articles = articles[:max]
	}
	return articles
}
