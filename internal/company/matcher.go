// Package company expands a company identifier into textual variants used to
// test whether a candidate article is actually about that company.
package company

import (
	"regexp"
	"strings"
)

// aliases maps an upper-cased ticker or short name to the long-form names
// and abbreviations it is known by in Indian financial news copy.
var aliases = map[string][]string{
	"TCS":        {"tata consultancy", "tcs ltd", "tcs limited"},
	"SBIN":       {"state bank", "sbi"},
	"RELIANCE":   {"reliance industries", "ril", "mukesh ambani"},
	"INFY":       {"infosys", "infosys ltd"},
	"HDFC":       {"hdfc bank", "hdfc ltd"},
	"HDFCBANK":   {"hdfc bank"},
	"ICICIBANK":  {"icici bank"},
	"HINDUNILVR": {"hindustan unilever", "hul"},
	"BHARTIARTL": {"bharti airtel", "airtel"},
	"KOTAKBANK":  {"kotak mahindra", "kotak bank"},
	"LT":         {"larsen", "l&t"},
	"BAJFINANCE": {"bajaj finance"},
	"AXISBANK":   {"axis bank"},
	"MARUTI":     {"maruti suzuki"},
	"TATAMOTORS": {"tata motors"},
	"TATASTEEL":  {"tata steel"},
	"HCLTECH":    {"hcl tech", "hcl technologies"},
	"ASIANPAINT": {"asian paints"},
	"SUNPHARMA":  {"sun pharma", "sun pharmaceutical"},
	"ONGC":       {"oil and natural gas"},
}

// Variants returns the textual forms used to detect mentions of the company:
// the lower-cased identifier, the upper-cased identifier, the identifier with
// internal spaces removed, and any known aliases. Order is deterministic and
// entries are unique.
func Variants(identifier string) []string {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return nil
	}

	candidates := []string{
		strings.ToLower(id),
		strings.ToUpper(id),
		strings.ToLower(strings.ReplaceAll(id, " ", "")),
	}
	if extra, ok := aliases[strings.ToUpper(id)]; ok {
		candidates = append(candidates, extra...)
	}

	seen := make(map[string]bool, len(candidates))
	variants := make([]string, 0, len(candidates))
	for _, v := range candidates {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants
}

// Matches reports whether any variant appears as a case-insensitive substring
// of the text. Deliberately permissive: feed and scrape adapters favour
// recall over precision. The primary API path uses WordPattern instead.
func Matches(text string, variants []string) bool {
	lower := strings.ToLower(text)
	for _, v := range variants {
		if strings.Contains(lower, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// WordPattern compiles a case-insensitive whole-word pattern for the
// identifier. The primary API adapter filters with this stricter rule since
// full-text search results span far more publishers than the curated feeds.
func WordPattern(identifier string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(identifier) + `\b`)
}
