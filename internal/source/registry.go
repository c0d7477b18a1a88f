package source

// FeedSource is a curated syndication feed with a declared trust rank.
type FeedSource struct {
	Name string // publisher label, also used for trust ranking
	URL  string
}

// ScrapeTarget describes one HTML-scraped site: an ordered list of candidate
// page URLs tried in sequence until one yields a match, plus the base URL
// used to resolve relative links.
type ScrapeTarget struct {
	Name     string
	BaseURL  string
	PageURLs []string
}

// DefaultFeeds lists the curated Indian financial news RSS feeds, in the
// order they are attempted.
var DefaultFeeds = []FeedSource{
	{
		Name: "Economic Times",
		URL:  "https://economictimes.indiatimes.com/markets/rssfeeds/1977021501.cms",
	},
	{
		Name: "Business Standard",
		URL:  "https://www.business-standard.com/rss/markets-106.rss",
	},
	{
		Name: "Hindu BusinessLine",
		URL:  "https://www.thehindubusinessline.com/markets/stock-markets/feeder/default.rss",
	},
	{
		Name: "LiveMint",
		URL:  "https://www.livemint.com/rss/markets",
	},
	{
		Name: "Financial Express",
		URL:  "https://www.financialexpress.com/market/rss",
	},
	{
		Name: "Moneycontrol",
		URL:  "https://www.moneycontrol.com/rss/marketreports.xml",
	},
}

// DefaultScrapeTargets lists the HTML-scraped fallback sites in priority
// order. Each candidate URL is tried until one yields at least one match.
var DefaultScrapeTargets = []ScrapeTarget{
	{
		Name:    "Moneycontrol",
		BaseURL: "https://www.moneycontrol.com",
		PageURLs: []string{
			"https://www.moneycontrol.com/news/business/markets/",
			"https://www.moneycontrol.com/news/business/stocks/",
		},
	},
	{
		Name:    "Economic Times",
		BaseURL: "https://economictimes.indiatimes.com",
		PageURLs: []string{
			"https://economictimes.indiatimes.com/markets/stocks/news",
			"https://economictimes.indiatimes.com/markets",
		},
	},
	{
		Name:    "Business Standard",
		BaseURL: "https://www.business-standard.com",
		PageURLs: []string{
			"https://www.business-standard.com/markets/news",
		},
	},
}

// trustRanks orders publishers for result ranking. Lower is more trusted.
// Ranking only affects ordering, never filtering.
var trustRanks = map[string]int{
	"Economic Times":     1,
	"Business Standard":  2,
	"Hindu BusinessLine": 3,
	"LiveMint":           4,
	"Financial Express":  5,
	"Moneycontrol":       6,
	"Reuters":            7,
	"Bloomberg":          8,
}

// unknownTrustRank sorts publishers without an explicit rank after all
// ranked ones.
const unknownTrustRank = 1000

// TrustRank returns the ranking position for a publisher name. Unknown
// publishers sort last.
func TrustRank(name string) int {
	if rank, ok := trustRanks[name]; ok {
		return rank
	}
	return unknownTrustRank
}
