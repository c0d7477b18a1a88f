package utils

import (
	"strconv"
	"strings"
	"time"
)

// DefaultDateRange is applied when a date range token cannot be parsed.
const DefaultDateRange = "1d"

// ParseDateRange converts a range token like "3d", "2w" or "1m" into a
// duration. Units: d = days, w = weeks, m = months (30 days). Invalid or
// unparseable tokens fall back to one day.
func ParseDateRange(s string) time.Duration {
	const day = 24 * time.Hour

	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return day
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return day
	}

	switch s[len(s)-1] {
	case 'd':
		return time.Duration(n) * day
	case 'w':
		return time.Duration(n) * 7 * day
	case 'm':
		return time.Duration(n) * 30 * day
	default:
		return day
	}
}

// DateFloor returns the UTC timestamp now-range in the wire format the
// news search API expects, e.g. "2026-08-30T09:15:00Z".
func DateFloor(now time.Time, dateRange string) string {
	return now.UTC().Add(-ParseDateRange(dateRange)).Format("2006-01-02T15:04:05Z")
}

// NormalizeDateRange returns the token itself when valid, otherwise the
// default. Used so summaries report the range that was actually applied.
func NormalizeDateRange(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return DefaultDateRange
	}
	if n, err := strconv.Atoi(s[:len(s)-1]); err != nil || n <= 0 {
		return DefaultDateRange
	}
	switch s[len(s)-1] {
	case 'd', 'w', 'm':
		return s
	}
	return DefaultDateRange
}
