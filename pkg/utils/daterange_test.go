package utils

import (
	"testing"
	"time"
)

func TestParseDateRange(t *testing.T) {
	const day = 24 * time.Hour

	tests := []struct {
		input string
		want  time.Duration
	}{
		{"1d", day},
		{"3d", 3 * day},
		{"2w", 14 * day},
		{"1m", 30 * day},
		{"2m", 60 * day},
		{"1D", day},    // case-insensitive
		{" 2w ", 14 * day},
		{"bogus", day}, // invalid suffix
		{"", day},
		{"d", day},
		{"0d", day},
		{"-1d", day},
		{"xw", day},
		{"10y", day}, // unknown unit
	}
	for _, tt := range tests {
		got := ParseDateRange(tt.input)
		if got != tt.want {
			t.Errorf("ParseDateRange(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDateFloor(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		dateRange string
		want      string
	}{
		{"1d", "2026-08-29T12:00:00Z"},
		{"2w", "2026-08-16T12:00:00Z"},
		{"1m", "2026-07-31T12:00:00Z"},
		{"bogus", "2026-08-29T12:00:00Z"},
	}
	for _, tt := range tests {
		got := DateFloor(now, tt.dateRange)
		if got != tt.want {
			t.Errorf("DateFloor(now, %q) = %q, want %q", tt.dateRange, got, tt.want)
		}
	}
}

func TestNormalizeDateRange(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1d", "1d"},
		{"2W", "2w"},
		{"3m", "3m"},
		{"bogus", "1d"},
		{"", "1d"},
		{"0d", "1d"},
	}
	for _, tt := range tests {
		got := NormalizeDateRange(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeDateRange(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
