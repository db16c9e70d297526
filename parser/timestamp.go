package parser

import (
	"strconv"
	"strings"
	"time"
)

// timestampFormats covers the listing-page format ("2006-01-02 15:04:05"),
// the article datetime attribute (RFC3339) and the display variants seen on
// article pages.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"Jan 02, 2006 03:04PM MST",
	"Jan 02, 2006 03:04PM",
	"Jan 2, 2006 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseTimestamp normalizes a source timestamp to epoch milliseconds. It
// returns 0 when the value cannot be parsed; a real publication time is never
// the epoch, so 0 is distinguishable from data.
func ParseTimestamp(raw string) int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	// Some pages already expose epoch seconds or milliseconds.
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n <= 0 {
			return 0
		}
		if n >= 1e12 { // already milliseconds
			return n
		}
		return n * 1000
	}

	for _, format := range timestampFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t.UnixMilli()
		}
	}

	return 0
}
