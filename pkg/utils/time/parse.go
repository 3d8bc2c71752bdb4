// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles various time formats commonly found in RSS/Atom feeds

package time

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Common time formats found in RSS/Atom feeds
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string using the known feed
// formats first and dateparse as a fallback. Returns the zero time when
// nothing matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	if t, err := dateparse.ParseAny(timeStr); err == nil {
		return t
	}

	return time.Time{}
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}

// NewestFirst orders two feed date strings for a descending sort. It returns
// a negative number when a sorts before b. Unparsable dates sort after every
// parsable one and compare equal to each other.
func NewestFirst(a, b string) int {
	ta, tb := ParseFlexibleTime(a), ParseFlexibleTime(b)
	switch {
	case ta.IsZero() && tb.IsZero():
		return 0
	case ta.IsZero():
		return 1
	case tb.IsZero():
		return -1
	}
	return tb.Compare(ta)
}
