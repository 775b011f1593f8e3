package text

import (
	"strings"
	"time"
)

// Date shapes seen across fetcher feeds.
var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"2 January 2006",
	"2006/01/02",
}

// ParseDate parses a signal date string against the accepted shapes.
// Returns false for anything unparseable; callers treat that as
// neutral rather than an error.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
