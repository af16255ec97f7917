// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a free-text publication date. It returns ok=false for
// empty or unparseable input; parsing never fails the caller. Values
// without a zone are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// MonthStart truncates t to the first instant of its calendar month in UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
