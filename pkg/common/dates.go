// Package common provides shared helpers for the date formats used across the Parliament APIs.
package common

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date form every API accepts in query filters.
const DateLayout = "2006-01-02"

// dateLayouts lists the accepted forms, most common first.
var dateLayouts = []string{
	DateLayout,                 // "2024-01-15"
	"2006-01-02T15:04:05",      // "2024-01-15T00:00:00" (no timezone)
	time.RFC3339,               // "2024-01-15T00:00:00Z"
	"2006-01-02T15:04:05.000Z", // with milliseconds
}

// ParseDate parses a date or datetime the way the Parliament APIs write them.
func ParseDate(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date %q, expected YYYY-MM-DD", value)
}

// IsDate reports whether value parses with ParseDate.
func IsDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}
