// Package dates resolves the heterogeneous date/time strings found in
// spreadsheet exports into absolute instants.
package dates

import (
	"strings"
	"time"
)

// Layouts are tried in declared order; the first one that parses wins.
// Combined layouts expect "date time", date-only layouts imply midnight.
var (
	combinedLayouts = []string{
		"2-Jan-06 3:04:05 PM", // "3-Nov-25 8:00:00 AM"
		"2-Jan-06 15:04:05",
		"2-Jan-06 15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"01/02/2006 3:04:05 PM",
	}

	dateOnlyLayouts = []string{
		"2-Jan-06",
		"2006-01-02",
		"01/02/2006",
	}

	// Loose fallbacks for values outside the known export formats.
	fallbackLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006/01/02 15:04:05",
		"2006/01/02 15:04",
		"2 Jan 2006 15:04:05",
		"2 Jan 2006 15:04",
		"2 Jan 2006",
		"Jan 2, 2006 3:04:05 PM",
		"Jan 2, 2006",
	}
)

// Parse resolves a date string plus an optional time string into an
// instant. Both inputs may carry irregular whitespace. The returned time
// is anchored to UTC without any zone conversion; consumers that need
// Jakarta wall-clock time apply the fixed offset themselves.
//
// Returns false when every strategy fails. Callers must treat that as a
// missing required field rather than defaulting silently.
func Parse(dateStr, timeStr string) (time.Time, bool) {
	cleanDate := strings.TrimSpace(dateStr)
	if cleanDate == "" {
		return time.Time{}, false
	}

	cleanTime := strings.TrimSpace(timeStr)
	if cleanTime == "" {
		cleanTime = "00:00:00"
	}

	combined := cleanDate + " " + cleanTime

	for _, layout := range combinedLayouts {
		if t, err := time.ParseInLocation(layout, combined, time.UTC); err == nil {
			return t, true
		}
	}

	// Retry with the date alone, implying start of day.
	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, cleanDate, time.UTC); err == nil {
			return t, true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, combined, time.UTC); err == nil {
			return t, true
		}
		if t, err := time.ParseInLocation(layout, cleanDate, time.UTC); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
