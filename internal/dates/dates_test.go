package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCombinedFormats(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		timeStr string
		want    time.Time
	}{
		{
			name:    "day-month-abbrev with 12 hour clock",
			dateStr: "3-Nov-25",
			timeStr: "8:00:00 AM",
			want:    time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC),
		},
		{
			name:    "day-month-abbrev with 24 hour clock",
			dateStr: "3-Nov-25",
			timeStr: "17:30:00",
			want:    time.Date(2025, time.November, 3, 17, 30, 0, 0, time.UTC),
		},
		{
			name:    "iso date with seconds",
			dateStr: "2025-11-03",
			timeStr: "09:15:00",
			want:    time.Date(2025, time.November, 3, 9, 15, 0, 0, time.UTC),
		},
		{
			name:    "iso date without seconds",
			dateStr: "2025-11-03",
			timeStr: "09:15",
			want:    time.Date(2025, time.November, 3, 9, 15, 0, 0, time.UTC),
		},
		{
			name:    "us slash format",
			dateStr: "11/03/2025",
			timeStr: "1:05:00 PM",
			want:    time.Date(2025, time.November, 3, 13, 5, 0, 0, time.UTC),
		},
		{
			name:    "surrounding whitespace",
			dateStr: "  3-Nov-25 ",
			timeStr: " 8:00:00 AM ",
			want:    time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.dateStr, tt.timeStr)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateOnlyImpliesMidnight(t *testing.T) {
	got, ok := Parse("2025-11-03", "")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC), got)

	// An unparseable time string falls back to the date-only layouts.
	got, ok = Parse("3-Nov-25", "noonish")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestParseFallbackLayouts(t *testing.T) {
	got, ok := Parse("2025-11-03T08:00:00Z", "")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC), got)
}

func TestParseFailure(t *testing.T) {
	_, ok := Parse("", "08:00:00")
	assert.False(t, ok)

	_, ok = Parse("not a date", "also not a time")
	assert.False(t, ok)

	_, ok = Parse("   ", "")
	assert.False(t, ok)
}
