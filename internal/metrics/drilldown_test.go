package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog-report/internal/models"
)

func TestCalculateEmployeeDailyTimelineExcludesLunchOnWorkdays(t *testing.T) {
	// 2025-11-03 is a Monday. 02:00Z is 09:00 Jakarta.
	records := []models.ActivityRecord{
		mockRecord("1", "2025-11-03T02:00:00Z", 165, "Alice", "P", "Morning block"),
		mockRecord("2", "2025-11-03T06:15:00Z", 105, "Alice", "P", "Afternoon block"),
	}

	timeline := CalculateEmployeeDailyTimeline(records)

	require.Len(t, timeline, 1)
	day := timeline[0]
	assert.Equal(t, "2025-11-03", day.Date)
	assert.Equal(t, "09:00", day.FirstActivity)
	assert.Equal(t, "15:00", day.LastActivity)
	assert.InDelta(t, 4.5, day.LoggedHours, 1e-9)
	// The 11:45->13:15 gap is 90 minutes, 60 of which fall in the lunch
	// window and are not charged as break time.
	assert.InDelta(t, 0.5, day.BreakHours, 1e-9)
	assert.Equal(t, 2, day.TaskCount)
}

func TestCalculateEmployeeDailyTimelineWeekend(t *testing.T) {
	// 2025-11-08 is a Saturday; the lunch window carries no exemption.
	records := []models.ActivityRecord{
		mockRecord("1", "2025-11-08T03:00:00Z", 60, "Alice", "P", "Weekend work"),
		mockRecord("2", "2025-11-08T05:30:00Z", 60, "Alice", "P", "More weekend work"),
		mockRecord("3", "2025-11-08T11:00:00Z", 60, "Alice", "P", "Evening work"),
	}

	timeline := CalculateEmployeeDailyTimeline(records)

	require.Len(t, timeline, 1)
	day := timeline[0]
	assert.Equal(t, "2025-11-08", day.Date)
	// The 90-minute midday gap counts in full; the 4.5-hour gap before
	// the evening record is non-contiguous, not a break.
	assert.InDelta(t, 1.5, day.BreakHours, 1e-9)
	assert.Equal(t, "19:00", day.LastActivity)
	assert.InDelta(t, 3.0, day.LoggedHours, 1e-9)
	assert.Equal(t, 3, day.TaskCount)
}

func TestCalculateEmployeeDailyTimelineSortsByDate(t *testing.T) {
	timeline := CalculateEmployeeDailyTimeline(mockData())

	require.Len(t, timeline, 2)
	assert.Equal(t, "2024-10-01", timeline[0].Date)
	assert.Equal(t, "2024-10-02", timeline[1].Date)
	assert.Equal(t, 5, timeline[0].TaskCount)
	assert.Equal(t, 1, timeline[1].TaskCount)
}

func TestCalculateProjectStats(t *testing.T) {
	records := []models.ActivityRecord{
		mockRecord("1", "2024-10-01T02:00:00Z", 60, "Alice", "Project A", "Deploy"),
		mockRecord("2", "2024-10-01T03:00:00Z", 30, "Bob", "Project A", "Deploy"),
		mockRecord("3", "2024-10-01T04:00:00Z", 120, "Alice", "Project A", "Review"),
		mockRecord("4", "2024-10-01T06:00:00Z", 90, "Carol", "Project A", "Triage"),
	}

	stats := CalculateProjectStats(records)

	require.Len(t, stats.TopDescriptions, 3)
	assert.Equal(t, "Review", stats.TopDescriptions[0].Desc)
	// Deploy and Triage tie at 1.5h; Deploy was encountered first.
	assert.Equal(t, "Deploy", stats.TopDescriptions[1].Desc)
	assert.Equal(t, 2, stats.TopDescriptions[1].Count)
	assert.Equal(t, "Triage", stats.TopDescriptions[2].Desc)

	require.Len(t, stats.Contributors, 3)
	assert.Equal(t, "Alice", stats.Contributors[0].Name)
	assert.InDelta(t, 3.0, stats.Contributors[0].Hours, 1e-9)
	assert.InDelta(t, 0.6, stats.Contributors[0].Share, 1e-9)
	assert.Equal(t, "Carol", stats.Contributors[1].Name)
	assert.Equal(t, "Bob", stats.Contributors[2].Name)
	assert.InDelta(t, 0.1, stats.Contributors[2].Share, 1e-9)
}

func TestCalculateProjectPerformance(t *testing.T) {
	performance := CalculateProjectPerformance(mockData())

	require.Len(t, performance, 3)

	assert.Equal(t, "Project A", performance[0].Name)
	assert.InDelta(t, 7.0, performance[0].Hours, 1e-9)
	assert.InDelta(t, 0.8, performance[0].Share, 1e-9)
	assert.Equal(t, 3, performance[0].Count)

	assert.Equal(t, "Project C", performance[1].Name)
	assert.InDelta(t, 1.0, performance[1].Hours, 1e-9)

	assert.Equal(t, "Project B", performance[2].Name)
	assert.InDelta(t, 0.75, performance[2].Hours, 1e-9)
	assert.Equal(t, 2, performance[2].Count)

	shares := 0.0
	for _, p := range performance {
		shares += p.Share
	}
	assert.InDelta(t, 1.0, shares, 1e-9)
}
