package metrics

import (
	"sort"
	"time"

	"worklog-report/internal/models"
	"worklog-report/internal/workrules"
)

// Gaps of four hours or more between records are treated as
// non-contiguous rather than breaks.
const maxBreakGap = 4 * time.Hour

// CalculateHeatmapData builds the 7x24 Jakarta weekday-by-hour record
// count grid, flattened in row order (0=Sunday).
func CalculateHeatmapData(records []models.ActivityRecord) []models.HeatmapPoint {
	var grid [7][24]int
	for _, r := range records {
		j := workrules.Jakarta(r.Start)
		grid[int(j.Weekday())][j.Hour()]++
	}

	points := make([]models.HeatmapPoint, 0, 7*24)
	for d := 0; d < 7; d++ {
		for h := 0; h < 24; h++ {
			points = append(points, models.HeatmapPoint{
				DayOfWeek: d,
				HourOfDay: h,
				Value:     grid[d][h],
			})
		}
	}
	return points
}

// weekStartDay returns the Jakarta calendar date of the Sunday starting
// the week that contains t, as YYYY-MM-DD.
func weekStartDay(t time.Time) string {
	j := workrules.Jakarta(t)
	sunday := j.AddDate(0, 0, -int(j.Weekday()))
	return sunday.Format("2006-01-02")
}

// formatWeekLabel renders a week-start date as a short chart label.
func formatWeekLabel(day string) string {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return day
	}
	return d.Format("Jan 2")
}

// CalculateWeeklyTrend sums logged hours per calendar week (week start
// Sunday, Jakarta days), sorted chronologically.
func CalculateWeeklyTrend(records []models.ActivityRecord) []models.WeeklyPoint {
	weekly := map[string]int{}
	for _, r := range records {
		weekly[weekStartDay(r.Start)] += r.DurationMinutes
	}

	weeks := make([]string, 0, len(weekly))
	for week := range weekly {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	points := make([]models.WeeklyPoint, 0, len(weeks))
	for _, week := range weeks {
		points = append(points, models.WeeklyPoint{
			Week:  formatWeekLabel(week),
			Hours: float64(weekly[week]) / 60,
		})
	}
	return points
}

// CalculateFragmentationTrend computes the short-task ratio per calendar
// week, sorted chronologically.
func CalculateFragmentationTrend(records []models.ActivityRecord) []models.FragmentationPoint {
	type weekCounts struct {
		total int
		short int
	}
	weekly := map[string]*weekCounts{}

	for _, r := range records {
		week := weekStartDay(r.Start)
		counts, exists := weekly[week]
		if !exists {
			counts = &weekCounts{}
			weekly[week] = counts
		}
		counts.total++
		if r.DurationMinutes <= shortTaskMaxMinutes {
			counts.short++
		}
	}

	weeks := make([]string, 0, len(weekly))
	for week := range weekly {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	points := make([]models.FragmentationPoint, 0, len(weeks))
	for _, week := range weeks {
		counts := weekly[week]
		index := 0.0
		if counts.total > 0 {
			index = float64(counts.short) / float64(counts.total)
		}
		points = append(points, models.FragmentationPoint{
			Week:  formatWeekLabel(week),
			Index: index,
		})
	}
	return points
}

// CalculateDailyBehaviorSeries derives, per Jakarta day, the displayed
// clock-in/out (first and last record, Jakarta hour as a decimal) and the
// total break time between consecutive records. Overlaps and gaps of four
// hours or more are not counted as breaks, and clock-out is corrected to
// never precede clock-in.
func CalculateDailyBehaviorSeries(records []models.ActivityRecord) []models.DailyBehavior {
	days := groupByJakartaDay(records)

	series := make([]models.DailyBehavior, 0, len(days))
	for day, recs := range days {
		sortByStart(recs)

		first := recs[0]
		last := recs[len(recs)-1]

		startJ := workrules.Jakarta(first.Start)
		endJ := workrules.Jakarta(last.End)
		clockIn := float64(startJ.Hour()) + float64(startJ.Minute())/60
		clockOut := float64(endJ.Hour()) + float64(endJ.Minute())/60
		if clockOut < clockIn {
			clockOut = clockIn + float64(first.DurationMinutes)/60
		}

		breakMin := 0.0
		for i := 0; i < len(recs)-1; i++ {
			gap := recs[i+1].Start.Sub(recs[i].End)
			if gap > 0 && gap < maxBreakGap {
				breakMin += gap.Minutes()
			}
		}

		series = append(series, models.DailyBehavior{
			Date:       day,
			ClockIn:    clockIn,
			ClockOut:   clockOut,
			BreakHours: breakMin / 60,
		})
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// CalculateDurationDistribution buckets records into the fixed five-bin
// duration histogram by inclusive upper bound.
func CalculateDurationDistribution(records []models.ActivityRecord) []models.DurationBin {
	bins := []models.DurationBin{
		{Bin: "0-15m"},
		{Bin: "15-30m"},
		{Bin: "30-60m"},
		{Bin: "1-2h"},
		{Bin: "2h+"},
	}

	for _, r := range records {
		switch m := r.DurationMinutes; {
		case m <= 15:
			bins[0].Count++
		case m <= 30:
			bins[1].Count++
		case m <= 60:
			bins[2].Count++
		case m <= 120:
			bins[3].Count++
		default:
			bins[4].Count++
		}
	}

	return bins
}

// groupByJakartaDay buckets records by the Jakarta calendar day of their
// start instant.
func groupByJakartaDay(records []models.ActivityRecord) map[string][]models.ActivityRecord {
	days := map[string][]models.ActivityRecord{}
	for _, r := range records {
		day := workrules.JakartaDay(r.Start)
		days[day] = append(days[day], r)
	}
	return days
}

// sortByStart orders records chronologically by start instant.
func sortByStart(recs []models.ActivityRecord) {
	sort.Slice(recs, func(i, j int) bool { return recs[i].Start.Before(recs[j].Start) })
}
