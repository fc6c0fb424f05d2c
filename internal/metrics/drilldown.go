package metrics

import (
	"sort"
	"time"

	"worklog-report/internal/models"
	"worklog-report/internal/workrules"
)

// CalculateEmployeeDailyTimeline aggregates one employee's records into a
// per-day timeline: first/last activity clock time, logged hours, break
// hours and task count. Break time excludes the portion of a gap that
// falls inside the standard lunch window on workdays, so a normal lunch
// break carries no penalty.
func CalculateEmployeeDailyTimeline(records []models.ActivityRecord) []models.EmployeeDailyStats {
	days := groupByJakartaDay(records)

	stats := make([]models.EmployeeDailyStats, 0, len(days))
	for day, recs := range days {
		sortByStart(recs)

		totalMin := 0
		for _, r := range recs {
			totalMin += r.DurationMinutes
		}

		weekend := isWeekendDay(day)

		breakMin := 0.0
		for i := 0; i < len(recs)-1; i++ {
			gap := recs[i+1].Start.Sub(recs[i].End)
			if gap <= 0 || gap >= maxBreakGap {
				continue
			}
			gapMinutes := gap.Minutes()
			if !weekend {
				lunchOverlap := float64(workrules.OverlapsLunchGap(recs[i].End, recs[i+1].Start))
				gapMinutes -= lunchOverlap
				if gapMinutes < 0 {
					gapMinutes = 0
				}
			}
			breakMin += gapMinutes
		}

		stats = append(stats, models.EmployeeDailyStats{
			Date:          day,
			FirstActivity: workrules.Jakarta(recs[0].Start).Format("15:04"),
			LastActivity:  workrules.Jakarta(recs[len(recs)-1].End).Format("15:04"),
			LoggedHours:   float64(totalMin) / 60,
			BreakHours:    breakMin / 60,
			TaskCount:     len(recs),
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Date < stats[j].Date })
	return stats
}

// CalculateProjectStats aggregates one project's records into ranked
// descriptions (top 50 by hours) and contributor shares.
func CalculateProjectStats(records []models.ActivityRecord) models.ProjectStats {
	type descAgg struct {
		count   int
		minutes int
	}
	descMap := map[string]*descAgg{}
	var descOrder []string
	contribMap := map[string]int{}
	var contribOrder []string
	totalMin := 0

	for _, r := range records {
		agg, exists := descMap[r.Description]
		if !exists {
			agg = &descAgg{}
			descMap[r.Description] = agg
			descOrder = append(descOrder, r.Description)
		}
		agg.count++
		agg.minutes += r.DurationMinutes

		if _, seen := contribMap[r.Employee]; !seen {
			contribOrder = append(contribOrder, r.Employee)
		}
		contribMap[r.Employee] += r.DurationMinutes

		totalMin += r.DurationMinutes
	}

	topDescriptions := make([]models.ProjectDescriptionStat, 0, len(descOrder))
	for _, desc := range descOrder {
		agg := descMap[desc]
		topDescriptions = append(topDescriptions, models.ProjectDescriptionStat{
			Desc:  desc,
			Count: agg.count,
			Hours: float64(agg.minutes) / 60,
		})
	}
	sort.SliceStable(topDescriptions, func(i, j int) bool {
		return topDescriptions[i].Hours > topDescriptions[j].Hours
	})
	if len(topDescriptions) > 50 {
		topDescriptions = topDescriptions[:50]
	}

	contributors := make([]models.Contributor, 0, len(contribOrder))
	for _, name := range contribOrder {
		minutes := contribMap[name]
		share := 0.0
		if totalMin > 0 {
			share = float64(minutes) / float64(totalMin)
		}
		contributors = append(contributors, models.Contributor{
			Name:  name,
			Hours: float64(minutes) / 60,
			Share: share,
		})
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Hours > contributors[j].Hours
	})

	return models.ProjectStats{
		TopDescriptions: topDescriptions,
		Contributors:    contributors,
	}
}

// CalculateProjectPerformance totals hours, record count and share of all
// logged time per project, sorted by hours descending.
func CalculateProjectPerformance(records []models.ActivityRecord) []models.ProjectPerformance {
	type projectAgg struct {
		minutes int
		count   int
	}
	stats := map[string]*projectAgg{}
	var order []string
	totalMin := 0

	for _, r := range records {
		agg, exists := stats[r.Project]
		if !exists {
			agg = &projectAgg{}
			stats[r.Project] = agg
			order = append(order, r.Project)
		}
		agg.minutes += r.DurationMinutes
		agg.count++
		totalMin += r.DurationMinutes
	}

	performance := make([]models.ProjectPerformance, 0, len(order))
	for _, name := range order {
		agg := stats[name]
		share := 0.0
		if totalMin > 0 {
			share = float64(agg.minutes) / float64(totalMin)
		}
		performance = append(performance, models.ProjectPerformance{
			Name:  name,
			Hours: float64(agg.minutes) / 60,
			Share: share,
			Count: agg.count,
		})
	}
	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].Hours > performance[j].Hours
	})

	return performance
}

// isWeekendDay reports whether a YYYY-MM-DD Jakarta day string falls on a
// Saturday or Sunday.
func isWeekendDay(day string) bool {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		return false
	}
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
