// Package metrics computes dashboard aggregates from normalized activity
// records. Every calculator is a pure function: empty input yields empty
// or zero-valued output and division is always guarded.
package metrics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"worklog-report/internal/classify"
	"worklog-report/internal/models"
	"worklog-report/internal/workrules"
)

// Duration-shape thresholds, in minutes.
const (
	shortTaskMaxMinutes = 30
	deepWorkMinMinutes  = 120
)

// CalculateVolumeMetrics counts records by Jakarta day, employee, project
// and reclassified category, and ranks the ten most frequent
// descriptions. Ranking ties keep first-encountered order.
func CalculateVolumeMetrics(records []models.ActivityRecord) models.VolumeMetrics {
	byDay := map[string]int{}
	byEmployee := map[string]int{}
	byProject := map[string]int{}
	byCategory := map[string]int{}
	descCount := map[string]int{}
	var descOrder []string

	for _, r := range records {
		byDay[workrules.JakartaDay(r.Start)]++
		byEmployee[r.Employee]++
		byProject[r.Project]++
		byCategory[string(classify.ClassifyActivity(r.Description))]++

		if _, seen := descCount[r.Description]; !seen {
			descOrder = append(descOrder, r.Description)
		}
		descCount[r.Description]++
	}

	top := make([]models.DescriptionCount, 0, len(descOrder))
	for _, text := range descOrder {
		top = append(top, models.DescriptionCount{Text: text, Count: descCount[text]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if len(top) > 10 {
		top = top[:10]
	}

	density := 0.0
	if len(byDay) > 0 {
		density = float64(len(records)) / float64(len(byDay))
	}

	return models.VolumeMetrics{
		TotalCount:      len(records),
		CountByDay:      byDay,
		CountByEmployee: byEmployee,
		CountByProject:  byProject,
		CountByCategory: byCategory,
		TopDescriptions: top,
		ActivityDensity: density,
	}
}

// CalculateTimeMetrics sums logged time into hours and work-rule buckets
// and derives the duration-shape and classifier-based totals.
func CalculateTimeMetrics(records []models.ActivityRecord) models.TimeMetrics {
	totalMin := 0
	var regularMin, lunchMin, overtimeMin, weekendMin int

	byEmployee := map[string]int{}
	byProject := map[string]int{}
	byDescription := map[string]int{}
	byCategory := map[string]int{}
	durations := make([]int, 0, len(records))

	shortTasks := 0
	deepTasks := 0
	strategicMin := 0
	plannedMin := 0
	overtimeTaskCount := 0
	activeDays := map[string]bool{}

	for _, r := range records {
		min := r.DurationMinutes
		totalMin += min
		durations = append(durations, min)

		splits := workrules.SplitActivity(r.Start, r.End)
		regularMin += splits.RegularMinutes
		lunchMin += splits.LunchMinutes
		overtimeMin += splits.OvertimeMinutes
		weekendMin += splits.WeekendMinutes
		if splits.OvertimeMinutes > 0 {
			overtimeTaskCount++
		}

		byEmployee[r.Employee] += min
		byProject[r.Project] += min
		byDescription[r.Description] += min

		cat := classify.ClassifyActivity(r.Description)
		byCategory[string(cat)] += min
		if classify.IsStrategic(cat) {
			strategicMin += min
		}
		if classify.IsPlanned(r.Description, r.Project) {
			plannedMin += min
		}

		if min <= shortTaskMaxMinutes {
			shortTasks++
		}
		if min >= deepWorkMinMinutes {
			deepTasks++
		}

		activeDays[workrules.JakartaDay(r.Start)] = true
	}

	activeWorkdays := 0
	for day := range activeDays {
		if d, err := time.Parse("2006-01-02", day); err == nil {
			if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
				activeWorkdays++
			}
		}
	}

	totalHours := float64(totalMin) / 60

	// Average regular (not total) hours per active Mon-Fri day.
	avgHoursPerDay := 0.0
	if activeWorkdays > 0 {
		avgHoursPerDay = float64(regularMin) / 60 / float64(activeWorkdays)
	}
	avgHoursPerActiveDay := 0.0
	if len(activeDays) > 0 {
		avgHoursPerActiveDay = totalHours / float64(len(activeDays))
	}

	avgDuration := 0.0
	shortRatio := 0.0
	deepRatio := 0.0
	if len(records) > 0 {
		avgDuration = float64(totalMin) / float64(len(records))
		shortRatio = float64(shortTasks) / float64(len(records))
		deepRatio = float64(deepTasks) / float64(len(records))
	}

	return models.TimeMetrics{
		TotalHours:           totalHours,
		NetWorkingHours:      float64(regularMin) / 60,
		WorkDuringLunchHours: float64(lunchMin) / 60,
		WeekdayOvertimeHours: float64(overtimeMin) / 60,
		WeekendWorkHours:     float64(weekendMin) / 60,

		AvgHoursPerDay:       avgHoursPerDay,
		AvgHoursPerActiveDay: avgHoursPerActiveDay,

		HoursByEmployee:    minutesToHours(byEmployee),
		HoursByProject:     minutesToHours(byProject),
		HoursByDescription: minutesToHours(byDescription),

		AvgDurationPerTask:    avgDuration,
		MedianDurationPerTask: medianInt(durations),
		ShortTaskRatio:        shortRatio,
		DeepWorkRatio:         deepRatio,
		// Same definition as ShortTaskRatio, re-exposed under the name
		// the fragmentation views use.
		FragmentationIndex: shortRatio,

		HoursByCategory: minutesToHours(byCategory),
		MeetingHours:    float64(byCategory[string(classify.CategoryMeeting)]) / 60,
		StrategicHours:  float64(strategicMin) / 60,
		PlannedHours:    float64(plannedMin) / 60,
		OvertimeCount:   overtimeTaskCount,
	}
}

// CalculateBehaviorMetrics derives per-employee daily rhythm: average
// Jakarta clock-in (earliest start) and clock-out (latest end) across
// active days, plus an effort-consistency score from the coefficient of
// variation of daily hours.
func CalculateBehaviorMetrics(records []models.ActivityRecord) []models.BehaviorPattern {
	byEmployee := map[string][]models.ActivityRecord{}
	var employeeOrder []string

	for _, r := range records {
		if _, seen := byEmployee[r.Employee]; !seen {
			employeeOrder = append(employeeOrder, r.Employee)
		}
		byEmployee[r.Employee] = append(byEmployee[r.Employee], r)
	}

	patterns := make([]models.BehaviorPattern, 0, len(employeeOrder))
	for _, emp := range employeeOrder {
		recs := byEmployee[emp]

		type dayAgg struct {
			earliestStart time.Time
			totalMin      int
		}
		days := map[string]*dayAgg{}
		var dayOrder []string

		for _, r := range recs {
			day := workrules.JakartaDay(r.Start)
			agg, exists := days[day]
			if !exists {
				agg = &dayAgg{earliestStart: r.Start}
				days[day] = agg
				dayOrder = append(dayOrder, day)
			} else if r.Start.Before(agg.earliestStart) {
				agg.earliestStart = r.Start
			}
			agg.totalMin += r.DurationMinutes
		}

		totalClockInMin := 0
		totalClockOutMin := 0
		var dailyHours []float64

		for _, day := range dayOrder {
			agg := days[day]

			first := workrules.Jakarta(agg.earliestStart)
			totalClockInMin += first.Hour()*60 + first.Minute()

			// Latest end among the day's records.
			var maxEnd time.Time
			for _, r := range recs {
				if workrules.JakartaDay(r.Start) == day && r.End.After(maxEnd) {
					maxEnd = r.End
				}
			}
			last := workrules.Jakarta(maxEnd)
			totalClockOutMin += last.Hour()*60 + last.Minute()

			dailyHours = append(dailyHours, float64(agg.totalMin)/60)
		}

		validDays := len(dailyHours)

		avgDaily := 0.0
		variance := 0.0
		if validDays > 0 {
			for _, h := range dailyHours {
				avgDaily += h
			}
			avgDaily /= float64(validDays)
			for _, h := range dailyHours {
				variance += (h - avgDaily) * (h - avgDaily)
			}
			variance /= float64(validDays)
		}

		cv := 0.0
		if avgDaily > 0 {
			cv = math.Sqrt(variance) / avgDaily
		}
		consistency := math.Max(0, 100*(1-cv))

		avgClockIn := 0.0
		avgClockOut := 0.0
		if validDays > 0 {
			avgClockIn = float64(totalClockInMin) / float64(validDays)
			avgClockOut = float64(totalClockOutMin) / float64(validDays)
		}

		patterns = append(patterns, models.BehaviorPattern{
			Employee:          emp,
			AvgClockIn:        minutesToClock(avgClockIn),
			AvgClockOut:       minutesToClock(avgClockOut),
			AvgDailyHours:     avgDaily,
			EffortConsistency: consistency,
		})
	}

	return patterns
}

// minutesToHours converts a minutes map into an hours map.
func minutesToHours(minutes map[string]int) map[string]float64 {
	hours := make(map[string]float64, len(minutes))
	for k, v := range minutes {
		hours[k] = float64(v) / 60
	}
	return hours
}

// medianInt returns the median of durations; even counts average the two
// middle values.
func medianInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

// minutesToClock formats a minutes-of-day value as HH:mm.
func minutesToClock(totalMin float64) string {
	h := int(totalMin) / 60
	m := int(totalMin) % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
