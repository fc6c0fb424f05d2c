// Package workrules splits activity intervals into time buckets under the
// fixed Jakarta weekly work calendar.
package workrules

import "time"

// Jakarta is UTC+7 with no daylight saving.
const jakartaOffset = 7 * time.Hour

// Weekday work calendar, in minutes from Jakarta midnight:
// 00:00-08:00 overtime, 08:00-12:00 regular, 12:00-13:00 lunch,
// 13:00-17:00 regular, 17:00-24:00 overtime. Saturday and Sunday are
// weekend wall to wall.
const (
	workStartMin  = 8 * 60
	lunchStartMin = 12 * 60
	lunchEndMin   = 13 * 60
	workEndMin    = 17 * 60
	dayEndMin     = 24 * 60
)

type bucket int

const (
	bucketRegular bucket = iota
	bucketLunch
	bucketOvertime
	bucketWeekend
)

// weekdayWindow is one contiguous run of a single bucket on a Mon-Fri day.
type weekdayWindow struct {
	endMin int
	bucket bucket
}

// The rule table the interval walker consults. Kept as data so the
// calendar can be tested independently of the walking loop.
var weekdayWindows = []weekdayWindow{
	{workStartMin, bucketOvertime},
	{lunchStartMin, bucketRegular},
	{lunchEndMin, bucketLunch},
	{workEndMin, bucketRegular},
	{dayEndMin, bucketOvertime},
}

// TimeSplits is the minute-granular breakdown of one interval. The four
// fields always sum to the interval's total whole minutes.
type TimeSplits struct {
	RegularMinutes  int `json:"regularMinutes"`
	LunchMinutes    int `json:"lunchMinutes"`
	OvertimeMinutes int `json:"overtimeMinutes"`
	WeekendMinutes  int `json:"weekendMinutes"`
}

// Jakarta returns a shifted instant whose UTC clock fields read as
// Jakarta wall-clock time.
func Jakarta(t time.Time) time.Time {
	return t.Add(jakartaOffset).UTC()
}

// JakartaDay returns the Jakarta calendar date of an instant, YYYY-MM-DD.
func JakartaDay(t time.Time) string {
	return Jakarta(t).Format("2006-01-02")
}

// IsJakartaWeekend reports whether an instant falls on a Jakarta-local
// Saturday or Sunday.
func IsJakartaWeekend(t time.Time) bool {
	day := Jakarta(t).Weekday()
	return day == time.Saturday || day == time.Sunday
}

// ruleAt resolves the active bucket at a Jakarta wall-clock position and
// the minute-of-day at which that bucket ends.
func ruleAt(weekday time.Weekday, minuteOfDay int) (bucket, int) {
	if weekday == time.Saturday || weekday == time.Sunday {
		return bucketWeekend, dayEndMin
	}
	for _, w := range weekdayWindows {
		if minuteOfDay < w.endMin {
			return w.bucket, w.endMin
		}
	}
	// Unreachable: minuteOfDay is always < dayEndMin.
	return bucketOvertime, dayEndMin
}

// SplitActivity walks an interval from start to end, accumulating whole
// minutes into the bucket active at each position. Multi-day and
// multi-boundary intervals are handled by advancing to the nearer of the
// next rule boundary and the interval end. A degenerate interval
// (end <= start) yields all-zero splits.
//
// Accounting is whole-minute: a sub-minute tail is dropped, and a forced
// 1-minute step guarantees termination when boundary math would otherwise
// stall with time remaining.
func SplitActivity(start, end time.Time) TimeSplits {
	var splits TimeSplits

	current := start
	for current.Before(end) {
		j := Jakarta(current)
		minuteOfDay := j.Hour()*60 + j.Minute()

		b, boundary := ruleAt(j.Weekday(), minuteOfDay)

		step := boundary - minuteOfDay
		if untilEnd := int(end.Sub(current) / time.Minute); untilEnd < step {
			step = untilEnd
		}
		if step <= 0 {
			if end.Sub(current) <= 0 {
				break
			}
			if end.Sub(current) < time.Minute {
				// Sub-minute remainder; not representable at this granularity.
				break
			}
			step = 1
		}

		switch b {
		case bucketRegular:
			splits.RegularMinutes += step
		case bucketLunch:
			splits.LunchMinutes += step
		case bucketOvertime:
			splits.OvertimeMinutes += step
		case bucketWeekend:
			splits.WeekendMinutes += step
		}

		current = current.Add(time.Duration(step) * time.Minute)
	}

	return splits
}

// OverlapsLunchGap returns how many minutes of an interval fall inside
// the 12:00-13:00 Jakarta window on workdays. Downstream break-time
// calculations use it to avoid penalizing a standard lunch break as an
// unproductive gap.
func OverlapsLunchGap(start, end time.Time) int {
	return SplitActivity(start, end).LunchMinutes
}

// TotalMinutes is the sum of all four buckets.
func (s TimeSplits) TotalMinutes() int {
	return s.RegularMinutes + s.LunchMinutes + s.OvertimeMinutes + s.WeekendMinutes
}
