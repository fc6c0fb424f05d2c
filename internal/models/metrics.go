package models

// DescriptionCount is one entry in the top-descriptions ranking.
type DescriptionCount struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// VolumeMetrics counts activity by day, employee, project and derived
// category. Days are keyed by Jakarta calendar date (YYYY-MM-DD).
type VolumeMetrics struct {
	TotalCount      int                `json:"totalCount"`
	CountByDay      map[string]int     `json:"countByDay"`
	CountByEmployee map[string]int     `json:"countByEmployee"`
	CountByProject  map[string]int     `json:"countByProject"`
	CountByCategory map[string]int     `json:"countByCategory"`
	TopDescriptions []DescriptionCount `json:"topDescriptions"`
	ActivityDensity float64            `json:"activityDensity"`
}

// TimeMetrics sums logged time into hours and the four work-rule buckets,
// plus duration-shape ratios and classifier-derived totals.
type TimeMetrics struct {
	TotalHours           float64 `json:"totalHours"`
	NetWorkingHours      float64 `json:"netWorkingHours"`
	WorkDuringLunchHours float64 `json:"workDuringLunchHours"`
	WeekdayOvertimeHours float64 `json:"weekdayOvertimeHours"`
	WeekendWorkHours     float64 `json:"weekendWorkHours"`

	AvgHoursPerDay       float64 `json:"avgHoursPerDay"`
	AvgHoursPerActiveDay float64 `json:"avgHoursPerActiveDay"`

	HoursByEmployee    map[string]float64 `json:"hoursByEmployee"`
	HoursByProject     map[string]float64 `json:"hoursByProject"`
	HoursByDescription map[string]float64 `json:"hoursByDescription"`

	AvgDurationPerTask    float64 `json:"avgDurationPerTask"`
	MedianDurationPerTask float64 `json:"medianDurationPerTask"`
	ShortTaskRatio        float64 `json:"shortTaskRatio"`
	DeepWorkRatio         float64 `json:"deepWorkRatio"`
	FragmentationIndex    float64 `json:"fragmentationIndex"`

	HoursByCategory map[string]float64 `json:"hoursByCategory"`
	MeetingHours    float64            `json:"meetingHours"`
	StrategicHours  float64            `json:"strategicHours"`
	PlannedHours    float64            `json:"plannedHours"`
	OvertimeCount   int                `json:"overtimeCount"`
}

// BehaviorPattern summarizes one employee's daily rhythm: average
// clock-in/out as Jakarta wall-clock HH:mm and a 0-100 consistency score.
type BehaviorPattern struct {
	Employee          string  `json:"employee"`
	AvgClockIn        string  `json:"avgClockIn"`
	AvgClockOut       string  `json:"avgClockOut"`
	AvgDailyHours     float64 `json:"avgDailyHours"`
	EffortConsistency float64 `json:"effortConsistency"`
}

// HeatmapPoint is one cell of the 7x24 weekday-by-hour activity grid.
// DayOfWeek follows time.Weekday numbering (0=Sunday).
type HeatmapPoint struct {
	DayOfWeek int `json:"dayOfWeek"`
	HourOfDay int `json:"hourOfDay"`
	Value     int `json:"value"`
}

// WeeklyPoint is one calendar week's logged hours, labeled by the
// week-start date ("Oct 2").
type WeeklyPoint struct {
	Week  string  `json:"week"`
	Hours float64 `json:"hours"`
}

// FragmentationPoint is one calendar week's short-task ratio.
type FragmentationPoint struct {
	Week  string  `json:"week"`
	Index float64 `json:"index"`
}

// DailyBehavior is one day's displayed clock-in/out (Jakarta hour as a
// decimal) and accumulated break hours.
type DailyBehavior struct {
	Date       string  `json:"date"`
	ClockIn    float64 `json:"clockIn"`
	ClockOut   float64 `json:"clockOut"`
	BreakHours float64 `json:"breakHours"`
}

// DurationBin is one bucket of the fixed task-duration histogram.
type DurationBin struct {
	Bin   string `json:"bin"`
	Count int    `json:"count"`
}

// EmployeeDailyStats is one row of the per-employee daily timeline
// drilldown. BreakHours excludes the standard lunch window on workdays.
type EmployeeDailyStats struct {
	Date          string  `json:"date"`
	FirstActivity string  `json:"firstActivity"`
	LastActivity  string  `json:"lastActivity"`
	LoggedHours   float64 `json:"loggedHours"`
	BreakHours    float64 `json:"breakHours"`
	TaskCount     int     `json:"taskCount"`
}

// ProjectDescriptionStat ranks one description within a project.
type ProjectDescriptionStat struct {
	Desc  string  `json:"desc"`
	Count int     `json:"count"`
	Hours float64 `json:"hours"`
}

// Contributor is one employee's share of a project's logged hours.
type Contributor struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
	Share float64 `json:"share"`
}

// ProjectStats is the project drilldown aggregate.
type ProjectStats struct {
	TopDescriptions []ProjectDescriptionStat `json:"topDescriptions"`
	Contributors    []Contributor            `json:"contributors"`
}

// ProjectPerformance is one project's totals in the performance table.
type ProjectPerformance struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
	Share float64 `json:"share"`
	Count int     `json:"count"`
}

// Dashboard bundles every metric family computed from one record batch.
type Dashboard struct {
	Volume               VolumeMetrics        `json:"volume"`
	Time                 TimeMetrics          `json:"time"`
	Behavior             []BehaviorPattern    `json:"behavior"`
	Heatmap              []HeatmapPoint       `json:"heatmap"`
	WeeklyTrend          []WeeklyPoint        `json:"weeklyTrend"`
	FragmentationTrend   []FragmentationPoint `json:"fragmentationTrend"`
	DailyBehavior        []DailyBehavior      `json:"dailyBehavior"`
	DurationDistribution []DurationBin        `json:"durationDistribution"`
	ProjectPerformance   []ProjectPerformance `json:"projectPerformance"`
}
