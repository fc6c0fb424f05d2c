package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"worklog-report/internal/fetch"
	"worklog-report/internal/metrics"
	"worklog-report/internal/models"
	"worklog-report/internal/normalize"
	"worklog-report/internal/observability"
)

// DashboardService fetches, normalizes and caches activity data and
// computes the dashboard metric bundle from it.
type DashboardService struct {
	fetcher       *fetch.Client
	cache         *fetch.ResultCache
	normalizer    *normalize.Normalizer
	defaultSource string
}

// DataSnapshot is one served batch of normalized data plus its provenance.
type DataSnapshot struct {
	Result    *models.ParseResult `json:"result"`
	FetchedAt time.Time           `json:"fetchedAt"`
	FromCache bool                `json:"fromCache"`
	Stale     bool                `json:"stale"`
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(fetcher *fetch.Client, cache *fetch.ResultCache, normalizer *normalize.Normalizer, defaultSource string) *DashboardService {
	return &DashboardService{
		fetcher:       fetcher,
		cache:         cache,
		normalizer:    normalizer,
		defaultSource: defaultSource,
	}
}

// GetData returns the normalized records for a source, serving from the
// cache while fresh and falling back to a stale cached result when the
// upstream fetch fails. An empty source selects the configured default.
func (s *DashboardService) GetData(ctx context.Context, source string) (*DataSnapshot, error) {
	if source == "" {
		source = s.defaultSource
	}
	url := fetch.ResolveSourceURL(source)

	if result, fetchedAt, ok := s.cache.GetFresh(url); ok {
		observability.RecordCacheHit()
		return &DataSnapshot{Result: result, FetchedAt: fetchedAt, FromCache: true}, nil
	}

	csvText, err := s.fetcher.FetchCSV(ctx, url)
	if err != nil {
		if result, fetchedAt, ok := s.cache.GetStale(url); ok {
			log.Printf("Fetch failed, serving stale data from %s: %v", fetchedAt.Format(time.RFC3339), err)
			observability.RecordStaleServe()
			return &DataSnapshot{Result: result, FetchedAt: fetchedAt, FromCache: true, Stale: true}, nil
		}
		return nil, fmt.Errorf("failed to fetch data: %w", err)
	}

	result := s.normalizer.Normalize(csvText)
	log.Printf("Parsed %d records (%d row errors) from source", len(result.Records), len(result.Errors))

	s.cache.Set(url, result)
	return &DataSnapshot{Result: result, FetchedAt: time.Now()}, nil
}

// FilterRecords narrows a batch to one employee and/or project. Empty
// filter values match everything.
func (s *DashboardService) FilterRecords(records []models.ActivityRecord, employee, project string) []models.ActivityRecord {
	if employee == "" && project == "" {
		return records
	}
	filtered := make([]models.ActivityRecord, 0, len(records))
	for _, r := range records {
		if employee != "" && r.Employee != employee {
			continue
		}
		if project != "" && r.Project != project {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// BuildDashboard computes every metric family for a record batch.
func (s *DashboardService) BuildDashboard(records []models.ActivityRecord) models.Dashboard {
	return models.Dashboard{
		Volume:               metrics.CalculateVolumeMetrics(records),
		Time:                 metrics.CalculateTimeMetrics(records),
		Behavior:             metrics.CalculateBehaviorMetrics(records),
		Heatmap:              metrics.CalculateHeatmapData(records),
		WeeklyTrend:          metrics.CalculateWeeklyTrend(records),
		FragmentationTrend:   metrics.CalculateFragmentationTrend(records),
		DailyBehavior:        metrics.CalculateDailyBehaviorSeries(records),
		DurationDistribution: metrics.CalculateDurationDistribution(records),
		ProjectPerformance:   metrics.CalculateProjectPerformance(records),
	}
}

// EmployeeTimeline computes the daily drilldown for one employee.
func (s *DashboardService) EmployeeTimeline(records []models.ActivityRecord, employee string) ([]models.EmployeeDailyStats, error) {
	filtered := s.FilterRecords(records, employee, "")
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no records for employee: %s", employee)
	}
	return metrics.CalculateEmployeeDailyTimeline(filtered), nil
}

// ProjectStats computes the drilldown aggregate for one project.
func (s *DashboardService) ProjectStats(records []models.ActivityRecord, project string) (models.ProjectStats, error) {
	filtered := s.FilterRecords(records, "", project)
	if len(filtered) == 0 {
		return models.ProjectStats{}, fmt.Errorf("no records for project: %s", project)
	}
	return metrics.CalculateProjectStats(filtered), nil
}
