package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worklog-report/internal/services"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	dashboardService *services.DashboardService
}

// NewHandlers creates a new handlers instance
func NewHandlers(dashboardService *services.DashboardService) *Handlers {
	return &Handlers{dashboardService: dashboardService}
}

// GetDataHandler handles GET /api/data. It returns the normalized batch
// with per-row errors, raw-row preview and provenance.
func (h *Handlers) GetDataHandler(c *gin.Context) {
	snapshot, err := h.dashboardService.GetData(c.Request.Context(), c.Query("source"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data", "details": err.Error()})
		return
	}

	result := snapshot.Result
	c.JSON(http.StatusOK, gin.H{
		"records":         result.Records,
		"errors":          result.Errors,
		"rawRows":         result.RawRows,
		"detectedColumns": result.DetectedColumns,
		"meta": gin.H{
			"batchId":         result.BatchID,
			"totalRows":       result.TotalRows,
			"validCount":      len(result.Records),
			"errorCount":      len(result.Errors),
			"servedFromCache": snapshot.FromCache,
			"stale":           snapshot.Stale,
			"lastUpdated":     snapshot.FetchedAt,
		},
	})
}

// GetDashboardHandler handles GET /api/dashboard. Optional employee and
// project query parameters narrow the batch before metrics are computed.
func (h *Handlers) GetDashboardHandler(c *gin.Context) {
	snapshot, err := h.dashboardService.GetData(c.Request.Context(), c.Query("source"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data", "details": err.Error()})
		return
	}

	records := h.dashboardService.FilterRecords(
		snapshot.Result.Records,
		c.Query("employee"),
		c.Query("project"),
	)
	dashboard := h.dashboardService.BuildDashboard(records)

	c.JSON(http.StatusOK, gin.H{
		"dashboard": dashboard,
		"batchId":   snapshot.Result.BatchID,
		"fetchedAt": snapshot.FetchedAt,
		"stale":     snapshot.Stale,
	})
}

// GetEmployeeTimelineHandler handles GET /api/employees/:name/timeline
func (h *Handlers) GetEmployeeTimelineHandler(c *gin.Context) {
	snapshot, err := h.dashboardService.GetData(c.Request.Context(), c.Query("source"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data", "details": err.Error()})
		return
	}

	timeline, err := h.dashboardService.EmployeeTimeline(snapshot.Result.Records, c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employee": c.Param("name"),
		"timeline": timeline,
	})
}

// GetProjectStatsHandler handles GET /api/projects/:name/stats
func (h *Handlers) GetProjectStatsHandler(c *gin.Context) {
	snapshot, err := h.dashboardService.GetData(c.Request.Context(), c.Query("source"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data", "details": err.Error()})
		return
	}

	stats, err := h.dashboardService.ProjectStats(snapshot.Result.Records, c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": c.Param("name"),
		"stats":   stats,
	})
}
