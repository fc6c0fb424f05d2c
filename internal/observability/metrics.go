package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	fetchAttempts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worklog_report",
		Subsystem: "fetch",
		Name:      "attempts_total",
		Help:      "HTTP attempts made against the CSV source, including retries.",
	})
	fetchFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worklog_report",
		Subsystem: "fetch",
		Name:      "failures_total",
		Help:      "Fetch cycles that failed after exhausting the retry budget.",
	})
	rowsParsed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worklog_report",
		Subsystem: "normalize",
		Name:      "rows_parsed_total",
		Help:      "CSV data rows that produced a valid activity record.",
	})
	rowErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worklog_report",
		Subsystem: "normalize",
		Name:      "row_errors_total",
		Help:      "CSV data rows rejected during normalization.",
	})
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worklog_report",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Requests served from a fresh cached result.",
	})
	staleServes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worklog_report",
		Subsystem: "cache",
		Name:      "stale_serves_total",
		Help:      "Requests served from an expired cached result after a fetch failure.",
	})
)

func init() {
	prometheus.MustRegister(fetchAttempts, fetchFailures, rowsParsed, rowErrors, cacheHits, staleServes)
}

// RecordFetchAttempt counts one HTTP attempt against the source.
func RecordFetchAttempt() {
	fetchAttempts.Inc()
}

// RecordFetchFailure counts one fetch cycle lost after retry exhaustion.
func RecordFetchFailure() {
	fetchFailures.Inc()
}

// RecordRowsParsed counts rows that normalized cleanly.
func RecordRowsParsed(n int) {
	rowsParsed.Add(float64(n))
}

// RecordRowErrors counts rows rejected during normalization.
func RecordRowErrors(n int) {
	rowErrors.Add(float64(n))
}

// RecordCacheHit counts one request served from a fresh cache entry.
func RecordCacheHit() {
	cacheHits.Inc()
}

// RecordStaleServe counts one request answered with stale data.
func RecordStaleServe() {
	staleServes.Inc()
}
