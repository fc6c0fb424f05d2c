package models

import "time"

// ActivityRecord is the canonical unit produced by the normalizer: one
// logged activity with resolved timestamps and derived duration. Records
// are immutable once created; every fetch produces a fresh batch.
type ActivityRecord struct {
	ID              string    `json:"id"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"durationMinutes"`
	Employee        string    `json:"employee"`
	Project         string    `json:"project"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	Task            string    `json:"task"`
}

// ParsingError records a single failed CSV row. Row is the 1-based line
// number in the source file (header is line 1, first data row is line 2).
type ParsingError struct {
	Row     int               `json:"row"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

// ParseResult is the aggregate output of one normalization run. Row
// failures never abort the batch: valid rows land in Records, failed rows
// in Errors, and RawRows keeps the first rows for diagnostic preview.
type ParseResult struct {
	BatchID         string              `json:"batchId"`
	Records         []ActivityRecord    `json:"records"`
	Errors          []ParsingError      `json:"errors"`
	RawRows         []map[string]string `json:"rawRows"`
	DetectedColumns []string            `json:"detectedColumns"`
	TotalRows       int                 `json:"totalRows"`
}
