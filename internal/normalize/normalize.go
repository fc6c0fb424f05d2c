// Package normalize turns loosely structured CSV exports of activity logs
// into validated activity records, isolating failures per row.
package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"worklog-report/internal/classify"
	"worklog-report/internal/dates"
	"worklog-report/internal/models"
	"worklog-report/internal/observability"
	"worklog-report/internal/validation"
)

// previewRows is how many raw rows are kept for diagnostic preview.
const previewRows = 20

// Fallback values applied when a source column is absent or blank.
const (
	defaultEmployee = "Unknown"
	defaultProject  = "Unassigned"
	defaultCategory = "General"
	defaultTask     = "Unspecified Task"
)

// Normalizer maps raw CSV rows to activity records.
type Normalizer struct {
	validator *validation.RecordValidator
}

// NewNormalizer creates a normalizer using the given record validator.
func NewNormalizer(validator *validation.RecordValidator) *Normalizer {
	return &Normalizer{validator: validator}
}

// Normalize parses header-rowed CSV text into records plus per-row
// errors. A bad row never aborts the batch: it is recorded with its
// 1-based source line number and skipped. Only an unreadable header
// short-circuits, yielding an empty result with one synthetic error.
func (n *Normalizer) Normalize(csvText string) *models.ParseResult {
	result := &models.ParseResult{
		BatchID:         uuid.NewString(),
		Records:         []models.ActivityRecord{},
		Errors:          []models.ParsingError{},
		RawRows:         []map[string]string{},
		DetectedColumns: []string{},
	}

	// Spreadsheet exports often lead with a BOM.
	csvText = strings.TrimPrefix(csvText, "\ufeff")

	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return result
	}
	if err != nil {
		result.Errors = append(result.Errors, models.ParsingError{
			Row:     0,
			Message: "CSV parsing error: " + err.Error(),
			Data:    map[string]string{},
		})
		return result
	}
	result.DetectedColumns = header

	index := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, models.ParsingError{
				Row:     index + 2,
				Message: "CSV parsing error: " + err.Error(),
				Data:    map[string]string{},
			})
			index++
			continue
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(fields) {
				row[name] = fields[i]
			}
		}

		if index < previewRows {
			result.RawRows = append(result.RawRows, row)
		}

		record, err := n.normalizeRow(index, row)
		if err != nil {
			// +2 converts the 0-based data index to the 1-based source
			// line number past the header.
			result.Errors = append(result.Errors, models.ParsingError{
				Row:     index + 2,
				Message: err.Error(),
				Data:    row,
			})
		} else {
			result.Records = append(result.Records, record)
		}
		index++
	}

	result.TotalRows = index
	observability.RecordRowsParsed(len(result.Records))
	observability.RecordRowErrors(len(result.Errors))
	return result
}

// normalizeRow assembles and validates one record from a mapped row.
func (n *Normalizer) normalizeRow(index int, row map[string]string) (models.ActivityRecord, error) {
	startDate := pick(row, "start_date", "Date")
	startTime := row["start_time"]
	endDate := pick(row, "end_date")
	if endDate == "" {
		endDate = startDate
	}
	endTime := row["end_time"]

	employee := pick(row, "Employee", "Owner")
	if employee == "" {
		employee = defaultEmployee
	}
	project := row["Project"]
	if project == "" {
		project = defaultProject
	}
	category := pick(row, "Task", "Category")
	if category == "" {
		category = defaultCategory
	}
	description := pick(row, "Description", "Activity")

	start, ok := dates.Parse(startDate, startTime)
	if !ok {
		return models.ActivityRecord{}, fmt.Errorf("missing or invalid start date")
	}

	end, ok := dates.Parse(endDate, endTime)
	if !ok {
		// Derive from a decimal-hours duration column, else fall back to
		// a zero-duration record rather than failing the row.
		if hours, err := strconv.ParseFloat(strings.TrimSpace(row["duration"]), 64); err == nil && hours > 0 {
			end = start.Add(time.Duration(hours * float64(time.Hour)))
		} else {
			end = start
		}
	}

	durationMinutes := int(end.Sub(start) / time.Minute)
	if durationMinutes < 0 {
		durationMinutes = 0
	}

	finalCategory := category
	if finalCategory == "" || finalCategory == defaultCategory || finalCategory == defaultProject {
		finalCategory = string(classify.ClassifyActivity(description))
	}

	task := strings.TrimSpace(pick(row, "Task", "TASK"))
	if task == "" {
		task = defaultTask
	}

	record := models.ActivityRecord{
		ID:              fmt.Sprintf("%d-%s-%d", index, employee, start.UnixMilli()),
		Start:           start,
		End:             end,
		DurationMinutes: durationMinutes,
		Employee:        employee,
		Project:         project,
		Category:        finalCategory,
		Description:     description,
		Task:            task,
	}

	if err := n.validator.Validate(record); err != nil {
		return models.ActivityRecord{}, err
	}

	return record, nil
}

// pick returns the first non-empty value among the aliased column names.
func pick(row map[string]string, names ...string) string {
	for _, name := range names {
		if v := row[name]; v != "" {
			return v
		}
	}
	return ""
}
