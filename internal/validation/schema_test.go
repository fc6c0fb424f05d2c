package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog-report/internal/models"
)

func validRecord() models.ActivityRecord {
	start := time.Date(2025, time.November, 3, 2, 0, 0, 0, time.UTC)
	return models.ActivityRecord{
		ID:              "0-Alice-1762135200000",
		Start:           start,
		End:             start.Add(time.Hour),
		DurationMinutes: 60,
		Employee:        "Alice",
		Project:         "Platform",
		Category:        "Development",
		Description:     "Implement ingestion retries",
		Task:            "Ingestion",
	}
}

func TestValidateAcceptsWellFormedRecord(t *testing.T) {
	v, err := NewRecordValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(validRecord()))
}

func TestValidateRejectsBlankRequiredFields(t *testing.T) {
	v, err := NewRecordValidator()
	require.NoError(t, err)

	rec := validRecord()
	rec.Employee = ""
	err = v.Validate(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")

	rec = validRecord()
	rec.ID = ""
	assert.Error(t, v.Validate(rec))

	rec = validRecord()
	rec.Category = ""
	assert.Error(t, v.Validate(rec))
}

func TestValidateRejectsNegativeDuration(t *testing.T) {
	v, err := NewRecordValidator()
	require.NoError(t, err)

	rec := validRecord()
	rec.DurationMinutes = -5
	assert.Error(t, v.Validate(rec))
}

func TestValidateAllowsEmptyDescription(t *testing.T) {
	v, err := NewRecordValidator()
	require.NoError(t, err)

	rec := validRecord()
	rec.Description = ""
	assert.NoError(t, v.Validate(rec))
}
