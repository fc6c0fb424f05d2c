package normalize

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worklog-report/internal/validation"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	validator, err := validation.NewRecordValidator()
	require.NoError(t, err)
	return NewNormalizer(validator)
}

func TestNormalizeHappyPath(t *testing.T) {
	csvText := strings.Join([]string{
		"start_date,start_time,end_date,end_time,Employee,Project,Task,Description",
		"3-Nov-25,8:00:00 AM,3-Nov-25,9:30:00 AM,Alice,Platform,Ingestion,Debug ETL pipeline",
	}, "\n")

	result := newTestNormalizer(t).Normalize(csvText)

	require.Len(t, result.Records, 1)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 1, result.TotalRows)
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t,
		[]string{"start_date", "start_time", "end_date", "end_time", "Employee", "Project", "Task", "Description"},
		result.DetectedColumns)

	rec := result.Records[0]
	assert.Equal(t, time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC), rec.Start)
	assert.Equal(t, time.Date(2025, time.November, 3, 9, 30, 0, 0, time.UTC), rec.End)
	assert.Equal(t, 90, rec.DurationMinutes)
	assert.Equal(t, "Alice", rec.Employee)
	assert.Equal(t, "Platform", rec.Project)
	assert.Equal(t, "Ingestion", rec.Category)
	assert.Equal(t, "Ingestion", rec.Task)
	assert.Equal(t, fmt.Sprintf("0-Alice-%d", rec.Start.UnixMilli()), rec.ID)
}

func TestNormalizeInvalidStartDateIsolatedToRow(t *testing.T) {
	csvText := strings.Join([]string{
		"start_date,start_time,Employee,Project,Task,Description",
		"not-a-date,8:00:00 AM,Alice,Platform,Ingestion,Debug pipeline",
		"3-Nov-25,9:00:00 AM,Bob,Platform,Review,PR review backlog",
	}, "\n")

	result := newTestNormalizer(t).Normalize(csvText)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Bob", result.Records[0].Employee)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Message, "start date")
	assert.Equal(t, "not-a-date", result.Errors[0].Data["start_date"])
	assert.Equal(t, 2, result.TotalRows)
}

func TestNormalizeEndDerivedFromDuration(t *testing.T) {
	csvText := strings.Join([]string{
		"start_date,start_time,Employee,duration",
		"3-Nov-25,8:00:00 AM,Alice,1.5",
	}, "\n")

	result := newTestNormalizer(t).Normalize(csvText)

	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, 90, rec.DurationMinutes)
	assert.Equal(t, rec.Start.Add(90*time.Minute), rec.End)
}

func TestNormalizeMissingEndAndDurationYieldsZeroDuration(t *testing.T) {
	csvText := strings.Join([]string{
		"start_date,start_time,Employee",
		"3-Nov-25,8:00:00 AM,Alice",
	}, "\n")

	result := newTestNormalizer(t).Normalize(csvText)

	require.Len(t, result.Records, 1)
	assert.Equal(t, 0, result.Records[0].DurationMinutes)
	assert.Equal(t, result.Records[0].Start, result.Records[0].End)
}

func TestNormalizeEndBeforeStartClampedToZero(t *testing.T) {
	csvText := strings.Join([]string{
		"start_date,start_time,end_date,end_time,Employee",
		"3-Nov-25,9:00:00 AM,3-Nov-25,8:00:00 AM,Alice",
	}, "\n")

	result := newTestNormalizer(t).Normalize(csvText)

	require.Len(t, result.Records, 1)
	assert.Equal(t, 0, result.Records[0].DurationMinutes)
}

func TestNormalizeColumnAliasesAndDefaults(t *testing.T) {
	csvText := strings.Join([]string{
		"Date,Owner,Activity",
		"2025-11-03,Carol,Churn analysis deep dive",
	}, "\n")

	result := newTestNormalizer(t).Normalize(csvText)

	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, "Carol", rec.Employee)
	assert.Equal(t, "Unassigned", rec.Project)
	assert.Equal(t, "Churn analysis deep dive", rec.Description)
	// No Task column: category falls back and is re-derived from the
	// description by the classifier.
	assert.Equal(t, "Analysis", rec.Category)
	assert.Equal(t, "Unspecified Task", rec.Task)
}

func TestNormalizeGenericCategoryReclassified(t *testing.T) {
	csvText := strings.Join([]string{
		"start_date,Employee,Task,Description",
		"2025-11-03,Alice,General,Weekly standup",
	}, "\n")

	result := newTestNormalizer(t).Normalize(csvText)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Meeting", result.Records[0].Category)
	// The dedicated task field keeps the raw value.
	assert.Equal(t, "General", result.Records[0].Task)
}

func TestNormalizeMissingEmployeeDefaultsToUnknown(t *testing.T) {
	csvText := strings.Join([]string{
		"start_date,Project,Description",
		"2025-11-03,Platform,Standup notes",
	}, "\n")

	result := newTestNormalizer(t).Normalize(csvText)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Unknown", result.Records[0].Employee)
}

func TestNormalizeRawRowPreviewCapped(t *testing.T) {
	lines := []string{"start_date,Employee"}
	for i := 0; i < 25; i++ {
		lines = append(lines, fmt.Sprintf("2025-11-%02d,Emp%d", i%27+1, i))
	}

	result := newTestNormalizer(t).Normalize(strings.Join(lines, "\n"))

	assert.Equal(t, 25, result.TotalRows)
	assert.Len(t, result.RawRows, 20)
	assert.Len(t, result.Records, 25)
}

func TestNormalizeStructuralFailure(t *testing.T) {
	// An unterminated quote in the header makes the stream unreadable.
	result := newTestNormalizer(t).Normalize("start_date,\"Employee\n2025-11-03,Alice")

	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.TotalRows)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 0, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Message, "CSV parsing error")
}

func TestNormalizeEmptyInput(t *testing.T) {
	result := newTestNormalizer(t).Normalize("")

	assert.Empty(t, result.Records)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 0, result.TotalRows)
}

func TestNormalizeRaggedRowStillMapped(t *testing.T) {
	csvText := strings.Join([]string{
		"start_date,start_time,Employee,Project",
		"2025-11-03,09:00",
	}, "\n")

	result := newTestNormalizer(t).Normalize(csvText)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Unknown", result.Records[0].Employee)
	assert.Equal(t, "Unassigned", result.Records[0].Project)
}
