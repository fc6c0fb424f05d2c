// Package validation checks fully assembled activity records against the
// canonical JSON schema before they enter a batch.
package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"worklog-report/internal/models"
)

//go:embed record_schema.json
var recordSchemaJSON []byte

// RecordValidator validates activity records against the embedded schema.
type RecordValidator struct {
	schema *gojsonschema.Schema
}

// NewRecordValidator compiles the embedded record schema.
func NewRecordValidator() (*RecordValidator, error) {
	schemaLoader := gojsonschema.NewBytesLoader(recordSchemaJSON)
	schema, err := gojsonschema.NewSchema(schemaLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to compile record schema: %w", err)
	}
	return &RecordValidator{schema: schema}, nil
}

// Validate checks one record. A non-nil error describes every schema
// violation found, so a failed row's diagnostic is complete in one pass.
func (v *RecordValidator) Validate(record models.ActivityRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("failed to validate record: %w", err)
	}

	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return fmt.Errorf("schema validation failed: %s", strings.Join(details, "; "))
	}

	return nil
}
