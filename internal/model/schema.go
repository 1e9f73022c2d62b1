package model

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"

	"resume-composer/internal/domain"
)

// The candidate schema is embedded so validation does not depend on the
// working directory; it checks structure (types) only, field-level
// invariants live in the builder.
//
//go:embed resume.schema.json
var resumeSchemaJSON []byte

// validateShape runs the candidate map through the embedded JSON schema and
// returns every structural violation.
func validateShape(m map[string]interface{}) ([]domain.FieldError, error) {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchemaJSON)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, err
	}
	if res.Valid() {
		return nil, nil
	}
	fields := make([]domain.FieldError, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		fields = append(fields, domain.FieldError{Field: e.Field(), Message: e.Description()})
	}
	return fields, nil
}
