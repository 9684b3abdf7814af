package schemas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["version", "industry"],
	"properties": {
		"version": {"type": "string"},
		"industry": {"type": "string"}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"version": "1.0.0", "industry": "technology"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"version": "1.0.0"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
	assert.Contains(t, err.Error(), "industry")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"version": 1, "industry": "technology"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{ invalid json }`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{ not a schema `, `{"version": "1.0.0"}`)
	require.Error(t, err)
}

func TestForecastModelSchema_Embedded(t *testing.T) {
	require.NotEmpty(t, ForecastModelSchema)
	assert.True(t, strings.Contains(ForecastModelSchema, "predictions"))

	// The embedded schema must itself be loadable
	err := ValidateJSONString(ForecastModelSchema, `{}`)
	require.Error(t, err, "empty document should fail required checks")

	_, isLoadErr := err.(*SchemaLoadError)
	assert.False(t, isLoadErr, "embedded schema should load cleanly")
}
