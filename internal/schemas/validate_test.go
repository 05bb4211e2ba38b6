package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_IconNames(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantError bool
	}{
		{name: "sorted names", json: `["delete","settings"]`},
		{name: "empty record", json: `[]`},
		{name: "not an array", json: `{"names":["home"]}`, wantError: true},
		{name: "duplicate names", json: `["home","home"]`, wantError: true},
		{name: "invalid name", json: `["Home"]`, wantError: true},
		{name: "non-string item", json: `[42]`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(IconNames, []byte(tt.json))
			if tt.wantError {
				require.Error(t, err)
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Greater(t, len(validationErr.Errors), 0)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_Config(t *testing.T) {
	valid := `{
		"include": ["src", "lib"],
		"out_dir": "public",
		"variant": "rounded",
		"additional_icon_names": ["menu"],
		"verbose": true
	}`
	assert.NoError(t, Validate(Config, []byte(valid)))

	err := Validate(Config, []byte(`{"outDir": "public"}`))
	require.Error(t, err)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Summary(), "outDir")

	err = Validate(Config, []byte(`{"include": "src"}`))
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Summary(), "include")
}

func TestValidate_MalformedJSON(t *testing.T) {
	err := Validate(Config, []byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope.schema.json", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such embedded schema")
}

func TestValidate_NestedFieldPath(t *testing.T) {
	err := Validate(Config, []byte(`{"extensions": [".ts", ""]}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "extensions.1", validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
	assert.Equal(t, "name: is required (and 1 more)", err.Summary())
}
