package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	"resume.schema.json",
	"job_description.schema.json",
	"match_analysis.schema.json",
}

func TestSchemaFilesAreValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFilesCompile(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			absPath, err := filepath.Abs(schemaFile)
			require.NoError(t, err)

			loader := gojsonschema.NewReferenceLoader("file://" + absPath)
			_, err = gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}

func TestSchemaFilesDeclareDraft07(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schema map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schema))
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schema["$schema"])
			assert.Equal(t, "object", schema["type"])
		})
	}
}
