package loader

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed document.schema.json
var documentSchemaData []byte

var (
	documentSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// compileSchema compiles the embedded result document schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(documentSchemaData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal document schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("document.schema.json", schemaDoc); err != nil {
			compileErr = fmt.Errorf("add document schema resource: %w", err)
			return
		}

		documentSchema, err = compiler.Compile("document.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile document schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateDocument validates raw result document bytes against the document
// schema. Anything that is not a JSON object carrying a `data` array of
// well-typed records is rejected before it reaches the aggregation step.
func ValidateDocument(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := documentSchema.Validate(v); err != nil {
		return fmt.Errorf("document validation failed: %w", err)
	}

	return nil
}
