// Package jsonschema validates exported configuration documents against a
// JSON Schema.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator holds a compiled schema, ready to check documents against.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles a JSON Schema from its source text.
func NewValidator(schemaJSON []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(string(schemaJSON))); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Validate checks a JSON document against the schema. It returns one
// error per failing location, or nil when the document conforms.
func (v *Validator) Validate(document []byte) ([]error, error) {
	var data interface{}
	if err := json.Unmarshal(document, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	err := v.schema.Validate(data)
	if err == nil {
		return nil, nil
	}
	if verr, ok := err.(*jsonschema.ValidationError); ok {
		return flatten(verr), nil
	}
	return []error{err}, nil
}

// flatten walks the cause tree, keeping only leaf errors that name a
// concrete instance location.
func flatten(err *jsonschema.ValidationError) []error {
	if len(err.Causes) == 0 {
		return []error{fmt.Errorf("%s: %s", location(err), err.Message)}
	}
	var errs []error
	for _, cause := range err.Causes {
		errs = append(errs, flatten(cause)...)
	}
	return errs
}

func location(err *jsonschema.ValidationError) string {
	if err.InstanceLocation == "" {
		return "/"
	}
	return err.InstanceLocation
}
