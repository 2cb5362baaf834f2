package server

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const signalSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "object": {"type": "string", "minLength": 1},
    "includeDFT": {"type": "boolean"},
    "transform": {
      "type": "object",
      "properties": {
        "window": {
          "type": "object",
          "required": ["minX", "minY", "width", "height"],
          "properties": {
            "minX": {"type": "integer"},
            "minY": {"type": "integer"},
            "width": {"type": "integer"},
            "height": {"type": "integer"},
            "centerInWindow": {"type": "boolean"}
          }
        }
      }
    }
  }
}`

// dftSchemaJSON is a format string; the sample limit is filled in at startup.
const dftSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["samples"],
  "properties": {
    "samples": {
      "type": "array",
      "maxItems": %d,
      "items": {
        "type": "object",
        "required": ["x", "y"],
        "properties": {
          "x": {"type": "number"},
          "y": {"type": "number"}
        }
      }
    }
  }
}`

type schemas struct {
	signal *gojsonschema.Schema
	dft    *gojsonschema.Schema
}

func compileSchemas(maxSamples int) (schemas, error) {
	signal, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(signalSchemaJSON))
	if err != nil {
		return schemas{}, fmt.Errorf("compile signal schema: %w", err)
	}
	dft, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(fmt.Sprintf(dftSchemaJSON, maxSamples)))
	if err != nil {
		return schemas{}, fmt.Errorf("compile dft schema: %w", err)
	}
	return schemas{signal: signal, dft: dft}, nil
}

// FieldError is one entry of a 400 response.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// validate returns nil when body satisfies schema.
func validate(schema *gojsonschema.Schema, body []byte) ([]FieldError, error) {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]FieldError, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, FieldError{Field: e.Field(), Msg: e.Description()})
	}
	return errs, nil
}
