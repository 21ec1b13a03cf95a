package appdata

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// appDataSchema guards imports: only documents shaped like an export are
// accepted.
const appDataSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["users", "records", "userSettings"],
  "properties": {
    "users": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["username", "password"],
        "properties": {
          "username": {"type": "string"},
          "password": {"type": "string"},
          "isAdmin": {"type": "boolean"}
        }
      }
    },
    "records": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["username", "sessionId", "quiz"],
        "properties": {
          "username": {"type": "string"},
          "sessionId": {"type": "string"},
          "wordCount": {"type": "integer", "minimum": 0},
          "wrongWords": {"type": "array", "items": {"type": "string"}},
          "quiz": {
            "type": "object",
            "required": ["totalQuestions", "correctCount"],
            "properties": {
              "mode": {"type": "string"},
              "totalQuestions": {"type": "integer", "minimum": 0},
              "correctCount": {"type": "integer", "minimum": 0},
              "accuracy": {"type": "number", "minimum": 0, "maximum": 1}
            }
          }
        }
      }
    },
    "userSettings": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["username"],
        "properties": {
          "username": {"type": "string"},
          "maxWordsPerSession": {"type": "integer"}
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(appDataSchema))
		if err != nil {
			schemaErr = fmt.Errorf("failed to parse app data schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("appdata.json", doc); err != nil {
			schemaErr = fmt.Errorf("failed to add app data schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("appdata.json")
	})
	return compiledSchema, schemaErr
}

func validateDocument(raw []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := documentSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("app data schema validation failed: %w", err)
	}
	return nil
}
