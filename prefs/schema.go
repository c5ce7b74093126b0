package prefs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const preferencesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "keyboards": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "layout": {"type": "string"},
          "language": {"type": "string"}
        },
        "required": ["layout", "language"]
      }
    },
    "TapSounds": {"type": "boolean"},
    "spaces2period": {"type": "boolean"}
  }
}`

const settingsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "layout": {"type": "string"},
    "language": {"type": "string"},
    "keyboard size": {"type": "integer", "minimum": -2, "maximum": 1}
  }
}`

var (
	preferencesValidator = mustCompile("preferences.json", preferencesSchema)
	settingsValidator    = mustCompile("settings.json", settingsSchema)
)

func mustCompile(name, schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(schema)); err != nil {
		panic(err)
	}

	return compiler.MustCompile(name)
}

// validate decodes data and checks it against schema.
func validate(schema *jsonschema.Schema, data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var instance any
	if err := decoder.Decode(&instance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}

	return nil
}
