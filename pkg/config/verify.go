package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	return r.Reflect(&Config{})
}

// VerifyAgainstSchema checks the config against required fields and enums declared in its schema
func VerifyAgainstSchema(cfg *Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	return verifyObject(GenerateSchema(), doc, "")
}

// verifyObject walks object properties, descending into nested objects and arrays of objects
func verifyObject(schema *jsonschema.Schema, doc map[string]any, path string) error {
	for _, name := range schema.Required {
		if isEmpty(doc[name]) {
			return fmt.Errorf("%s is required", join(path, name))
		}
	}

	if schema.Properties == nil {
		return nil
	}
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		val, ok := doc[pair.Key]
		if !ok || val == nil {
			continue
		}
		if err := verifyValue(pair.Value, val, join(path, pair.Key)); err != nil {
			return err
		}
	}
	return nil
}

func verifyValue(schema *jsonschema.Schema, val any, path string) error {
	if len(schema.Enum) > 0 && !inEnum(schema.Enum, val) {
		return fmt.Errorf("%s: %v is not one of %v", path, val, schema.Enum)
	}

	switch v := val.(type) {
	case map[string]any:
		return verifyObject(schema, v, path)
	case []any:
		if schema.Items == nil {
			return nil
		}
		for i, item := range v {
			if err := verifyValue(schema.Items, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func inEnum(enum []any, val any) bool {
	for _, e := range enum {
		if fmt.Sprint(e) == fmt.Sprint(val) {
			return true
		}
	}
	return false
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	}
	return false
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
