package uischema

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a rendering schema from JSON or YAML bytes.
func Parse(data []byte) (*RenderingSchema, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("uischema: empty document")
	}

	var schema RenderingSchema
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("uischema: parse: %w", err)
		}
		return &schema, nil
	}
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("uischema: parse: %w", err)
	}
	return &schema, nil
}
