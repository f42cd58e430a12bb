package definition

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a definition tree from JSON or YAML bytes. JSON is tried
// first; anything that fails JSON decoding is treated as YAML, which also
// covers templates exported by the authoring tooling in YAML form.
func Parse(data []byte) (*Node, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("definition: empty document")
	}

	var node Node
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("definition: parse: %w", err)
		}
		return &node, nil
	}

	// YAML documents are normalized through a generic decode and re-encoded
	// as JSON so the custom JSON unmarshalers (allowed_range) apply to both
	// formats.
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("definition: parse: %w", err)
	}
	encoded, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("definition: normalize: %w", err)
	}
	if err := json.Unmarshal(encoded, &node); err != nil {
		return nil, fmt.Errorf("definition: parse: %w", err)
	}
	return &node, nil
}
