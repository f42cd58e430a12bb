package definition

import "strings"

// ExtractSemanticIDs reads every key value out of a raw submodel fragment's
// semanticId reference ({"semanticId": {"keys": [{"value": ...}]}}). Values
// are trimmed, empties dropped, order preserved. The fragment is untyped
// because it comes straight from the repository API, not from a definition
// tree.
func ExtractSemanticIDs(fragment map[string]any) []string {
	if fragment == nil {
		return nil
	}
	semanticID, ok := fragment["semanticId"].(map[string]any)
	if !ok {
		return nil
	}
	rawKeys, ok := semanticID["keys"].([]any)
	if !ok {
		return nil
	}

	var ids []string
	for _, rawKey := range rawKeys {
		key, ok := rawKey.(map[string]any)
		if !ok {
			continue
		}
		value, ok := key["value"].(string)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		ids = append(ids, value)
	}
	return ids
}

// ExtractSemanticID returns the first semantic id of the fragment, or ""
// when it declares none.
func ExtractSemanticID(fragment map[string]any) string {
	ids := ExtractSemanticIDs(fragment)
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// NormalizeSemanticID canonicalizes a semantic id for cross-template
// comparison: trimmed, trailing slashes stripped, lower-cased.
func NormalizeSemanticID(id string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(id), "/"))
}
