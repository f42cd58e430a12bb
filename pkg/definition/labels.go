package definition

import (
	"sort"
	"strings"
)

// PickLangValue selects a display string from a language map: the "en"
// entry when present, otherwise the entry with the lexically smallest
// language tag so the pick is stable across runs. The second return is
// false when the map is empty.
func PickLangValue(langMap map[string]string) (string, bool) {
	if len(langMap) == 0 {
		return "", false
	}
	if value, ok := langMap["en"]; ok {
		return value, true
	}
	tags := make([]string, 0, len(langMap))
	for tag := range langMap {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return langMap[tags[0]], true
}

// Label resolves the user-facing label for a node. Precedence: the
// form_title qualifier, then the display name, then idShort, then fallback.
func Label(n *Node, fallback string) string {
	if n == nil {
		return fallback
	}
	if title := strings.TrimSpace(n.Qualifiers().FormTitle); title != "" {
		return title
	}
	if name, ok := PickLangValue(n.DisplayName); ok && strings.TrimSpace(name) != "" {
		return name
	}
	if n.IDShort != "" {
		return n.IDShort
	}
	return fallback
}

// NodeDescription resolves help text for a node: the form_info qualifier
// wins over the template's own description. The second return is false when
// neither exists.
func NodeDescription(n *Node) (string, bool) {
	if n == nil {
		return "", false
	}
	if info := strings.TrimSpace(n.Qualifiers().FormInfo); info != "" {
		return info, true
	}
	if desc, ok := PickLangValue(n.Description); ok && strings.TrimSpace(desc) != "" {
		return desc, true
	}
	return "", false
}

// Required reports whether the node's cardinality demands at least one
// value.
func Required(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Qualifiers().Cardinality {
	case CardinalityOne, CardinalityOneToMany:
		return true
	default:
		return false
	}
}
