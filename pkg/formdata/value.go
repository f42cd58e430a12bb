package formdata

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueAtPath walks nested mappings and sequences by the given segments. A
// numeric segment indexes a sequence, any other segment keys into a
// mapping. It reports ok=false on any missing intermediate, including a nil
// value at any step; an empty path yields data itself.
func ValueAtPath(data any, segments []string) (any, bool) {
	current := data
	for _, segment := range segments {
		switch typed := current.(type) {
		case map[string]any:
			next, ok := typed[segment]
			if !ok {
				return nil, false
			}
			current = next
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(typed) {
				return nil, false
			}
			current = typed[index]
		default:
			return nil, false
		}
	}
	return current, true
}

// WithValueAtPath returns a new structure with value placed at segments,
// creating intermediate mappings or sequences as needed: a numeric next
// segment implies a sequence at the current level. Every container on the
// path is shallow-copied, so the original data is never mutated and
// untouched branches are shared. An empty path returns data unchanged.
func WithValueAtPath(data any, segments []string, value any) any {
	if len(segments) == 0 {
		return data
	}

	head := segments[0]
	rest := segments[1:]

	if index, err := strconv.Atoi(head); err == nil && index >= 0 {
		seq, _ := data.([]any)
		out := make([]any, len(seq))
		copy(out, seq)
		for len(out) <= index {
			out = append(out, nil)
		}
		if len(rest) == 0 {
			out[index] = value
		} else {
			out[index] = WithValueAtPath(out[index], rest, value)
		}
		return out
	}

	mapping, _ := data.(map[string]any)
	out := make(map[string]any, len(mapping)+1)
	for key, val := range mapping {
		out[key] = val
	}
	if len(rest) == 0 {
		out[head] = value
	} else {
		out[head] = WithValueAtPath(out[head], rest, value)
	}
	return out
}

// IsEmptyValue reports whether a value counts as "not filled in": nil,
// whitespace-only strings, and empty sequences or mappings. Zero numbers
// and false are real values.
func IsEmptyValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(typed) == ""
	case []any:
		return len(typed) == 0
	case map[string]any:
		return len(typed) == 0
	default:
		return false
	}
}

// DeepEqual compares two value trees structurally: sequences by order and
// length, mappings by key set and recursive value equality regardless of
// key order. Numeric values compare by their float64 representation so a
// re-decoded snapshot never spuriously differs from its in-memory twin.
func DeepEqual(a, b any) bool {
	switch typedA := a.(type) {
	case map[string]any:
		typedB, ok := b.(map[string]any)
		if !ok || len(typedA) != len(typedB) {
			return false
		}
		for key, valA := range typedA {
			valB, ok := typedB[key]
			if !ok || !DeepEqual(valA, valB) {
				return false
			}
		}
		return true
	case []any:
		typedB, ok := b.([]any)
		if !ok || len(typedA) != len(typedB) {
			return false
		}
		for i := range typedA {
			if !DeepEqual(typedA[i], typedB[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		if numA, okA := asFloat(a); okA {
			numB, okB := asFloat(b)
			return okB && numA == numB
		}
		return a == b
	}
}

func asFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case json.Number:
		parsed, err := typed.Float64()
		return parsed, err == nil
	default:
		return 0, false
	}
}
