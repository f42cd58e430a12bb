package formdata

import (
	"strconv"

	"github.com/hadijannat/mini-dpp-platform-sub000/pkg/definition"
)

// ValuesAtPattern evaluates a pattern path against a value tree and returns
// every leaf value it reaches. The walk is a fold over a working set of
// candidate values: an array-marker segment flattens every sequence in the
// set into its elements, a name segment projects that key out of every
// mapping in the set. Candidates that do not match a segment drop out, so
// a pattern that matches nothing yields an empty result.
//
// This broadcast form is what lets a single definition path such as
// "ContactInformation[]/Phone" address the Phone field of every repeated
// contact at once.
func ValuesAtPattern(data any, segments []string) []any {
	candidates := []any{data}
	for _, segment := range segments {
		if len(candidates) == 0 {
			return nil
		}
		var next []any
		for _, candidate := range candidates {
			if segment == definition.ArrayMarker {
				if seq, ok := candidate.([]any); ok {
					next = append(next, seq...)
				}
				continue
			}
			switch typed := candidate.(type) {
			case map[string]any:
				if value, ok := typed[segment]; ok {
					next = append(next, value)
				}
			case []any:
				if index, err := strconv.Atoi(segment); err == nil && index >= 0 && index < len(typed) {
					next = append(next, typed[index])
				}
			}
		}
		candidates = next
	}
	return candidates
}
